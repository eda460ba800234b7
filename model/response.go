package model

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrReference = errors.New("foreign key constraint violated")
)

// ErrKind classifies a failed operation so the HTTP layer can pick a status
// code without parsing the message.
type ErrKind int

const (
	KindNone ErrKind = iota
	KindNotFound
	KindValidation
	KindStorage
	KindInternal
	KindUnauthorized
	KindForbidden
)

type Response struct {
	Status   string `json:"status"`
	Info     string `json:"info,omitempty"`
	Location string `json:"location,omitempty"`
	Response string `json:"response"`
}

// Result is the {data, error} envelope returned by every read and write
// operation of the services.
type Result[T any] struct {
	Data   T                 `json:"data"`
	Error  *string           `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Kind   ErrKind           `json:"-"`
}

// Status is the {success, error} envelope returned by deletes and state
// transitions.
type Status struct {
	Success bool              `json:"success"`
	Error   *string           `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Kind    ErrKind           `json:"-"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func Fail[T any](kind ErrKind, msg string) Result[T] {
	return Result[T]{Error: &msg, Kind: kind}
}

// Invalid is a validation failure with a message per offending field.
func Invalid[T any](msg string, fields map[string]string) Result[T] {
	return Result[T]{Error: &msg, Fields: fields, Kind: KindValidation}
}

func (r Result[T]) Failed() bool {
	return r.Error != nil
}

func Succeeded() Status {
	return Status{Success: true}
}

func Failure(kind ErrKind, msg string) Status {
	return Status{Error: &msg, Kind: kind}
}

func InvalidStatus(msg string, fields map[string]string) Status {
	return Status{Error: &msg, Fields: fields, Kind: KindValidation}
}

// Message returns the error text or an empty string on success.
func (s Status) Message() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}
