package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	promoCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// fieldErrors collects one message per field and remembers the order they
// were found in.
type fieldErrors struct {
	order []string
	msgs  map[string]string
}

func (f *fieldErrors) add(field, msg string) {
	if f.msgs == nil {
		f.msgs = map[string]string{}
	}
	if _, ok := f.msgs[field]; ok {
		return
	}
	f.order = append(f.order, field)
	f.msgs[field] = msg
}

func (f *fieldErrors) empty() bool {
	return len(f.order) == 0
}

// first is the message shown as the envelope error.
func (f *fieldErrors) first() string {
	if f.empty() {
		return ""
	}
	return f.msgs[f.order[0]]
}

func (f *fieldErrors) fields() map[string]string {
	return f.msgs
}

func (f *fieldErrors) requireName(name string) {
	switch {
	case strings.TrimSpace(name) == "":
		f.add("name", "Name is required")
	case utf8.RuneCountInString(name) > 255:
		f.add("name", "Name must be at most 255 characters")
	}
}

func (f *fieldErrors) requireImage(field, url, msg string) {
	if strings.TrimSpace(url) == "" {
		f.add(field, msg)
	}
}
