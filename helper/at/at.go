package at

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"shoestore_be/model"
)

const maxJSONBody = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

func WriteJSON(respw http.ResponseWriter, statusCode int, content interface{}) {
	respw.Header().Set("Content-Type", "application/json")
	respw.WriteHeader(statusCode)
	if err := json.NewEncoder(respw).Encode(content); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

// StatusFor maps an error kind to the HTTP status code used for it.
func StatusFor(kind model.ErrKind) int {
	switch kind {
	case model.KindNone:
		return http.StatusOK
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindStorage:
		return http.StatusBadGateway
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteResult writes a {data, error} envelope with the status derived from
// its kind.
func WriteResult[T any](respw http.ResponseWriter, res model.Result[T]) {
	WriteJSON(respw, StatusFor(res.Kind), res)
}

func WriteStatus(respw http.ResponseWriter, st model.Status) {
	WriteJSON(respw, StatusFor(st.Kind), st)
}

// WriteError writes the short {error} body used by the upload endpoints.
func WriteError(respw http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(respw, statusCode, map[string]string{"error": msg})
}

// GetLoginFromHeader returns the session token from "Authorization: Bearer"
// or, failing that, from the "login" header.
func GetLoginFromHeader(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return r.Header.Get("login")
}

func GetIPaddress() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	return ""
}

// ParseID reads the {id} route variable. It writes a 400 response and
// returns false when the value is not a UUID.
func ParseID(respw http.ResponseWriter, req *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		log.Println("[ERROR] Invalid id:", mux.Vars(req)["id"])
		WriteJSON(respw, http.StatusBadRequest, model.Failure(model.KindValidation, "Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// DecodeJSON reads a JSON body into dst. On failure it writes the 400
// "Invalid request payload" envelope and returns false.
func DecodeJSON(respw http.ResponseWriter, req *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(req.Body, maxJSONBody))
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		err = ErrEmptyBody
	}
	if err != nil {
		log.Println("[ERROR] Invalid request payload:", err)
		WriteJSON(respw, http.StatusBadRequest, model.Failure(model.KindValidation, "Invalid request payload"))
		return false
	}
	return true
}
