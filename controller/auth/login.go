package auth

import (
	"context"
	"net/http"

	"shoestore_be/helper/at"
	"shoestore_be/helper/watoken"
	"shoestore_be/model"
)

type Service interface {
	SignIn(ctx context.Context, req model.SignInRequest) model.Result[*model.Session]
	SignInWithGoogle(ctx context.Context, req model.GoogleSignInRequest) model.Result[*model.Session]
	Me(ctx context.Context, id string) model.Result[*model.User]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) LoginUsers(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if !at.DecodeJSON(w, r, &req) {
		return
	}
	at.WriteResult(w, h.svc.SignIn(r.Context(), req))
}

func (h *Handler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req model.GoogleSignInRequest
	if !at.DecodeJSON(w, r, &req) {
		return
	}
	at.WriteResult(w, h.svc.SignInWithGoogle(r.Context(), req))
}

// GetMe needs the token payload that the admin middleware put in the
// request context.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	payload, ok := watoken.FromContext(r.Context())
	if !ok {
		at.WriteResult(w, model.Fail[*model.User](model.KindUnauthorized, "Unauthorized"))
		return
	}
	at.WriteResult(w, h.svc.Me(r.Context(), payload.Id))
}
