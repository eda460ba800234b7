package routes

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"shoestore_be/helper/at"
	"shoestore_be/helper/watoken"
	"shoestore_be/model"
)

// AdminOnly rejects requests without a valid admin token and stores the
// token payload in the request context.
func AdminOnly(publicKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, err := watoken.Decode(publicKey, at.GetLoginFromHeader(r))
			if err != nil {
				log.Println("[ERROR] Invalid or expired token:", err)
				at.WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":   "Unauthorized",
					"message": "Invalid or expired token. Please log in again.",
				})
				return
			}
			if payload.Role != model.RoleAdmin {
				log.Println("[WARN] Non-admin token rejected:", payload.Id)
				at.WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":   "Forbidden",
					"message": "Access denied",
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(watoken.WithPayload(r.Context(), payload)))
		})
	}
}
