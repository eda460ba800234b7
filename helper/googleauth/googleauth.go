package googleauth

import (
	"context"
	"errors"
	"fmt"

	oauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrUnverifiedEmail = errors.New("google account email is not verified")
	ErrWrongAudience   = errors.New("google id token was issued for another client")
)

type Identity struct {
	Email  string
	UserID string
}

// Verifier checks Google ID tokens against the tokeninfo endpoint.
type Verifier struct {
	clientID string
	opts     []option.ClientOption
}

// NewVerifier builds a verifier. An empty clientID skips the audience check.
func NewVerifier(clientID string, opts ...option.ClientOption) *Verifier {
	return &Verifier{clientID: clientID, opts: opts}
}

func (v *Verifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	opts := append([]option.ClientOption{option.WithoutAuthentication()}, v.opts...)
	svc, err := oauth2.NewService(ctx, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("create oauth2 service: %w", err)
	}

	info, err := svc.Tokeninfo().IdToken(idToken).Context(ctx).Do()
	if err != nil {
		return Identity{}, fmt.Errorf("verify id token: %w", err)
	}
	if !info.VerifiedEmail {
		return Identity{}, ErrUnverifiedEmail
	}
	if v.clientID != "" && info.Audience != v.clientID && info.IssuedTo != v.clientID {
		return Identity{}, ErrWrongAudience
	}
	return Identity{Email: info.Email, UserID: info.UserId}, nil
}
