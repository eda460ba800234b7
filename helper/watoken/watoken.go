package watoken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Payload struct {
	Id    string    `json:"id"`
	Alias string    `json:"alias"`
	Role  string    `json:"role"`
	Exp   time.Time `json:"exp"`
	Iat   time.Time `json:"iat"`
	Nbf   time.Time `json:"nbf"`
}

// GenerateKey returns a fresh v4 public key pair as hex strings.
func GenerateKey() (privateKey, publicKey string) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	return secretKey.ExportHex(), secretKey.Public().ExportHex()
}

func EncodeforHours(id, alias, role, privateKey string, hours int) (string, error) {
	return encodeAt(id, alias, role, privateKey, time.Now(), time.Duration(hours)*time.Hour)
}

func encodeAt(id, alias, role, privateKey string, now time.Time, ttl time.Duration) (string, error) {
	secretKey, err := paseto.NewV4AsymmetricSecretKeyFromHex(privateKey)
	if err != nil {
		return "", fmt.Errorf("load private key: %w", err)
	}

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(ttl))
	token.SetString("id", id)
	token.SetString("alias", alias)
	token.SetString("role", role)

	return token.V4Sign(secretKey, nil), nil
}

// Decode verifies the signature and expiry of tokenstring.
func Decode(publicKey string, tokenstring string) (Payload, error) {
	var payload Payload
	if tokenstring == "" {
		return payload, ErrInvalidToken
	}

	pubKey, err := paseto.NewV4AsymmetricPublicKeyFromHex(publicKey)
	if err != nil {
		return payload, fmt.Errorf("load public key: %w", err)
	}

	parser := paseto.NewParser()
	token, err := parser.ParseV4Public(pubKey, tokenstring, nil)
	if err != nil {
		return payload, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	payload.Id, _ = token.GetString("id")
	payload.Alias, _ = token.GetString("alias")
	payload.Role, _ = token.GetString("role")
	payload.Exp, _ = token.GetExpiration()
	payload.Iat, _ = token.GetIssuedAt()
	payload.Nbf, _ = token.GetNotBefore()
	return payload, nil
}

type ctxKey struct{}

func WithPayload(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, ctxKey{}, payload)
}

func FromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(ctxKey{}).(Payload)
	return payload, ok
}
