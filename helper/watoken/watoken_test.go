package watoken

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	priv, pub := GenerateKey()

	token, err := EncodeforHours("user-1", "Admin", "admin", priv, 18)
	require.NoError(t, err)
	assert.Contains(t, token, "v4.public.")

	payload, err := Decode(pub, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.Id)
	assert.Equal(t, "Admin", payload.Alias)
	assert.Equal(t, "admin", payload.Role)
	assert.WithinDuration(t, time.Now().Add(18*time.Hour), payload.Exp, time.Minute)
}

func TestDecodeExpired(t *testing.T) {
	priv, pub := GenerateKey()

	token, err := encodeAt("user-1", "Admin", "admin", priv, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = Decode(pub, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeWrongKey(t *testing.T) {
	priv, _ := GenerateKey()
	_, otherPub := GenerateKey()

	token, err := EncodeforHours("user-1", "Admin", "admin", priv, 1)
	require.NoError(t, err)

	_, err = Decode(otherPub, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeEmpty(t *testing.T) {
	_, pub := GenerateKey()
	_, err := Decode(pub, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEncodeBadKey(t *testing.T) {
	_, err := EncodeforHours("user-1", "Admin", "admin", "not-hex", 1)
	assert.Error(t, err)
}

func TestPayloadContext(t *testing.T) {
	ctx := WithPayload(context.Background(), Payload{Id: "user-1", Role: "admin"})
	payload, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", payload.Id)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
