package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"echocare/internal/model"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24*time.Hour)

	token, err := codec.Issue(42, "alice")
	require.NoError(t, err)

	identity, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), identity.UserID)
	require.Equal(t, "alice", identity.Username)
}

func TestTokenCodecRejectsOtherKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenCodec("key-one", 24*time.Hour)
	verifier := NewTokenCodec("key-two", 24*time.Hour)

	token, err := issuer.Issue(7, "bob")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenBadSignature)
}

func TestTokenCodecRejectsExpired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", -time.Minute)

	token, err := codec.Issue(7, "bob")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestTokenCodecRejectsGarbage(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24*time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, model.ErrTokenMalformed, "input %q", raw)
	}
}

func TestTokenCodecRejectsTampering(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24*time.Hour)

	token, err := codec.Issue(42, "alice")
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer
	// covers the claims.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = codec.Verify(string(tampered))
	require.Error(t, err)
}
