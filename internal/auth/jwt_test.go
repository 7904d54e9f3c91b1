package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestSignAndParseToken(t *testing.T) {
	token, err := SignToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseTokenFailures(t *testing.T) {
	expired, err := SignToken(testSecret, "user-123", -time.Minute)
	require.NoError(t, err)
	foreign, err := SignToken([]byte("other-secret"), "user-123", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseToken(testSecret, test.token)
			assert.Error(t, err)
		})
	}
}
