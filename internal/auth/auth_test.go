package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func Test_Verify(t *testing.T) {
	verifier := NewVerifier()

	t.Run("round trip returns the device id", func(t *testing.T) {
		token, err := IssueToken("device-1", "secret", time.Hour)
		assert.NoError(t, err)

		deviceID, err := verifier.Verify(token, "secret")
		assert.NoError(t, err)
		assert.Equal(t, "device-1", deviceID)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := IssueToken("device-1", "secret", time.Hour)
		assert.NoError(t, err)

		_, err = verifier.Verify(token, "other-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := IssueToken("device-1", "secret", -time.Minute)
		assert.NoError(t, err)

		_, err = verifier.Verify(token, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("secret"))
		assert.NoError(t, err)

		_, err = verifier.Verify(signed, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned alg rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "device-1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = verifier.Verify(signed, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
