package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid device token")

// Verifier checks device tokens: a JWT signed with the owning app's
// signing secret, subject = device ID. Unauthenticated update-checks are
// allowed, so verification only runs when a token is presented.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

func (v *Verifier) Verify(token, signingSecret string) (string, error) {
	const fn = "Verifier:Verify"
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(signingSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("%s:%w", fn, ErrInvalidToken)
	}
	deviceID, err := parsed.Claims.GetSubject()
	if err != nil || deviceID == "" {
		return "", fmt.Errorf("%s:%w", fn, ErrInvalidToken)
	}
	return deviceID, nil
}

// IssueToken mints a device token for an app. The server never calls this
// on the request path; it exists for provisioning and test clients.
func IssueToken(deviceID, signingSecret string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(signingSecret))
}
