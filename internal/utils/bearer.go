package utils

import (
	"errors"
	"strings"
)

// ErrNoBearerToken is returned when the authorization header is absent,
// uses another scheme or carries an empty token.
var ErrNoBearerToken = errors.New("no bearer token")

const bearerScheme = "Bearer"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrNoBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return bearerScheme + " " + token
}
