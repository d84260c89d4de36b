package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OrganizerRole is the only role the API issues tokens for.
const OrganizerRole = "organizer"

// OrganizerClaims are the JWT claims carried by organizer tokens.
type OrganizerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 organizer token for subject that expires after expiryDuration.
func GenerateJWT(subject string, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := OrganizerClaims{
		Role: OrganizerRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a token string and validates its signature, standard claims and role.
func ParseAndValidateJWT(tokenString string, secretKey string) (*OrganizerClaims, error) {
	claims := &OrganizerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Role != OrganizerRole {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
