package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenIssuer = "socialnetwork"

type Claims struct {
	jwt.RegisteredClaims
}

// NewToken signs an access token for the given account id. The secret comes
// from the caller so tests can use their own.
func NewToken(secret string, accountId uint, lifespan time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   fmt.Sprintf("%d", accountId),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	return token.SignedString([]byte(secret))
}

// ReadToken parses and verifies an access token, returning the account id it
// was issued to.
func ReadToken(secret string, raw string) (uint, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	var accountId uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &accountId); err != nil {
		return 0, fmt.Errorf("malformed token subject: %v", err)
	}

	return accountId, nil
}
