package auth

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ISSUER  = "github.com/alionaterguta/cine-verse"
	SUBJECT = "AUTHENTICATION"

	// TokenTTL matches the lifetime the API's clients were built against.
	TokenTTL = 7 * 24 * time.Hour
)

// CustomClaims embeds the authenticated username in the token. Downstream
// authorization (profile updates) compares it against the path parameter.
type CustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateToken signs a bearer token for the given username with ES256.
func CreateToken(username string, privateKey *ecdsa.PrivateKey) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    ISSUER,
			Subject:   SUBJECT,
			Audience:  []string{"api" + ISSUER},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(privateKey)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyToken checks signature, expiry and signing method, returning the
// decoded claims on success.
func VerifyToken(tokenString string, publicKey *ecdsa.PublicKey) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing error: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token or claims")
}
