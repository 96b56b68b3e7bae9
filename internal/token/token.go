// Package token decodes the claims carried by the API's bearer tokens.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity fields the client reads out of a bearer token.
// The token is issued and validated by the server; the client only decodes
// it, so no signature verification happens here.
type Claims struct {
	UserID string // "sub" claim
	Email  string // "email" claim
}

// Decode extracts identity claims from a JWT without verifying its signature.
func Decode(tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, errors.New("decode token: missing sub claim")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return Claims{}, errors.New("decode token: missing email claim")
	}

	return Claims{UserID: sub, Email: email}, nil
}
