package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified access token.
//
// SignedString is the compact form sent by clients as "Authorization: Bearer"
// or in the "token" query parameter. UserID is the parsed "sub" claim and the
// only identity the API trusts.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
