package auth

import "github.com/golang-jwt/jwt/v5"

// Claims is the only supported session token shape. The role claim is
// whatever role the selected user record carries; there is no credential
// verification behind it by design (login picks a seeded user).
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
