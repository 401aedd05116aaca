// Package identity turns a verified JWT on the request into the caller's
// account ID. Handlers call CallerID once and pass the result down.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKey is the fiber Locals key the JWT middleware stores the token under.
const TokenKey = "user"

var ErrUnauthorized = errors.New("unauthorized")

// CallerID extracts the caller's account ID from the "sub" claim.
func CallerID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals(TokenKey).(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}
