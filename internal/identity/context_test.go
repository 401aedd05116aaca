package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callerIDWith(t *testing.T, local any) (uuid.UUID, error) {
	t.Helper()
	app := fiber.New()

	var (
		id  uuid.UUID
		err error
	)
	app.Get("/", func(c *fiber.Ctx) error {
		if local != nil {
			c.Locals(TokenKey, local)
		}
		id, err = CallerID(c)
		return nil
	})

	_, testErr := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, testErr)
	return id, err
}

func TestCallerID(t *testing.T) {
	want := uuid.New()

	t.Run("valid subject", func(t *testing.T) {
		got, err := callerIDWith(t, &jwt.Token{Claims: jwt.MapClaims{"sub": want.String()}})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := callerIDWith(t, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing sub claim", func(t *testing.T) {
		_, err := callerIDWith(t, &jwt.Token{Claims: jwt.MapClaims{}})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("malformed sub claim", func(t *testing.T) {
		_, err := callerIDWith(t, &jwt.Token{Claims: jwt.MapClaims{"sub": "not-a-uuid"}})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
