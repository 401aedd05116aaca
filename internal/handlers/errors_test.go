package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/identity"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &services.ValidationError{Field: "q", Reason: "bad query"}, fiber.StatusBadRequest, "bad query"},
		{"not found", services.ErrNotFound, fiber.StatusNotFound, "No records found for this number."},
		{"unauthorized", identity.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized"},
		{"resolution", fmt.Errorf("%w: count: %w", services.ErrResolution, errors.New("conn reset")), fiber.StatusInternalServerError, "fallback"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tc.err, "test", uuid.New(), "fallback")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.True(t, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestHandlersRejectMissingCaller(t *testing.T) {
	app := fiber.New()
	app.Get("/search/name", NewLookupHandler(nil).SearchByName)
	app.Get("/search/number", NewLookupHandler(nil).SearchByNumber)
	app.Post("/contact", NewContactHandler(nil).AddContact)
	app.Post("/spam", NewSpamHandler(nil).MarkSpam)

	for _, route := range []struct{ method, path string }{
		{fiber.MethodGet, "/search/name?q=amit"},
		{fiber.MethodGet, "/search/number?num=5555555555"},
		{fiber.MethodPost, "/contact"},
		{fiber.MethodPost, "/spam"},
	} {
		t.Run(route.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Unauthorized", body.Message)
		})
	}
}
