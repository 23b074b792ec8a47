package validation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"productstore/internal/validation"
)

func setupMiddlewareApp(rules []validation.Rule) *fiber.App {
	app := fiber.New()
	app.Post("/items/:id", validation.New(rules), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestMiddlewarePassesValidRequests(t *testing.T) {
	app := setupMiddlewareApp(updateRules())

	body := strings.NewReader(`{"name":"Mouse","price":100,"availability":true}`)
	req := httptest.NewRequest(http.MethodPost, "/items/1", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestMiddlewareRejectsBeforeHandler(t *testing.T) {
	handlerCalled := false
	rules := []validation.Rule{validation.IntParam("id", "id must be an integer")}

	app := fiber.New()
	app.Post("/items/:id", validation.New(rules), func(c *fiber.Ctx) error {
		handlerCalled = true
		return c.JSON(fiber.Map{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/items/abc", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, handlerCalled)

	var payload map[string][]validation.FieldError
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload["errors"])
	resp.Body.Close()
}

func TestMiddlewareTreatsUnparseableBodyAsEmpty(t *testing.T) {
	app := setupMiddlewareApp(updateRules())

	req := httptest.NewRequest(http.MethodPost, "/items/1", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string][]validation.FieldError
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	// name, price (twice) and availability are all reported missing.
	assert.Len(t, payload["errors"], 4)
	resp.Body.Close()
}
