package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"productstore/internal/config"
	"productstore/internal/handlers"
	"productstore/internal/repositories"
	"productstore/internal/services"
)

func testApp() *fiber.App {
	repo := repositories.NewMemoryProductRepository()
	service := services.NewProductService(repo, nil)
	handler := handlers.NewProductHandler(service)
	return newApp(config.Config{}, handler)
}

func TestAppHealthEndpoint(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	resp.Body.Close()
}

func TestAppMountsProductRoutes(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAppServesDocs(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/docs/index.html", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
