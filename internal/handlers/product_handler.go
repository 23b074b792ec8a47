package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"productstore/internal/models"
	"productstore/internal/repositories"
	"productstore/internal/services"
	"productstore/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// ProductInput is the accepted request body for create and full update.
// Availability may be omitted on create, in which case it defaults to
// true.
type ProductInput struct {
	Name         string  `json:"name" example:"Laptop"`
	Price        float64 `json:"price" example:"999.99"`
	Availability *bool   `json:"availability" example:"true"`
}

// Validation rule sets, one per operation, in route declaration order.
var (
	idRules = []validation.Rule{
		validation.IntParam("id", "id must be an integer"),
	}
	createRules = []validation.Rule{
		validation.RequiredString("name", "name is required"),
		validation.Required("price", "price is required"),
		validation.Number("price", "gt=0", "price must be a number greater than 0"),
	}
	updateRules = []validation.Rule{
		validation.IntParam("id", "id must be an integer"),
		validation.RequiredString("name", "name must not be empty"),
		validation.Required("price", "price must not be empty"),
		validation.Number("price", "gt=0", "price must be a number greater than 0"),
		validation.Bool("availability", "availability must be a boolean"),
	}
)

// RegisterRoutes binds each product route to its validation rule set and
// handler.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Get("/:id", validation.New(idRules), h.HandleGetProductByID)
	products.Post("/", validation.New(createRules), h.HandleCreateProduct)
	products.Put("/:id", validation.New(updateRules), h.HandleUpdateProduct)
	products.Patch("/:id", validation.New(idRules), h.HandleToggleAvailability)
	products.Delete("/:id", validation.New(idRules), h.HandleDeleteProduct)
}

// HandleGetProducts retrieves the ten most recently created products.
//
//	@Summary		List products
//	@Description	Retrieve up to 10 products, newest first.
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/products [get]
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetLatestProducts()
	if err != nil {
		return serverError(c, "list products", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetProductByID retrieves a single product by its ID.
//
//	@Summary		Get a product by ID
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}
//	@Router			/products/{id} [get]
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(parseID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return serverError(c, "get product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleCreateProduct creates a new product.
//
//	@Summary		Create a new product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		handlers.ProductInput	true	"Product to create"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]interface{}
//	@Router			/products [post]
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := parseInput(c)
	if err != nil {
		return badRequestBody(c, err)
	}

	product := models.Product{
		Name:         input.Name,
		Price:        input.Price,
		Availability: true,
	}
	if input.Availability != nil {
		product.Availability = *input.Availability
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return serverError(c, "create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"data":    product,
	})
}

// HandleUpdateProduct overwrites every field of an existing product.
//
//	@Summary		Update an existing product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Product ID"
//	@Param			product	body		handlers.ProductInput	true	"New product values"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]interface{}
//	@Router			/products/{id} [put]
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	input, err := parseInput(c)
	if err != nil {
		return badRequestBody(c, err)
	}

	// The update rule set guarantees availability was present and boolean.
	availability := input.Availability != nil && *input.Availability

	product, err := h.service.UpdateProduct(parseID(c), input.Name, input.Price, availability)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return serverError(c, "update product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleToggleAvailability inverts the availability flag of a product.
// The operation takes no request body.
//
//	@Summary		Toggle product availability
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}
//	@Router			/products/{id} [patch]
func (h *ProductHandler) HandleToggleAvailability(c *fiber.Ctx) error {
	product, err := h.service.ToggleAvailability(parseID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return serverError(c, "toggle availability", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleDeleteProduct deletes a product by its ID.
//
//	@Summary		Delete a product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}
//	@Router			/products/{id} [delete]
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(parseID(c)); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return serverError(c, "delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// parseID reads the id path parameter, already vetted by the validation
// middleware.
func parseID(c *fiber.Ctx) uint {
	id, _ := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id)
}

func parseInput(c *fiber.Ctx) (ProductInput, error) {
	var input ProductInput
	err := c.BodyParser(&input)
	return input, err
}

func badRequestBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": []validation.FieldError{
			{Field: "body", Message: "invalid request body"},
		},
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Product not found",
	})
}

// serverError logs the failure with full detail and answers with a
// generic message, leaking nothing to the caller.
func serverError(c *fiber.Ctx, op string, err error) error {
	log.Printf("Error during %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Server Error",
	})
}
