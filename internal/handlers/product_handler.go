package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"productos-api/internal/models"
	"productos-api/internal/repositories"
	"productos-api/internal/services"
)

const apiVersion = "1.0.0"

// Info describes the running deployment for the metadata and health routes.
type Info struct {
	Environment string
	Table       string
	Region      string
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	info    Info
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, info Info) *ProductHandler {
	return &ProductHandler{
		service: service,
		info:    info,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/health", h.HandleHealth)

	productRoutes := router.Group("/productos")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleHome returns service metadata and the endpoint index.
func (h *ProductHandler) HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "Products API",
		"environment": h.info.Environment,
		"table":       h.info.Table,
		"version":     apiVersion,
		"endpoints": fiber.Map{
			"health":         "GET /health",
			"create_product": "POST /productos",
			"list_products":  "GET /productos",
			"get_product":    "GET /productos/{id}",
			"update_product": "PUT /productos/{id}",
			"delete_product": "DELETE /productos/{id}",
		},
	})
}

// HandleHealth reports whether the storage table is reachable.
func (h *ProductHandler) HandleHealth(c *fiber.Ctx) error {
	if err := h.service.Health(c.UserContext()); err != nil {
		log.Printf("Health check failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":      "unhealthy",
			"environment": h.info.Environment,
			"error":       err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"environment": h.info.Environment,
		"table":       h.info.Table,
		"database":    "connected",
		"region":      h.info.Region,
	})
}

// HandleCreateProduct creates a new product from the request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product, err := h.service.CreateProduct(c.UserContext(), c.Body())
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "product created successfully",
		"product": product,
	})
}

// HandleGetProducts lists every product.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(products),
		"items": products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		log.Printf("Error getting product %s: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.UpdateProduct(c.UserContext(), id, c.Body())
	if err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct removes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product deleted successfully",
		"id":      id,
	})
}

// respondError maps service errors onto HTTP statuses: validation failures
// are 400, unknown IDs are 404, anything else is a storage-level 500.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
