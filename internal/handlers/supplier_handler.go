package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles bridge requests for suppliers.
type SupplierHandler struct {
	service  *services.SupplierService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Get("/by-name/:name", h.HandleGetSupplierByName)
	supplierRoutes.Get("/:id", h.HandleGetSupplierByID)
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)
}

// HandleGetSuppliers retrieves suppliers matching the query-string filter.
func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	filter := &repositories.SupplierFilter{Search: c.Query("search")}

	suppliers, err := h.service.GetAllSuppliers(filter)
	if err != nil {
		log.Printf("Error getting all suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve suppliers",
			"error":   err.Error(),
		})
	}
	return c.JSON(suppliers)
}

// HandleGetSupplierByID retrieves a single supplier by its ID.
func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	supplier, err := h.service.GetSupplierByID(supplierID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Supplier with ID %s not found", supplierID),
			})
		}
		log.Printf("Error getting supplier by ID %s: %v", supplierID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(supplier)
}

// HandleGetSupplierByName retrieves a supplier by its exact name.
func (h *SupplierHandler) HandleGetSupplierByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}
	supplier, err := h.service.GetSupplierByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Supplier with name %s not found", name),
			})
		}
		log.Printf("Error getting supplier by name %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(supplier)
}

// HandleCreateSupplier creates a new supplier.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		log.Printf("Error parsing create supplier request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateSupplier(&supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		if errors.Is(err, repositories.ErrDuplicateRecord) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": fmt.Sprintf("Supplier name %s is already in use", supplier.Name),
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create supplier",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleUpdateSupplier applies a partial update to an existing supplier.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	var update models.SupplierUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing update supplier request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	supplier, err := h.service.UpdateSupplier(supplierID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Supplier with ID %s not found", supplierID),
			})
		}
		if errors.Is(err, repositories.ErrDuplicateRecord) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Supplier name is already in use",
				"error":   err.Error(),
			})
		}
		log.Printf("Error updating supplier %s: %v", supplierID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(supplier)
}

// HandleDeleteSupplier deletes a supplier, reporting whether a record existed.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	removed, err := h.service.DeleteSupplier(supplierID)
	if err != nil {
		log.Printf("Error deleting supplier %s: %v", supplierID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"removed": removed})
}
