package repositories

import (
	"errors"

	"productstore/internal/models"
)

// ErrProductNotFound is returned when the targeted product id does not
// exist in the store at the time of the operation.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetLatest returns at most limit products ordered by id descending.
	GetLatest(limit int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// UpdateByID overwrites the given columns of the row with the given
	// id and reports how many rows were affected.
	UpdateByID(id uint, fields map[string]any) (int64, error)
	// DeleteByID removes the row and reports how many rows were affected.
	DeleteByID(id uint) (int64, error)
}
