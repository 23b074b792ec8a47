package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"productstore/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
// A nil db is tolerated so that a failed startup connection degrades to
// per-request errors instead of crashing the process.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

var errNotConnected = errors.New("database connection is not established")

func (r *GORMProductRepository) session() (*gorm.DB, error) {
	if r.db == nil {
		return nil, errNotConnected
	}
	return r.db, nil
}

// GetLatest retrieves up to limit products, newest first.
func (r *GORMProductRepository) GetLatest(limit int) ([]models.Product, error) {
	db, err := r.session()
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := db.Order("id DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	db, err := r.session()
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product. The database assigns id and timestamps.
func (r *GORMProductRepository) Create(product *models.Product) error {
	db, err := r.session()
	if err != nil {
		return err
	}
	if err := db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateByID overwrites the given columns of the identified row.
func (r *GORMProductRepository) UpdateByID(id uint, fields map[string]any) (int64, error) {
	db, err := r.session()
	if err != nil {
		return 0, err
	}
	res := db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByID removes the identified row.
func (r *GORMProductRepository) DeleteByID(id uint) (int64, error) {
	db, err := r.session()
	if err != nil {
		return 0, err
	}
	res := db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
