package services

import (
	"log"

	"productstore/internal/models"
	"productstore/internal/repositories"
)

// EventPublisher publishes product lifecycle events for downstream
// consumers. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishProductEvent(event string, payload any) error
}

// DefaultListLimit caps how many products a listing returns.
const DefaultListLimit = 10

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil
// when no message broker is configured.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetLatestProducts retrieves the most recently created products, newest
// first.
func (s *ProductService) GetLatestProducts() ([]models.Product, error) {
	return s.repo.GetLatest(DefaultListLimit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct inserts a new product and publishes a creation event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct overwrites every mutable field of the identified product
// and returns the stored result. Returns repositories.ErrProductNotFound
// when the id does not exist.
func (s *ProductService) UpdateProduct(id uint, name string, price float64, availability bool) (*models.Product, error) {
	affected, err := s.repo.UpdateByID(id, map[string]any{
		"name":         name,
		"price":        price,
		"availability": availability,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repositories.ErrProductNotFound
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", product)
	return product, nil
}

// ToggleAvailability inverts the availability flag of the identified
// product and returns the stored result. The operation takes no other
// input.
func (s *ProductService) ToggleAvailability(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateByID(id, map[string]any{
		"availability": !product.Availability,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Deleted between the read and the write.
		return nil, repositories.ErrProductNotFound
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes the identified product. Returns
// repositories.ErrProductNotFound when the id does not exist.
func (s *ProductService) DeleteProduct(id uint) error {
	affected, err := s.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return repositories.ErrProductNotFound
	}
	s.publish("product.deleted", map[string]any{"id": id})
	return nil
}

// publish sends a product event when a publisher is configured. Publish
// failures are logged and never surfaced to the caller.
func (s *ProductService) publish(event string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
