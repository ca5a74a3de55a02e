package services

import (
	"context"
	"log"

	"yolomy/internal/models"
	"yolomy/internal/repositories"
	"yolomy/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil, in which case product events are not published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// CreateProduct creates a new product. The repository assigns the ID; absent
// fields are stored with their zero values.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.publishEvent("product.created", product.ID)
	return nil
}

// UpdateProduct replaces all fields of the product with the given ID. When
// no product with that ID exists, one is created under the caller's ID.
// Callers passing a stale or mistyped ID therefore end up with a new record
// rather than an error.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, product *models.Product) error {
	product.ID = id
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	s.publishEvent("product.updated", id)
	return nil
}

// DeleteProduct deletes a product by its ID. Deleting an ID that does not
// exist succeeds.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", id)
	return nil
}

// publishEvent emits a product lifecycle event on a best-effort basis.
// Publish failures are logged and never surfaced to the caller.
func (s *ProductService) publishEvent(event string, productID string) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(event, productID); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, productID, err)
	}
}
