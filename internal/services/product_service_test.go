package services_test

import (
	"context"
	"fmt"
	"testing"

	"yolomy/internal/models"
	"yolomy/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Quantity: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Quantity: 50},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)

	// Test fetch failure (e.g., store unreachable)
	mockRepo.On("GetAll", mock.Anything).Return(nil, fmt.Errorf("store unavailable")).Once()
	products, err = service.GetAllProducts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	newProduct := &models.Product{Name: "New Product", Price: 50.0, Quantity: 20}

	// Test successful creation
	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()
	err := service.CreateProduct(context.Background(), newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", mock.Anything, newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(context.Background(), newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// The service must stamp the path ID onto the record before the upsert,
	// regardless of what the body carried.
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "prod-1" && p.Name == "Product A Updated"
	})).Return(nil).Once()

	err := service.UpdateProduct(context.Background(), "prod-1", &models.Product{
		ID:       "ignored-body-id",
		Name:     "Product A Updated",
		Price:    12.0,
		Quantity: 95,
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// An unknown ID is not an error: the repository upserts it. The service
	// simply passes the result through.
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "never-seen"
	})).Return(nil).Once()
	err = service.UpdateProduct(context.Background(), "never-seen", &models.Product{Name: "Orphan", Price: 1.0})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (e.g., store unreachable)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(fmt.Errorf("store unavailable")).Once()
	err = service.UpdateProduct(context.Background(), "prod-2", &models.Product{Name: "X"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Deletion is idempotent: the repository reports success whether or not
	// the ID existed, so back-to-back deletes both succeed.
	mockRepo.On("Delete", mock.Anything, "prod-1").Return(nil).Twice()
	err := service.DeleteProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	err = service.DeleteProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (e.g., store unreachable)
	mockRepo.On("Delete", mock.Anything, "prod-2").Return(fmt.Errorf("store unavailable")).Once()
	err = service.DeleteProduct(context.Background(), "prod-2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	mockRepo.AssertExpectations(t)
}
