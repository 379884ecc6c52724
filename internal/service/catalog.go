package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"shopapi/internal/models"
	"shopapi/internal/transport"
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id int64, req transport.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CatalogService struct {
	Repo ProductRepo
	v    *validator.Validate
}

func NewCatalogService(repo ProductRepo) *CatalogService {
	return &CatalogService{Repo: repo, v: validator.New()}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now().UTC()
	prod := &models.Product{
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       *req.Stock,
		Description: req.Description,
		Images:      req.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

// UpdateProduct rejects a negative stock before touching the store, then
// performs a partial merge of the supplied fields.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, req transport.UpdateProductRequest) (*models.Product, error) {
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}

	return s.Repo.UpdateProduct(ctx, id, req)
}

// DeleteProduct reports success whether or not the id existed.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.Repo.DeleteProduct(ctx, id)
}
