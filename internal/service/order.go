package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"shopapi/internal/models"
	"shopapi/internal/transport"
)

type OrderRepo interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, o *models.Order) error
	UpdateOrder(ctx context.Context, id int64, req transport.UpdateOrderRequest) (*models.Order, error)
}

type OrderService struct {
	Repo OrderRepo
	v    *validator.Validate
}

func NewOrderService(repo OrderRepo) *OrderService {
	return &OrderService{Repo: repo, v: validator.New()}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// CreateOrder stores the order as supplied. Item prices and the total are
// not cross-checked and product stock is not touched.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	order := &models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		Total:           *req.Total,
		Status:          req.Status,
		ShippingAddress: req.ShippingAddress,
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if req.Date != nil {
		order.Date = *req.Date
	} else {
		order.Date = time.Now().UTC()
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int64, req transport.UpdateOrderRequest) (*models.Order, error) {
	if err := s.v.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.Repo.UpdateOrder(ctx, id, req)
}
