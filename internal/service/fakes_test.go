package service

import (
	"context"
	"sort"

	"shopapi/internal/models"
	"shopapi/internal/transport"
)

// In-memory repositories with the same contracts as the Mongo ones:
// id sequences, sorted listings, sentinel errors.

type fakeProductRepo struct {
	seq         int64
	items       map[int64]models.Product
	updateCalls int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]models.Product{}}
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, p *models.Product) error {
	f.seq++
	p.ID = f.seq
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, id int64, req transport.UpdateProductRequest) (*models.Product, error) {
	f.updateCalls++
	p, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	f.items[id] = p
	return &p, nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

type fakeOrderRepo struct {
	seq   int64
	items map[int64]models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[int64]models.Order{}}
}

func (f *fakeOrderRepo) ListOrders(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *models.Order) error {
	f.seq++
	o.ID = f.seq
	f.items[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) UpdateOrder(_ context.Context, id int64, req transport.UpdateOrderRequest) (*models.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.UserID != nil {
		o.UserID = *req.UserID
	}
	if req.Items != nil {
		o.Items = req.Items
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.ShippingAddress != nil {
		o.ShippingAddress = req.ShippingAddress
	}
	f.items[id] = o
	return &o, nil
}

type fakeUserRepo struct {
	seq     int64
	byEmail map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]models.User{}}
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	f.seq++
	u.ID = f.seq
	f.byEmail[u.Email] = *u
	return nil
}
