package model

import (
	"context"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
)

type Storage interface {
	LoadPayments(ctx context.Context, path string) (entity.Payments, error)
	LoadProducts(ctx context.Context, path string) (entity.Products, error)
	LoadOrders(ctx context.Context, path string) (entity.Orders, error)
}
