package settlement

import (
	"context"
	"fmt"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/usecase/aggregator"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlement.go -destination=mock/loader.go -package=mock

type SourceLoader interface {
	LoadPayments(ctx context.Context, path string) (entity.Payments, error)
	LoadProducts(ctx context.Context, path string) (entity.Products, error)
	LoadOrders(ctx context.Context, path string) (entity.Orders, error)
}

type Evaluator struct {
	loader SourceLoader
}

func New(loader SourceLoader) Evaluator {
	return Evaluator{
		loader: loader,
	}
}

// EvaluateAmountPaidAndOwedPerUser loads the three sources and settles every user found in them.
// Load errors are wrapped, product lookup errors are returned unchanged. Nothing is returned on failure.
func (e *Evaluator) EvaluateAmountPaidAndOwedPerUser(ctx context.Context, sources entity.Sources) (entity.Settlements, error) {
	payments, err := e.loader.LoadPayments(ctx, sources.Payments)
	if err != nil {
		return nil, fmt.Errorf("error while loading payments: %w", err)
	}

	products, err := e.loader.LoadProducts(ctx, sources.Products)
	if err != nil {
		return nil, fmt.Errorf("error while loading products: %w", err)
	}

	orders, err := e.loader.LoadOrders(ctx, sources.Orders)
	if err != nil {
		return nil, fmt.Errorf("error while loading orders: %w", err)
	}

	zap.L().Debug("settlement sources loaded",
		zap.Int("payments", len(payments)),
		zap.Int("products", len(products)),
		zap.Int("orders", len(orders)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paid := aggregator.CalculateTotalAmountPaidPerUser(payments)

	billed, err := aggregator.CalculateTotalAmountBilledPerUser(orders, products)
	if err != nil {
		return nil, err
	}

	settlements := CalculateOverallSettlementPerUser(paid, billed)

	zap.L().Info("settlement evaluated", zap.Int("users", len(settlements)))

	return settlements, nil
}
