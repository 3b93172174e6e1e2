package aggregator

import (
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	usecase "github.com/avGenie/go-coffee-settlement/internal/app/usecase/errors"
	"go.uber.org/zap"
)

// CalculateTotalAmountPaidPerUser sums payment amounts per user in input order.
func CalculateTotalAmountPaidPerUser(payments entity.Payments) entity.AmountPerUser {
	totals := make(entity.AmountPerUser)
	for _, payment := range payments {
		totals[payment.User] += payment.Amount
	}

	return totals
}

// CalculateTotalAmountBilledPerUser sums the catalog price of every order per user.
// An order that cannot be priced aborts the whole calculation with *usecase.ProductNotFoundError.
func CalculateTotalAmountBilledPerUser(orders entity.Orders, products entity.Products) (entity.AmountPerUser, error) {
	catalog := entity.CreateCatalog(products)

	totals := make(entity.AmountPerUser)
	for _, order := range orders {
		price, err := resolvePrice(catalog, order)
		if err != nil {
			return nil, err
		}

		totals[order.User] += price
	}

	return totals, nil
}

func resolvePrice(catalog entity.Catalog, order entity.Order) (float64, error) {
	product, ok := catalog.Find(order.Drink)
	if !ok {
		zap.L().Error("drink from order not found in product catalog",
			zap.String("user", order.User.String()),
			zap.String("drink", order.Drink),
		)

		return 0, &usecase.ProductNotFoundError{User: order.User, Drink: order.Drink, Size: order.Size}
	}

	price, ok := product.Price(order.Size)
	if !ok {
		zap.L().Error("size from order not found in product prices",
			zap.String("user", order.User.String()),
			zap.String("drink", order.Drink),
			zap.String("size", order.Size),
		)

		return 0, &usecase.ProductNotFoundError{User: order.User, Drink: order.Drink, Size: order.Size}
	}

	return price, nil
}
