package converter

import (
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
)

func ConvertProductsToEntity(products model.Products) entity.Products {
	out := make(entity.Products, 0, len(products))
	for _, product := range products {
		prices := make(map[string]float64, len(product.Prices))
		for size, price := range product.Prices {
			prices[size] = price
		}

		out = append(out, entity.Product{
			DrinkName: product.DrinkName,
			Prices:    prices,
		})
	}

	return out
}
