package converter

import (
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
)

func ConvertOrdersToEntity(orders model.Orders) entity.Orders {
	out := make(entity.Orders, 0, len(orders))
	for _, order := range orders {
		out = append(out, entity.Order{
			User:  entity.UserID(order.User),
			Drink: order.Drink,
			Size:  order.Size,
		})
	}

	return out
}
