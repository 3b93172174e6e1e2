package validator

import "github.com/avGenie/go-coffee-settlement/internal/app/model"

func Payment(payment model.Payment) bool {
	return len(payment.User) > 0
}

func Order(order model.Order) bool {
	return len(order.User) > 0 && len(order.Drink) > 0 && len(order.Size) > 0
}

func Product(product model.Product) bool {
	return len(product.DrinkName) > 0 && product.Prices != nil
}
