package converter

import (
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
)

func ConvertPaymentsToEntity(payments model.Payments) entity.Payments {
	out := make(entity.Payments, 0, len(payments))
	for _, payment := range payments {
		out = append(out, entity.Payment{
			User:   entity.UserID(payment.User),
			Amount: payment.Amount,
		})
	}

	return out
}
