package settlement

import "github.com/avGenie/go-coffee-settlement/internal/app/entity"

// CalculateOverallSettlementPerUser builds one settlement for every user present in paid or billed.
// A user missing from one of the maps counts as zero there.
func CalculateOverallSettlementPerUser(paid, billed entity.AmountPerUser) entity.Settlements {
	settlements := make(entity.Settlements, len(paid)+len(billed))

	for user, amount := range paid {
		settlements[user] = entity.CreateSettlement(amount, billed[user])
	}

	for user, amount := range billed {
		if _, ok := settlements[user]; ok {
			continue
		}

		settlements[user] = entity.CreateSettlement(0, amount)
	}

	return settlements
}
