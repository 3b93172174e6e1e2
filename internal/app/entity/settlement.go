package entity

type Settlements map[UserID]Settlement

type Settlement struct {
	AmountPaid float64
	AmountOwed float64
}

// CreateSettlement keeps the sign of the owed amount: negative means credit.
func CreateSettlement(paid, billed float64) Settlement {
	return Settlement{
		AmountPaid: paid,
		AmountOwed: billed - paid,
	}
}
