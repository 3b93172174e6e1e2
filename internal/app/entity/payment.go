package entity

type Payments []Payment

type Payment struct {
	User   UserID
	Amount float64
}
