package model

type Payments []Payment

type Payment struct {
	User   string  `json:"user" yaml:"user"`
	Amount float64 `json:"amount" yaml:"amount"`
}
