package model

type Products []Product

type Product struct {
	DrinkName string             `json:"drink_name" yaml:"drink_name"`
	Prices    map[string]float64 `json:"prices" yaml:"prices"`
}
