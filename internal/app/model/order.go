package model

type Orders []Order

type Order struct {
	User  string `json:"user" yaml:"user"`
	Drink string `json:"drink" yaml:"drink"`
	Size  string `json:"size" yaml:"size"`
}
