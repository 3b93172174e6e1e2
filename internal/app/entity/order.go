package entity

type Orders []Order

type Order struct {
	User  UserID
	Drink string
	Size  string
}
