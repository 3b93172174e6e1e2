package entity

type Sources struct {
	Payments string
	Products string
	Orders   string
}

func (s Sources) Complete() bool {
	return len(s.Payments) != 0 && len(s.Products) != 0 && len(s.Orders) != 0
}
