package entity

import "strings"

type Products []Product

type Product struct {
	DrinkName string
	Prices    map[string]float64
}

func (p Product) Price(size string) (float64, bool) {
	price, ok := p.Prices[size]

	return price, ok
}

// Catalog indexes products by lowercased drink name.
// When several products share a name the first one in catalog order is kept.
type Catalog map[string]Product

func CreateCatalog(products Products) Catalog {
	catalog := make(Catalog, len(products))
	for _, product := range products {
		key := strings.ToLower(product.DrinkName)
		if _, ok := catalog[key]; ok {
			continue
		}

		catalog[key] = product
	}

	return catalog
}

func (c Catalog) Find(drink string) (Product, bool) {
	product, ok := c[strings.ToLower(drink)]

	return product, ok
}
