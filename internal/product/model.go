package product

import "time"

type Variant struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	Description string    `json:"description,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AggregateStock is the sum of variant stocks, or 1 for a variantless
// product (treated as a single orderable unit).
func (p *Product) AggregateStock() int {
	if len(p.Variants) == 0 {
		return 1
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type Settings struct {
	Currency           string `json:"currency"`
	CurrencySymbol     string `json:"currency_symbol"`
	MaxProductsPerPage int    `json:"max_products_per_page"`
}

// Catalog is the on-disk document layout of products.json.
type Catalog struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Settings   Settings   `json:"settings"`
}

func DefaultSettings() Settings {
	return Settings{
		Currency:           "IDR",
		CurrencySymbol:     "Rp",
		MaxProductsPerPage: 5,
	}
}

type SortBy string

const (
	SortDefault   SortBy = ""
	SortPriceAsc  SortBy = "price_asc"
	SortPriceDesc SortBy = "price_desc"
	SortName      SortBy = "name"
	SortNewest    SortBy = "newest"
)

type ListOptions struct {
	Category string
	Featured bool
	Search   string
	SortBy   SortBy
	Page     int
	Limit    int
}

type Pagination struct {
	CurrentPage   int
	TotalPages    int
	TotalProducts int
	HasNext       bool
	HasPrev       bool
}

type ListResult struct {
	Products   []Product
	Pagination Pagination
}
