package product

import (
	"sort"
	"strings"
	"sync"

	"tamstore-bot/internal/storage"
)

// Repository provides access to the product catalog.
type Repository interface {
	GetByID(id string) (*Product, error)
	List(opts ListOptions) (*ListResult, error)
	Categories() ([]Category, error)
	Settings() Settings
}

// fileRepository keeps the catalog in memory and mirrors products.json.
type fileRepository struct {
	path string

	mu      sync.RWMutex
	catalog Catalog
}

// NewFileRepository loads the catalog from path, seeding an empty
// catalog when the file does not exist yet.
func NewFileRepository(path string) (Repository, error) {
	repo := &fileRepository{path: path}

	seed := Catalog{Settings: DefaultSettings()}
	if err := storage.LoadOrSeed(path, &repo.catalog, seed); err != nil {
		return nil, err
	}
	if repo.catalog.Settings.MaxProductsPerPage <= 0 {
		repo.catalog.Settings.MaxProductsPerPage = DefaultSettings().MaxProductsPerPage
	}
	return repo, nil
}

func (r *fileRepository) GetByID(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.catalog.Products {
		p := &r.catalog.Products[i]
		if p.ID == id && p.Active {
			cp := *p
			cp.Variants = append([]Variant(nil), p.Variants...)
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *fileRepository) List(opts ListOptions) (*ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []Product
	for _, p := range r.catalog.Products {
		if !p.Active {
			continue
		}
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Featured && !p.Featured {
			continue
		}
		if opts.Search != "" && !matches(&p, opts.Search) {
			continue
		}
		products = append(products, p)
	}

	sortProducts(products, opts.SortBy)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = r.catalog.Settings.MaxProductsPerPage
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ListResult{
		Products: products[start:end],
		Pagination: Pagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalProducts: total,
			HasNext:       end < total,
			HasPrev:       page > 1,
		},
	}, nil
}

func (r *fileRepository) Categories() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cats []Category
	for _, c := range r.catalog.Categories {
		if c.Active {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

func (r *fileRepository) Settings() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog.Settings
}

func matches(p *Product, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, by SortBy) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	default:
		// Featured first, then newest.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
