package product

// Service defines the catalog operations used by the bot handlers.
type Service interface {
	GetProductByID(id string) (*Product, error)
	ListProducts(opts ListOptions) (*ListResult, error)
	SearchProducts(query string, page int) (*ListResult, error)
	FeaturedProducts(limit int) ([]Product, error)
	Categories() ([]Category, error)
	FormatPrice(amount int) string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProductByID(id string) (*Product, error) {
	return s.repo.GetByID(id)
}

func (s *service) ListProducts(opts ListOptions) (*ListResult, error) {
	return s.repo.List(opts)
}

func (s *service) SearchProducts(query string, page int) (*ListResult, error) {
	return s.repo.List(ListOptions{Search: query, Page: page})
}

func (s *service) FeaturedProducts(limit int) ([]Product, error) {
	res, err := s.repo.List(ListOptions{Featured: true, Limit: limit})
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (s *service) Categories() ([]Category, error) {
	return s.repo.Categories()
}

func (s *service) FormatPrice(amount int) string {
	return FormatAmount(s.repo.Settings().CurrencySymbol, amount)
}
