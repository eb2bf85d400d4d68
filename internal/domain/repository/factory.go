package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Brands() BrandRepository
	Processes() ProcessRepository
	Quotes() QuoteRepository
	Orders() OrderRepository
}
