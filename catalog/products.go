package catalog

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultSeed  = 1234
	DefaultCount = 10

	minPrice = 1
	maxPrice = 1000
)

// Product is a generated catalogue entry. Price is a two-decimal string.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Generator builds fake catalogues from a seed.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator returns a Generator that logs through logger (nil disables logging).
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate returns count products. The same seed always yields the same
// products; a zero seed lets the faker pick a random one.
func (g *Generator) Generate(seed uint64, count int) []Product {
	g.logger.Info("Generating products", zap.Int("count", count), zap.Uint64("seed", seed))

	if count < 0 {
		count = 0
	}

	faker := gofakeit.New(seed)
	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		price := decimal.NewFromFloat(faker.Price(minPrice, maxPrice)).StringFixed(2)
		products = append(products, Product{
			ID:    faker.UUID(),
			Name:  faker.ProductName(),
			Price: price,
		})
	}
	return products
}

// GenerateProducts uses the default generator without logging.
func GenerateProducts(seed uint64, count int) []Product {
	return NewGenerator(nil).Generate(seed, count)
}
