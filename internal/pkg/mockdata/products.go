// Package mockdata generates the demo catalog the storefront ships with.
// Output is deterministic for a given seed.
package mockdata

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

var (
	Categories = []string{"Coats", "Clothing", "Accessories", "Shoes", "Bags", "Jewelry", "Beauty"}
	Brands     = []string{"DORODOStyle", "LuxeAI", "EliteWear", "PremiumCraft", "ArtisanLux"}
	Colors     = []string{"#5C4033", "#90EE90", "#FF0000", "#0000FF"}
	Sizes      = []string{"S", "M", "L", "XL", "XXL", "XXXL"}
	Tags       = []string{"Women", "Coat", "Fashion", "Jacket"}

	adjectives = []string{"Elegant", "Handcrafted", "Refined", "Sleek", "Tailored", "Luxurious", "Modern", "Classic"}
	materials  = []string{"Silk", "Cashmere", "Leather", "Wool", "Linen", "Velvet", "Suede", "Cotton"}
	nouns      = map[string][]string{
		"Coats":       {"Trench Coat", "Overcoat", "Parka", "Peacoat"},
		"Clothing":    {"Blouse", "Dress", "Blazer", "Trousers"},
		"Accessories": {"Scarf", "Belt", "Gloves", "Hat"},
		"Shoes":       {"Loafers", "Boots", "Heels", "Sneakers"},
		"Bags":        {"Tote", "Clutch", "Crossbody Bag", "Backpack"},
		"Jewelry":     {"Necklace", "Bracelet", "Earrings", "Ring"},
		"Beauty":      {"Serum", "Perfume", "Lip Set", "Palette"},
	}
	sentences = []string{
		"Designed for effortless layering across seasons.",
		"Finished by hand in small batches.",
		"A statement piece with a quiet silhouette.",
		"Cut from responsibly sourced materials.",
		"Pairs with everything from denim to evening wear.",
		"Generated in our AI studio and refined by our atelier.",
	}
)

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces mock products.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Products returns count products with IDs "1".."count".
func (g *Generator) Products(count int) []*domain.Product {
	products := make([]*domain.Product, 0, max(count, 0))
	for i := 0; i < count; i++ {
		products = append(products, g.product(i+1))
	}
	return products
}

func (g *Generator) product(n int) *domain.Product {
	category := pick(g.rng, Categories)

	// 50.00 - 2000.00 in whole cents
	price := domain.NewMoneyFromCents(5000 + g.rng.Int64N(200000-5000+1))

	var original *domain.Money
	if g.rng.Float64() > 0.7 {
		factor := 1.2 + g.rng.Float64()*0.8
		original = price.MultiplyByRat(domain.RatFromDecimal(factor)).Round2()
		if !original.GreaterThan(price) {
			original = nil
		}
	}

	return &domain.Product{
		ID:            strconv.Itoa(n),
		Name:          g.name(category),
		Brand:         pick(g.rng, Brands),
		SKU:           "GHFT" + g.alphanumeric(8),
		Category:      category,
		Description:   g.paragraph(),
		Price:         price,
		OriginalPrice: original,
		Stock:         g.rng.Int64N(51),
		IsAIGenerated: g.rng.Float64() > 0.6,
		IsLimited:     g.rng.Float64() > 0.8,
		Rating:        float64(35+g.rng.IntN(16)) / 10,
		Reviews:       10 + g.rng.Int64N(491),
		Sizes:         g.subset(Sizes, 4, 6),
		Colors:        g.subset(Colors, 2, 4),
		Tags:          g.subset(Tags, 2, 4),
	}
}

func (g *Generator) name(category string) string {
	return pick(g.rng, adjectives) + " " + pick(g.rng, materials) + " " + pick(g.rng, nouns[category])
}

func (g *Generator) paragraph() string {
	n := 2 + g.rng.IntN(2)
	return strings.Join(g.subset(sentences, n, n), " ")
}

func (g *Generator) alphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = skuAlphabet[g.rng.IntN(len(skuAlphabet))]
	}
	return string(b)
}

// subset picks between lo and hi distinct elements, keeping source order.
func (g *Generator) subset(src []string, lo, hi int) []string {
	n := lo + g.rng.IntN(hi-lo+1)
	idx := g.rng.Perm(len(src))[:n]

	keep := make([]bool, len(src))
	for _, i := range idx {
		keep[i] = true
	}
	out := make([]string, 0, n)
	for i, s := range src {
		if keep[i] {
			out = append(out, s)
		}
	}
	return out
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}
