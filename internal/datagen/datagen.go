// Package datagen produces plausible synthetic records for seeding and
// testing. Values are drawn uniformly from fixed vocabularies and ranges.
package datagen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ivolkov/salesoffice/internal/models"
)

var (
	companyPrefixes = []string{"Tech", "Global", "Super", "Mega", "Pro", "Smart", "Elite", "Prime", "First", "Best"}
	companySuffixes = []string{"Corp", "Systems", "Solutions", "Industries", "Group", "Partners", "International", "Ltd", "Inc", "Co"}

	manufacturers = []string{
		"TechPro Manufacturing",
		"GlobalTech Industries",
		"Innovative Solutions",
		"Quality Producers",
		"Premium Products",
		"Standard Manufacturing",
		"Elite Industries",
		"Professional Products",
		"Advanced Systems",
		"Core Manufacturing",
	}

	units = []string{"piece", "kg", "liter", "meter", "set", "box", "pack", "ton", "pair", "bundle"}

	productNames = []string{
		"Laptop Computer",
		"Office Chair",
		"Desk Lamp",
		"Printer Paper",
		"Coffee Maker",
		"Filing Cabinet",
		"Whiteboard",
		"Phone Charger",
		"USB Drive",
		"Wireless Mouse",
	}

	streets = []string{"Main", "Park", "Lake", "Hill", "Forest", "River", "Mountain", "Valley", "Spring", "Meadow"}
	cities  = []string{"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Kazan", "Nizhny Novgorod", "Samara"}

	firstNames = []string{"Ivan", "Alexander", "Dmitry", "Mikhail", "Sergey", "Anna", "Elena", "Maria", "Olga", "Natalia"}
	lastNames  = []string{"Ivanov", "Petrov", "Sidorov", "Smirnov", "Kuznetsov", "Popov", "Sokolov", "Lebedev", "Kozlov"}
)

type Generator struct {
	rng *rand.Rand
}

// New returns a generator with a fixed seed for reproducible output
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom returns a generator seeded from the current time
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// CompanyName builds a two-part company name
func (g *Generator) CompanyName() string {
	return fmt.Sprintf("%s %s", g.pick(companyPrefixes), g.pick(companySuffixes))
}

// Manufacturer picks a manufacturer name
func (g *Generator) Manufacturer() string {
	return g.pick(manufacturers)
}

// Unit picks a unit-of-measure label
func (g *Generator) Unit() string {
	return g.pick(units)
}

// ProductName picks a product name
func (g *Generator) ProductName() string {
	return g.pick(productNames)
}

// Phone builds a phone number of the form +7(9xx)xxxxxxx
func (g *Generator) Phone() string {
	return fmt.Sprintf("+7(%d)%d", 900+g.rng.Intn(100), 1000000+g.rng.Intn(9000000))
}

// Address builds a street address
func (g *Generator) Address() string {
	return fmt.Sprintf("%d %s St., %s", 1+g.rng.Intn(100), g.pick(streets), g.pick(cities))
}

// PersonName builds a first+last person name
func (g *Generator) PersonName() string {
	return fmt.Sprintf("%s %s", g.pick(firstNames), g.pick(lastNames))
}

// Quantity returns a quantity in [1, 1000] rounded to two decimals
func (g *Generator) Quantity() float64 {
	return round2(1 + g.rng.Float64()*999)
}

// Price returns a price in [10, 10000] rounded to two decimals
func (g *Generator) Price() float64 {
	return round2(10 + g.rng.Float64()*9990)
}

// DeliveryDate returns a date between 365 days ago and 30 days from now
func (g *Generator) DeliveryDate() time.Time {
	start := time.Now().AddDate(0, 0, -365)
	spread := 365 + 30
	return start.AddDate(0, 0, g.rng.Intn(spread+1))
}

// Product builds a synthetic product creation request
func (g *Generator) Product() models.CreateProduct {
	return models.CreateProduct{
		Name:         g.ProductName(),
		Manufacturer: g.Manufacturer(),
		Unit:         g.Unit(),
	}
}

// Customer builds a synthetic customer creation request
func (g *Generator) Customer() models.CreateCustomer {
	return models.CreateCustomer{
		Name:          g.CompanyName(),
		Address:       g.Address(),
		Phone:         g.Phone(),
		ContactPerson: g.PersonName(),
	}
}

// Purchase builds a synthetic purchase creation request referencing one of
// the given product and customer ids
func (g *Generator) Purchase(productIDs, customerIDs []int64) models.CreatePurchase {
	return models.CreatePurchase{
		ProductID:    productIDs[g.rng.Intn(len(productIDs))],
		CustomerID:   customerIDs[g.rng.Intn(len(customerIDs))],
		Quantity:     g.Quantity(),
		DeliveryDate: g.DeliveryDate(),
		PricePerUnit: g.Price(),
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
