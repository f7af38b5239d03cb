package pricing

import (
	"os"
	"strconv"
)

// Config holds the storefront pricing policy. The free-shipping threshold,
// flat shipping cost and tax rate live here and nowhere else: both the cart
// summary and checkout consume this single source.
type Config struct {
	FreeShippingThreshold float64 // Orders above this amount ship free
	ShippingCost          float64 // Flat cost below the threshold
	TaxRate               float64
}

// DefaultConfig returns the default pricing policy (amounts in so'm)
func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: 100000,
		ShippingCost:          25000,
		TaxRate:               0.12,
	}
}

// LoadConfig loads the pricing policy from environment variables,
// falling back to defaults
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v, err := strconv.ParseFloat(os.Getenv("FREE_SHIPPING_THRESHOLD"), 64); err == nil && v > 0 {
		cfg.FreeShippingThreshold = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("SHIPPING_COST"), 64); err == nil && v >= 0 {
		cfg.ShippingCost = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TAX_RATE"), 64); err == nil && v >= 0 {
		cfg.TaxRate = v
	}
	return cfg
}

// Quote is the priced breakdown of a cart subtotal
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// ShippingCostFor returns the shipping cost for a subtotal. Shipping is free
// strictly above the threshold: a subtotal equal to it still pays the flat cost.
func (c Config) ShippingCostFor(subtotal float64) float64 {
	if subtotal > c.FreeShippingThreshold {
		return 0
	}
	return c.ShippingCost
}

// TaxFor returns the tax owed on a subtotal
func (c Config) TaxFor(subtotal float64) float64 {
	return subtotal * c.TaxRate
}

// QuoteFor prices a subtotal into a full quote
func (c Config) QuoteFor(subtotal float64) Quote {
	shipping := c.ShippingCostFor(subtotal)
	tax := c.TaxFor(subtotal)
	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}
