package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteAboveFreeShippingThreshold(t *testing.T) {
	q := DefaultConfig().QuoteFor(150000)

	assert.Equal(t, float64(0), q.ShippingCost)
	assert.Equal(t, float64(18000), q.Tax)
	assert.Equal(t, float64(168000), q.Total)
}

func TestQuoteBelowFreeShippingThreshold(t *testing.T) {
	q := DefaultConfig().QuoteFor(50000)

	assert.Equal(t, float64(25000), q.ShippingCost)
	assert.Equal(t, float64(6000), q.Tax)
	assert.Equal(t, float64(81000), q.Total)
}

func TestFreeShippingIsStrictlyAboveThreshold(t *testing.T) {
	cfg := DefaultConfig()

	// Exactly at the threshold still pays shipping
	assert.Equal(t, cfg.ShippingCost, cfg.ShippingCostFor(cfg.FreeShippingThreshold))
	assert.Equal(t, float64(0), cfg.ShippingCostFor(cfg.FreeShippingThreshold+1))
}

func TestQuoteForEmptyCart(t *testing.T) {
	q := DefaultConfig().QuoteFor(0)

	assert.Equal(t, float64(0), q.Subtotal)
	assert.Equal(t, float64(25000), q.ShippingCost)
	assert.Equal(t, float64(0), q.Tax)
	assert.Equal(t, float64(25000), q.Total)
}
