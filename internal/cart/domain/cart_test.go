package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
)

func TestSubtotalSumsPriceTimesQuantity(t *testing.T) {
	items := []CartItem{
		{Quantity: 2, Product: catalog.Product{NewPrice: 45000}},
		{Quantity: 1, Product: catalog.Product{NewPrice: 120000}},
	}

	assert.Equal(t, float64(210000), Subtotal(items))
}

func TestSubtotalOfEmptyCartIsZero(t *testing.T) {
	assert.Equal(t, float64(0), Subtotal(nil))
}
