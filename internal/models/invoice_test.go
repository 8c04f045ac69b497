package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingAmount(t *testing.T) {
	assert.Equal(t, float64(25000), RemainingAmount(75000, 50000))
	assert.Equal(t, float64(0), RemainingAmount(50000, 50000))
	assert.Equal(t, float64(-10000), RemainingAmount(40000, 50000))
}

func TestInvoiceBalanced(t *testing.T) {
	balanced := &Invoice{TotalAmount: 75000, PaidAmount: 50000, RemainingAmount: 25000}
	assert.True(t, balanced.Balanced())

	drifted := &Invoice{TotalAmount: 75000, PaidAmount: 50000, RemainingAmount: 10000}
	assert.False(t, drifted.Balanced())
}

func TestServicePriceFor(t *testing.T) {
	flat := &Service{Name: "وجه كامل", Price: 50000}
	assert.Equal(t, float64(50000), flat.PriceFor(30))

	perPulse := &Service{Name: "شارب", DynamicPrice: true}
	assert.Equal(t, float64(20*PulsePrice), perPulse.PriceFor(20))
}
