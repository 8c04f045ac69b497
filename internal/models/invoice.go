package models

// PulsePrice is the per-pulse price in SYP used for dynamic-priced
// laser services.
const PulsePrice = 1500

// RemainingAmount derives the unpaid part of an invoice. Every write path
// must use this one function so the balance never drifts between forms.
func RemainingAmount(totalAmount, paidAmount float64) float64 {
	return totalAmount - paidAmount
}

// Balanced reports whether paid + remaining adds up to the invoice total.
func (i *Invoice) Balanced() bool {
	return i.PaidAmount+i.RemainingAmount == i.TotalAmount
}

// PriceFor returns the price of the service for the given number of laser
// pulses. Fixed-price services ignore the pulse count.
func (s *Service) PriceFor(pulses int) float64 {
	if s.DynamicPrice {
		return float64(pulses) * PulsePrice
	}
	return s.Price
}
