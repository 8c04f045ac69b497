package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

func TestFilterClients(t *testing.T) {
	clients := []*models.Client{
		{Name: "سارة أحمد", Phone: "0956789123", MostRequestedServices: "وجه كامل"},
		{Name: "رنا محمد", Phone: "0944556677", MostRequestedServices: "ساقين"},
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "empty query matches all", query: "", want: 2},
		{name: "by name", query: "سارة", want: 1},
		{name: "by phone fragment", query: "094", want: 1},
		{name: "by requested service", query: "ساقين", want: 1},
		{name: "no match", query: "غير موجود", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterClients(clients, tt.query), tt.want)
		})
	}
}

func TestFilterAppointments(t *testing.T) {
	appointments := []*models.Appointment{
		{ClientName: "سارة أحمد", Phone: "0956789123", Service: "وجه كامل"},
		{ClientName: "رنا محمد", Phone: "0944556677", Service: "ساقين"},
	}

	assert.Len(t, FilterAppointments(appointments, ""), 2)
	assert.Len(t, FilterAppointments(appointments, "وجه"), 1)
	assert.Len(t, FilterAppointments(appointments, "رنا"), 1)
	assert.Empty(t, FilterAppointments(appointments, "زائر"))
}

func TestFilterInvoices(t *testing.T) {
	invoices := []*models.Invoice{
		{ClientName: "سارة أحمد", Phone: "0956789123", Services: "وجه كامل، شارب"},
		{ClientName: "رنا محمد", Phone: "0944556677", Services: "ساقين"},
	}

	assert.Len(t, FilterInvoices(invoices, ""), 2)
	assert.Len(t, FilterInvoices(invoices, "شارب"), 1)
	assert.Len(t, FilterInvoices(invoices, "09"), 2)
}
