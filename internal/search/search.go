// Package search implements the substring record matching the list
// screens use: a single query string checked against a handful of fields
// per record kind. An empty query matches everything.
package search

import (
	"strings"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

// FilterClients returns the clients whose name, phone or most requested
// services contain the query.
func FilterClients(clients []*models.Client, query string) []*models.Client {
	if query == "" {
		return clients
	}

	var matched []*models.Client
	for _, client := range clients {
		if strings.Contains(client.Name, query) ||
			strings.Contains(client.Phone, query) ||
			strings.Contains(client.MostRequestedServices, query) {
			matched = append(matched, client)
		}
	}
	return matched
}

// FilterAppointments returns the appointments whose client name, phone or
// service contain the query.
func FilterAppointments(appointments []*models.Appointment, query string) []*models.Appointment {
	if query == "" {
		return appointments
	}

	var matched []*models.Appointment
	for _, appointment := range appointments {
		if strings.Contains(appointment.ClientName, query) ||
			strings.Contains(appointment.Phone, query) ||
			strings.Contains(appointment.Service, query) {
			matched = append(matched, appointment)
		}
	}
	return matched
}

// FilterInvoices returns the invoices whose client name, phone or
// services contain the query.
func FilterInvoices(invoices []*models.Invoice, query string) []*models.Invoice {
	if query == "" {
		return invoices
	}

	var matched []*models.Invoice
	for _, invoice := range invoices {
		if strings.Contains(invoice.ClientName, query) ||
			strings.Contains(invoice.Phone, query) ||
			strings.Contains(invoice.Services, query) {
			matched = append(matched, invoice)
		}
	}
	return matched
}
