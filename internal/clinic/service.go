// Package clinic is the application layer over the store: it owns the
// write-time contracts the store itself does not check, most importantly
// the invoice balance, and the denormalized client copies on new
// appointments and invoices.
package clinic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/messages"
	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
	"github.com/OLMA25/guzels-clinic-management-system/internal/validation"
)

// ErrUnbalancedInvoice indicates an invoice whose paid and remaining
// amounts do not add up to its total. Such invoices are rejected before
// they reach the store.
var ErrUnbalancedInvoice = errors.New("invoice amounts do not balance")

// Service wires the dashboard operations to the store
type Service struct {
	store storage.Store
}

// NewService creates the application service on top of a store
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// checkInvoice recomputes the derived remaining amount and rejects a
// record that disagrees with it. Every invoice write path goes through
// this single check so the balance cannot drift between entry points.
func checkInvoice(invoice *models.Invoice) error {
	if invoice.RemainingAmount != models.RemainingAmount(invoice.TotalAmount, invoice.PaidAmount) {
		return fmt.Errorf("%w: paid %.0f + remaining %.0f != total %.0f",
			ErrUnbalancedInvoice, invoice.PaidAmount, invoice.RemainingAmount, invoice.TotalAmount)
	}
	return nil
}

// CreateInvoice validates the balance invariant and stores the invoice
func (s *Service) CreateInvoice(ctx context.Context, invoice *models.Invoice) (int64, error) {
	if err := checkInvoice(invoice); err != nil {
		return 0, err
	}

	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}

	return s.store.AddInvoice(ctx, invoice)
}

// UpdateInvoice validates the balance invariant and replaces the invoice
func (s *Service) UpdateInvoice(ctx context.Context, id int64, invoice *models.Invoice) error {
	if err := checkInvoice(invoice); err != nil {
		return err
	}

	return s.store.UpdateInvoice(ctx, id, invoice)
}

// RegisterClient checks the client form fields and stores the record.
// The phone may be empty; a non-empty one must be a plausible number.
func (s *Service) RegisterClient(ctx context.Context, client *models.Client) (int64, error) {
	if client.Name == "" {
		return 0, fmt.Errorf("client name cannot be empty")
	}
	if err := validation.ValidatePhone(client.Phone); err != nil {
		return 0, fmt.Errorf("invalid phone: %w", err)
	}

	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}

	return s.store.AddClient(ctx, client)
}

// BookAppointment creates an appointment for an existing client, copying
// the client's name, phone and email into the record. The copies are
// deliberate: the appointment keeps showing what the client was called
// when it was booked, even if the client record changes later.
func (s *Service) BookAppointment(ctx context.Context, clientID int64, date, timeOfDay, service, provider, notes string) (int64, error) {
	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to load client: %w", err)
	}

	appointment := &models.Appointment{
		ClientID:          client.ID,
		ClientName:        client.Name,
		Phone:             client.Phone,
		Email:             client.Email,
		Date:              date,
		Time:              timeOfDay,
		Service:           service,
		Provider:          provider,
		Notes:             notes,
		Status:            models.AppointmentUnconfirmed,
		RemainingPayments: client.RemainingPayments,
		CreatedAt:         time.Now(),
	}

	return s.store.AddAppointment(ctx, appointment)
}

// SetAppointmentStatus updates the confirmation status of an appointment
func (s *Service) SetAppointmentStatus(ctx context.Context, id int64, status string) error {
	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	appointment.Status = status
	return s.store.UpdateAppointment(ctx, id, appointment)
}

// ReminderMessage renders the reminder template stored under templateKey
// (whatsapp_template or email_template) for the given appointment.
func (s *Service) ReminderMessage(ctx context.Context, appointmentID int64, templateKey string) (string, error) {
	appointment, err := s.store.GetAppointment(ctx, appointmentID)
	if err != nil {
		return "", fmt.Errorf("failed to load appointment: %w", err)
	}

	template, err := s.store.GetSetting(ctx, templateKey)
	if err != nil {
		return "", fmt.Errorf("failed to load template: %w", err)
	}

	clinicName, err := s.store.GetSetting(ctx, "clinic_name")
	if err != nil {
		return "", fmt.Errorf("failed to load clinic name: %w", err)
	}

	return messages.Render(template, appointment, clinicName), nil
}

// Stats summarizes the dashboard counters
type Stats struct {
	Clients           int
	Appointments      int
	AppointmentsToday int
	Services          int
	Invoices          int
	Providers         int
}

// Stats counts the collections and today's appointments
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.Clients, err = s.store.CountClients(ctx); err != nil {
		return nil, err
	}
	if stats.Appointments, err = s.store.CountAppointments(ctx); err != nil {
		return nil, err
	}
	if stats.Services, err = s.store.CountServices(ctx); err != nil {
		return nil, err
	}
	if stats.Invoices, err = s.store.CountInvoices(ctx); err != nil {
		return nil, err
	}
	if stats.Providers, err = s.store.CountProviders(ctx); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	for _, appointment := range appointments {
		if appointment.Date == today {
			stats.AppointmentsToday++
		}
	}

	return stats, nil
}
