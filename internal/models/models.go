package models

import "time"

// Appointment confirmation statuses as shown on the appointments screen.
const (
	AppointmentConfirmed   = "مثبت"
	AppointmentUnconfirmed = "غير مثبت"
)

// Client represents a clinic client record.
// Identifiers are assigned by the store on insert and never reused.
type Client struct {
	CreatedAt             time.Time `json:"createdAt"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	HairType              string    `json:"hairType"`
	HairColor             string    `json:"hairColor"`
	SkinType              string    `json:"skinType"`
	Allergies             string    `json:"allergies"`
	MostRequestedServices string    `json:"mostRequestedServices"`
	Notes                 string    `json:"notes"`
	ID                    int64     `json:"id"`
	CurrentSessions       int       `json:"currentSessions"`
	RemainingSessions     int       `json:"remainingSessions"`
	RemainingPayments     float64   `json:"remainingPayments"`
}

// Appointment represents a booked visit. Client name/phone/email are
// denormalized copies taken at booking time, so the record keeps showing
// what the client was called when the appointment was made.
type Appointment struct {
	CreatedAt         time.Time `json:"createdAt"`
	ClientName        string    `json:"client"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Service           string    `json:"service"`
	Provider          string    `json:"provider"`
	Notes             string    `json:"notes"`
	Status            string    `json:"status"`
	ID                int64     `json:"id"`
	ClientID          int64     `json:"clientId"`
	RemainingPayments float64   `json:"remainingPayments"`
}

// Service is a price-list entry. Dynamic-priced services carry a zero
// nominal price; the real price is computed per laser pulse.
type Service struct {
	CreatedAt    time.Time `json:"createdAt"`
	Name         string    `json:"name"`
	ID           int64     `json:"id"`
	Price        float64   `json:"price"`
	DynamicPrice bool      `json:"dynamicPrice"`
}

// Invoice represents a billing record with denormalized client fields.
type Invoice struct {
	CreatedAt       time.Time `json:"createdAt"`
	ClientName      string    `json:"client"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Services        string    `json:"services"`
	PaymentType     string    `json:"paymentType"`
	CreatedBy       string    `json:"createdBy"`
	ServiceProvider string    `json:"serviceProvider"`
	ID              int64     `json:"id"`
	ClientID        int64     `json:"clientId"`
	PaidAmount      float64   `json:"paidAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	TotalAmount     float64   `json:"totalAmount"`
}

// Setting is a flat key/value configuration row.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	ID    int64  `json:"id"`
}

// Provider is a staff member who performs services.
type Provider struct {
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ID        int64     `json:"id"`
	Active    bool      `json:"active"`
}
