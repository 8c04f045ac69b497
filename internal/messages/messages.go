// Package messages renders the reminder templates configurable on the
// settings screen. Templates carry {client_name}, {appointment_date},
// {appointment_time} and {clinic_name} placeholders.
package messages

import (
	"strings"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

// Placeholder names accepted in reminder templates
const (
	PlaceholderClientName      = "{client_name}"
	PlaceholderAppointmentDate = "{appointment_date}"
	PlaceholderAppointmentTime = "{appointment_time}"
	PlaceholderClinicName      = "{clinic_name}"
)

// Render substitutes the appointment's client name, date and time plus
// the clinic name into the template. Unknown placeholders are left as-is.
func Render(template string, appointment *models.Appointment, clinicName string) string {
	replacer := strings.NewReplacer(
		PlaceholderClientName, appointment.ClientName,
		PlaceholderAppointmentDate, appointment.Date,
		PlaceholderAppointmentTime, appointment.Time,
		PlaceholderClinicName, clinicName,
	)
	return replacer.Replace(template)
}
