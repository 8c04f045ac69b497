package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

func TestRender(t *testing.T) {
	appointment := &models.Appointment{
		ClientName: "سارة أحمد",
		Date:       "2025-02-14",
		Time:       "14:30",
	}

	template := "مرحباً {client_name}، نذكرك بموعدك في {clinic_name} بتاريخ {appointment_date} الساعة {appointment_time}"

	got := Render(template, appointment, "مركز غزل للتجميل")
	assert.Equal(t, "مرحباً سارة أحمد، نذكرك بموعدك في مركز غزل للتجميل بتاريخ 2025-02-14 الساعة 14:30", got)
}

func TestRender_UnknownPlaceholderLeftAsIs(t *testing.T) {
	appointment := &models.Appointment{ClientName: "سارة أحمد"}

	got := Render("{client_name} {unknown}", appointment, "")
	assert.Equal(t, "سارة أحمد {unknown}", got)
}

func TestRender_RepeatedPlaceholders(t *testing.T) {
	appointment := &models.Appointment{ClientName: "سارة"}

	got := Render("{client_name}، {client_name}", appointment, "")
	assert.Equal(t, "سارة، سارة", got)
}
