package storage

import (
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
)

// Snapshot is a complete, self-contained copy of the store. Every
// collection is present even when empty; records carry their original
// identifiers so a restore reproduces them verbatim. This is also the
// shape of the backup file, minus JSON encoding.
type Snapshot struct {
	Timestamp    time.Time             `json:"timestamp"`
	Clients      []*models.Client      `json:"clients"`
	Appointments []*models.Appointment `json:"appointments"`
	Services     []*models.Service     `json:"services"`
	Invoices     []*models.Invoice     `json:"invoices"`
	Settings     []*models.Setting     `json:"settings"`
	Providers    []*models.Provider    `json:"providers"`
}
