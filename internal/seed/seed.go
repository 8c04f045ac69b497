// Package seed fills an empty store with the default price list, a sample
// client, the clinic staff and the default settings. Each collection is
// seeded only while it has zero rows, so running it on every startup never
// duplicates data. It deliberately does not repair a partially emptied
// collection: whatever the operator deleted stays deleted.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// ErrInitialization indicates that seeding the store failed
var ErrInitialization = errors.New("database initialization failed")

// Initialize seeds the services, clients, providers and settings
// collections if they are empty. Call it once at startup; failures wrap
// ErrInitialization and leave notification to the caller.
func Initialize(ctx context.Context, store storage.Store) error {
	if err := initialize(ctx, store); err != nil {
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	return nil
}

func initialize(ctx context.Context, store storage.Store) error {
	count, err := store.CountServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count == 0 {
		for _, service := range defaultServices() {
			if _, err := store.AddService(ctx, service); err != nil {
				return fmt.Errorf("failed to seed services: %w", err)
			}
		}
	}

	count, err = store.CountClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to count clients: %w", err)
	}
	if count == 0 {
		for _, client := range defaultClients() {
			if _, err := store.AddClient(ctx, client); err != nil {
				return fmt.Errorf("failed to seed clients: %w", err)
			}
		}
	}

	count, err = store.CountProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to count providers: %w", err)
	}
	if count == 0 {
		for _, provider := range defaultProviders() {
			if _, err := store.AddProvider(ctx, provider); err != nil {
				return fmt.Errorf("failed to seed providers: %w", err)
			}
		}
	}

	count, err = store.CountSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count == 0 {
		for key, value := range DefaultSettings() {
			if _, err := store.AddSetting(ctx, &models.Setting{Key: key, Value: value}); err != nil {
				return fmt.Errorf("failed to seed settings: %w", err)
			}
		}
	}

	return nil
}

// defaultServices is the initial laser price list in SYP. Dynamic-priced
// entries are billed per pulse instead of the flat price.
func defaultServices() []*models.Service {
	now := time.Now()
	return []*models.Service{
		{Name: "وجه كامل", Price: 50000, DynamicPrice: false, CreatedAt: now},
		{Name: "شارب", Price: 0, DynamicPrice: true, CreatedAt: now},
		{Name: "ذقن", Price: 0, DynamicPrice: true, CreatedAt: now},
		{Name: "كف اليد", Price: 0, DynamicPrice: true, CreatedAt: now},
		{Name: "ايدين كاملين", Price: 150000, DynamicPrice: false, CreatedAt: now},
		{Name: "ساعدين", Price: 80000, DynamicPrice: false, CreatedAt: now},
		{Name: "عضدين", Price: 90000, DynamicPrice: false, CreatedAt: now},
		{Name: "رجلين كاملين", Price: 250000, DynamicPrice: false, CreatedAt: now},
		{Name: "ساقين", Price: 120000, DynamicPrice: false, CreatedAt: now},
		{Name: "فخذين", Price: 150000, DynamicPrice: false, CreatedAt: now},
		{Name: "ارداف", Price: 50000, DynamicPrice: false, CreatedAt: now},
	}
}

func defaultClients() []*models.Client {
	return []*models.Client{
		{
			Name:                  "سارة أحمد",
			Phone:                 "0956789123",
			Email:                 "sara@example.com",
			HairType:              "ناعم",
			HairColor:             "أسود",
			SkinType:              "جافة",
			Allergies:             "نعم - لاتكس",
			CurrentSessions:       3,
			RemainingSessions:     2,
			MostRequestedServices: "وجه كامل، ليزر ساقين",
			RemainingPayments:     0,
			Notes:                 "تفضل موعد بعد الظهر",
			CreatedAt:             time.Now(),
		},
	}
}

func defaultProviders() []*models.Provider {
	now := time.Now()
	return []*models.Provider{
		{Name: "د. رشا معتوق", Phone: "+963956961395", Role: "طبيبة", Active: true, CreatedAt: now},
		{Name: "مريم خليل", Phone: "", Role: "فني", Active: true, CreatedAt: now},
	}
}

// DefaultSettings returns the configuration the settings screen expects
// on first run. Exposed so callers can look up defaults for missing keys.
func DefaultSettings() map[string]string {
	return map[string]string{
		"clinic_name":       "مركز غزل للتجميل",
		"clinic_phone":      "+963956961395",
		"clinic_address":    "سوريا - ريف دمشق التل موقف طيبة مقابل المركز الثقافي الجديد",
		"clinic_email":      "",
		"print_header":      "عيادة جوزيل للتجميل",
		"print_footer":      "شكراً لزيارتكم",
		"backup_path":       "",
		"theme":             "light",
		"rtl_enabled":       "true",
		"whatsapp_template": "مرحباً {client_name}، نذكرك بموعدك في {clinic_name} بتاريخ {appointment_date} الساعة {appointment_time}",
		"email_template":    "عزيزتنا {client_name}، موعدك القادم في {clinic_name} بتاريخ {appointment_date} الساعة {appointment_time}. نتمنى لك يوماً سعيداً",
	}
}
