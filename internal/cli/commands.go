// Package cli implements the clinic command line: seeding, listing,
// settings, backup/restore, login and dashboard stats against a local
// store file.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/OLMA25/guzels-clinic-management-system/internal/auth"
	"github.com/OLMA25/guzels-clinic-management-system/internal/backup"
	"github.com/OLMA25/guzels-clinic-management-system/internal/clinic"
	"github.com/OLMA25/guzels-clinic-management-system/internal/models"
	"github.com/OLMA25/guzels-clinic-management-system/internal/search"
	"github.com/OLMA25/guzels-clinic-management-system/internal/seed"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// PrintUsage prints the command summary
func PrintUsage(io IO) {
	io.Println("Güzel Clinic Management")
	io.Println()
	io.Println("Usage: clinic [flags] <command>")
	io.Println()
	io.Println("Commands:")
	io.Println("  init                        Seed an empty store with defaults")
	io.Println("  add client <name> <phone>   Register a new client")
	io.Println("  list <collection> [query]   List clients, appointments, services, invoices or providers")
	io.Println("  settings list               Show all settings")
	io.Println("  settings get <key>          Show one setting")
	io.Println("  settings set <key> <value>  Upsert one setting")
	io.Println("  backup [dir]                Write a dated JSON backup file")
	io.Println("  restore <file>              Replace the store with a backup file")
	io.Println("  login                       Verify credentials and print a session token")
	io.Println("  stats                       Show dashboard counters")
}

// RunInit seeds the default rows into empty collections
func RunInit(ctx context.Context, io IO, store storage.Store) error {
	if err := seed.Initialize(ctx, store); err != nil {
		return err
	}
	io.Println("Store initialized")
	return nil
}

// RunAdd registers a new record; only clients can be added for now.
// Usage: add client <name> <phone> [email]
func RunAdd(ctx context.Context, io IO, args []string, service *clinic.Service) error {
	if len(args) < 3 || args[0] != "client" {
		return fmt.Errorf("usage: clinic add client <name> <phone> [email]")
	}

	client := &models.Client{Name: args[1], Phone: args[2]}
	if len(args) > 3 {
		client.Email = args[3]
	}

	id, err := service.RegisterClient(ctx, client)
	if err != nil {
		return err
	}

	io.Printf("Client %d added\n", id)
	return nil
}

// RunList prints the requested collection, one line per record. The
// optional trailing query narrows clients, appointments and invoices by
// substring the same way the list screens filter.
func RunList(ctx context.Context, io IO, args []string, store storage.Store) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection. Usage: clinic list <clients|appointments|services|invoices|providers> [query]")
	}

	query := strings.Join(args[1:], " ")

	switch args[0] {
	case "clients":
		clients, err := store.ListClients(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}
		for _, c := range search.FilterClients(clients, query) {
			io.Printf("%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email)
		}
	case "appointments":
		appointments, err := store.ListAppointments(ctx)
		if err != nil {
			return fmt.Errorf("failed to list appointments: %w", err)
		}
		for _, a := range search.FilterAppointments(appointments, query) {
			io.Printf("%d\t%s\t%s %s\t%s\t%s\n", a.ID, a.ClientName, a.Date, a.Time, a.Service, a.Status)
		}
	case "services":
		if query != "" {
			return fmt.Errorf("the services listing does not take a query")
		}
		services, err := store.ListServices(ctx)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}
		for _, s := range services {
			price := fmt.Sprintf("%.0f", s.Price)
			if s.DynamicPrice {
				price = "per pulse"
			}
			io.Printf("%d\t%s\t%s\n", s.ID, s.Name, price)
		}
	case "invoices":
		invoices, err := store.ListInvoices(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		for _, i := range search.FilterInvoices(invoices, query) {
			io.Printf("%d\t%s\t%s\ttotal %.0f paid %.0f remaining %.0f\n",
				i.ID, i.ClientName, i.Date, i.TotalAmount, i.PaidAmount, i.RemainingAmount)
		}
	case "providers":
		if query != "" {
			return fmt.Errorf("the providers listing does not take a query")
		}
		providers, err := store.ListProviders(ctx)
		if err != nil {
			return fmt.Errorf("failed to list providers: %w", err)
		}
		for _, p := range providers {
			active := "active"
			if !p.Active {
				active = "inactive"
			}
			io.Printf("%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Role, active)
		}
	default:
		return fmt.Errorf("unknown collection: %s", args[0])
	}

	return nil
}

// RunSettings handles the settings subcommands
func RunSettings(ctx context.Context, io IO, args []string, store storage.Store) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: clinic settings <list|get|set>")
	}

	switch args[0] {
	case "list":
		settings, err := store.AllSettings(ctx)
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		for key, value := range settings {
			io.Printf("%s=%s\n", key, value)
		}
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: clinic settings get <key>")
		}
		value, err := store.GetSetting(ctx, args[1])
		if err != nil {
			return fmt.Errorf("failed to read setting: %w", err)
		}
		io.Println(value)
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: clinic settings set <key> <value>")
		}
		if err := store.UpdateSetting(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
			return fmt.Errorf("failed to update setting: %w", err)
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}

	return nil
}

// RunBackup writes a dated backup file into the given directory
// (default: current directory) and prints its path.
func RunBackup(ctx context.Context, io IO, args []string, store storage.Store) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path, err := backup.ExportFile(ctx, store, dir)
	if err != nil {
		return err
	}

	io.Printf("Backup written to %s\n", path)
	return nil
}

// RunRestore replaces the store contents with a backup file
func RunRestore(ctx context.Context, io IO, args []string, store storage.Store) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file. Usage: clinic restore <file>")
	}

	if err := backup.ImportFile(ctx, store, args[0]); err != nil {
		return err
	}

	io.Println("Store restored")
	return nil
}

// RunLogin prompts for credentials and prints a session token
func RunLogin(ctx context.Context, io IO, authService *auth.Service) error {
	username, err := io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	token, user, err := authService.Login(username, password)
	if err != nil {
		return err
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	io.Printf("Logged in as %s (%s)\n", user.Username, role)
	io.Println(token)

	return nil
}

// RunStats prints the dashboard counters
func RunStats(ctx context.Context, io IO, service *clinic.Service) error {
	stats, err := service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	io.Printf("Clients:            %d\n", stats.Clients)
	io.Printf("Appointments:       %d (today: %d)\n", stats.Appointments, stats.AppointmentsToday)
	io.Printf("Services:           %d\n", stats.Services)
	io.Printf("Invoices:           %d\n", stats.Invoices)
	io.Printf("Providers:          %d\n", stats.Providers)

	return nil
}
