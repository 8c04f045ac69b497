package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/auth"
	"github.com/OLMA25/guzels-clinic-management-system/internal/cli"
	"github.com/OLMA25/guzels-clinic-management-system/internal/clinic"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage/boltdb"
	"github.com/OLMA25/guzels-clinic-management-system/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "guzel-clinic.db", "Path to the local database file")
	driver := flag.String("driver", "bolt", "Storage driver: bolt or sqlite")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := cli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	store, err := openStore(ctx, *driver, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if err := runCommand(ctx, stdio, command, args[1:], store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, driver, dbPath string) (storage.Store, error) {
	switch driver {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlite.New(ctx, dbPath)
	default:
		return nil, fmt.Errorf("unknown driver: %s (use bolt or sqlite)", driver)
	}
}

func runCommand(ctx context.Context, stdio cli.IO, command string, args []string, store storage.Store) error {
	switch command {
	case "init":
		return cli.RunInit(ctx, stdio, store)
	case "add":
		return cli.RunAdd(ctx, stdio, args, clinic.NewService(store))
	case "list":
		return cli.RunList(ctx, stdio, args, store)
	case "settings":
		return cli.RunSettings(ctx, stdio, args, store)
	case "backup":
		return cli.RunBackup(ctx, stdio, args, store)
	case "restore":
		return cli.RunRestore(ctx, stdio, args, store)
	case "login":
		authService, err := defaultAuth()
		if err != nil {
			return err
		}
		return cli.RunLogin(ctx, stdio, authService)
	case "stats":
		return cli.RunStats(ctx, stdio, clinic.NewService(store))
	default:
		cli.PrintUsage(stdio)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// defaultAuth registers the two built-in dashboard accounts. The signing
// secret is random per process; sessions do not outlive the command.
func defaultAuth() (*auth.Service, error) {
	secret, err := auth.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}

	service := auth.NewService(secret, 12*time.Hour)
	if err := service.AddUser("admin", "admin", true); err != nil {
		return nil, err
	}
	if err := service.AddUser("user1", "user1", false); err != nil {
		return nil, err
	}

	return service, nil
}

func printVersion() {
	fmt.Printf("Güzel Clinic Management\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
