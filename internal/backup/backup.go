// Package backup serializes the whole store to a single JSON document and
// loads such a document back. A backup is a complete snapshot: all six
// collections are present even when empty, identifiers included, plus the
// capture timestamp. A restore is a destructive replace, not a merge.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/OLMA25/guzels-clinic-management-system/internal/storage"
)

// Backup/restore errors
var (
	// ErrBackup indicates that the snapshot read or serialization failed;
	// no partial file is produced.
	ErrBackup = errors.New("backup failed")

	// ErrRestore indicates a parse failure or a write failure during the
	// replace. On a parse failure the store is untouched.
	ErrRestore = errors.New("restore failed")
)

// FileName returns the advisory backup file name for the given capture
// time, e.g. guzel_clinic_backup_2025-01-31.json.
func FileName(t time.Time) string {
	return fmt.Sprintf("guzel_clinic_backup_%s.json", t.Format("2006-01-02"))
}

// Export captures a snapshot of the store and writes it to w as one JSON
// document. The snapshot is fully serialized in memory first, so a read
// or serialization failure emits nothing.
func Export(ctx context.Context, store storage.SnapshotStore, w io.Writer) error {
	snap, err := store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackup, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackup, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrBackup, err)
	}

	return nil
}

// ExportFile writes a snapshot into dir under the dated file name and
// returns the full path. The document is staged in memory and written in
// one call, so a failed backup leaves no partial file behind.
func ExportFile(ctx context.Context, store storage.SnapshotStore, dir string) (string, error) {
	snap, err := store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackup, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackup, err)
	}

	path := filepath.Join(dir, FileName(snap.Timestamp))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackup, err)
	}

	return path, nil
}

// Import parses a backup document from r and replaces the store contents
// with it. A document missing some collection keys restores nothing for
// those collections. Malformed input fails before any mutation; the
// replace itself is one store transaction.
func Import(ctx context.Context, store storage.SnapshotStore, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}

	snap := &storage.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return fmt.Errorf("%w: invalid backup file: %w", ErrRestore, err)
	}

	if err := store.Restore(ctx, snap); err != nil {
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}

	return nil
}

// ImportFile restores the store from the backup file at path
func ImportFile(ctx context.Context, store storage.SnapshotStore, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}
	defer f.Close()

	return Import(ctx, store, f)
}
