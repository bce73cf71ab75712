// Package backup manages timestamped backups of configuration files,
// separate from the sibling .backup copy the writer drops on every save.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"hyprbind/logging"
)

// timestampLayout is embedded in backup file names, e.g.
// keybinds.conf.2025-11-13T14-30-00.backup
const timestampLayout = "2006-01-02T15-04-05"

// DefaultKeepCount is the number of backups retained per config file
const DefaultKeepCount = 5

// Info describes one backup file
type Info struct {
	Path         string
	Timestamp    time.Time
	Size         int64
	OriginalName string
}

// Manager creates, lists, restores, and prunes timestamped backups
type Manager struct {
	backupDir string
	keepCount int
}

// DefaultBackupDir returns ~/.config/hypr/config/.backups
func DefaultBackupDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "hypr", "config", ".backups")
	}
	return filepath.Join(homeDir, ".config", "hypr", "config", ".backups")
}

// New creates a backup Manager. Empty backupDir selects the default
// directory; keepCount <= 0 selects DefaultKeepCount.
func New(backupDir string, keepCount int) *Manager {
	if backupDir == "" {
		backupDir = DefaultBackupDir()
	}
	if keepCount <= 0 {
		keepCount = DefaultKeepCount
	}
	return &Manager{backupDir: backupDir, keepCount: keepCount}
}

// Create copies configPath into the backup directory under a timestamped name
// and returns the backup path
func (m *Manager) Create(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err != nil {
		return "", fmt.Errorf("config file not found: %w", err)
	}

	if err := os.MkdirAll(m.backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format(timestampLayout)
	backupName := fmt.Sprintf("%s.%s.backup", filepath.Base(configPath), timestamp)
	backupPath := filepath.Join(m.backupDir, backupName)

	if err := copyFile(configPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy config to backup: %w", err)
	}

	logging.Logger.Info("Created backup", "path", backupPath)
	return backupPath, nil
}

// List returns all backups for configPath, sorted newest first
func (m *Manager) List(configPath string) ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	originalName := filepath.Base(configPath)
	prefix := originalName + "."
	var backups []Info

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".backup") {
			continue
		}

		timestampStr := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".backup")
		timestamp, err := time.Parse(timestampLayout, timestampStr)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:         filepath.Join(m.backupDir, name),
			Timestamp:    timestamp,
			Size:         info.Size(),
			OriginalName: originalName,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore copies a backup over configPath. The current file, if present, is
// backed up first so a restore is itself reversible.
func (m *Manager) Restore(backupPath, configPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if _, err := m.Create(configPath); err != nil {
			return fmt.Errorf("failed to back up current config before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, configPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	logging.Logger.Info("Restored backup", "from", backupPath, "to", configPath)
	return nil
}

// Prune deletes backups for configPath beyond the keep count, oldest first.
// Returns the number of backups removed.
func (m *Manager) Prune(configPath string) (int, error) {
	backups, err := m.List(configPath)
	if err != nil {
		return 0, err
	}
	if len(backups) <= m.keepCount {
		return 0, nil
	}

	removed := 0
	for _, b := range backups[m.keepCount:] {
		if err := os.Remove(b.Path); err != nil {
			logging.Logger.Warn("Failed to remove old backup", "path", b.Path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// copyFile copies src to dst preserving the file mode
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
