package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"hyprbind/backup"
	"hyprbind/config"
	"hyprbind/logging"
	"hyprbind/manager"
	"hyprbind/storage"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Config      string           `help:"Path to keybinds.conf (defaults to ~/.config/hypr/config/keybinds.conf)" type:"path" env:"HYPRBIND_CONFIG"`
	BackupDir   string           `help:"Directory for timestamped backups" type:"path" env:"HYPRBIND_BACKUP_DIR"`
	KeepBackups int              `help:"Number of timestamped backups to keep per file" default:"5"`
	DBPath      string           `help:"Path to the save-history database" type:"path" default:"~/.hyprbind/history.db" env:"HYPRBIND_DB_PATH"`

	List    ListCmd    `cmd:"list" help:"List keybindings grouped by category (default)" default:"1"`
	Add     AddCmd     `cmd:"add" help:"Add a new keybinding"`
	Del     DelCmd     `cmd:"del" help:"Remove a keybinding"`
	Update  UpdateCmd  `cmd:"update" help:"Change the action of an existing keybinding"`
	Check   CheckCmd   `cmd:"check" help:"Check another config file for conflicts against the current one"`
	Vars    VarsCmd    `cmd:"vars" help:"Show variables defined next to the config"`
	Fmt     FmtCmd     `cmd:"fmt" help:"Regenerate the config file in canonical form"`
	Watch   WatchCmd   `cmd:"watch" help:"Watch the config file and report external changes"`
	History HistoryCmd `cmd:"history" help:"Show save history"`
	Backups BackupsCmd `cmd:"backups" help:"Manage timestamped backups"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.Config == "" {
			if _, hasEnv := os.LookupEnv("HYPRBIND_CONFIG"); !hasEnv && c.settings.ConfigPath != "" {
				c.Config = c.settings.ConfigPath
			}
		}
		if c.BackupDir == "" {
			if _, hasEnv := os.LookupEnv("HYPRBIND_BACKUP_DIR"); !hasEnv && c.settings.BackupDir != "" {
				c.BackupDir = c.settings.BackupDir
			}
		}
		if c.KeepBackups == 5 && c.settings.BackupKeepCount != nil {
			c.KeepBackups = *c.settings.BackupKeepCount
		}
		if c.DBPath == config.ExpandPath("~/.hyprbind/history.db") {
			if _, hasEnv := os.LookupEnv("HYPRBIND_DB_PATH"); !hasEnv && c.settings.DBPath != "" {
				c.DBPath = c.settings.DBPath
			}
		}
		if c.MaxLogFiles == 100 && c.settings.MaxLogFiles != nil {
			if _, hasEnv := os.LookupEnv("HYPRBIND_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("HYPRBIND_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export debug settings so child processes log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("HYPRBIND_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("HYPRBIND_DEBUG_FILE", logFilePath)
		}
	}

	return nil
}

// newManager creates a manager for the configured path and loads the config
func (c *CLI) newManager() (*manager.Manager, error) {
	m := manager.New(c.Config)
	if _, err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// newBackupManager creates a backup manager from the CLI settings
func (c *CLI) newBackupManager() *backup.Manager {
	return backup.New(c.BackupDir, c.KeepBackups)
}

// saveAndRecord backs up the current file, saves through the manager, and
// then records history and prunes old backups concurrently. The side tasks
// are non-fatal: a failed audit row or prune never fails the save.
func (c *CLI) saveAndRecord(ctx context.Context, m *manager.Manager) error {
	bkp := c.newBackupManager()
	configPath := m.ConfigPath()

	var backupPath string
	if _, err := os.Stat(configPath); err == nil {
		backupPath, err = bkp.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to back up config before save: %w", err)
		}
	}

	if err := m.Save(""); err != nil {
		return err
	}

	bindingCount := m.Config().BindingCount()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		store, err := storage.NewStore(c.DBPath)
		if err != nil {
			logging.Logger.Warn("Failed to open history database", "error", err)
			return nil
		}
		defer store.Close()

		err = store.RecordSave(ctx, storage.SaveRecord{
			ConfigPath:   configPath,
			BackupPath:   backupPath,
			BindingCount: bindingCount,
			SavedAt:      time.Now().UTC(),
		})
		if err != nil {
			logging.Logger.Warn("Failed to record save history", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		if _, err := bkp.Prune(configPath); err != nil {
			logging.Logger.Warn("Failed to prune old backups", "error", err)
		}
		return nil
	})

	return g.Wait()
}
