// Package writer regenerates keybinding configuration text from the model
// and persists it with atomic, crash-safe file replacement.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hyprbind/domain"
	"hyprbind/logging"
)

// GenerateContent produces the full config file text. Root-scope bindings
// come first, grouped by category in sorted order under section markers.
// Submap bindings follow, each group wrapped between its enter marker and a
// reset marker; without the wrapping the bindings would silently apply
// outside their mode.
func GenerateContent(config *domain.Config) string {
	var lines []string

	for _, name := range config.CategoryNames() {
		var rootBindings []domain.Binding
		for _, b := range config.Categories[name].Bindings {
			if b.Submap == "" {
				rootBindings = append(rootBindings, b)
			}
		}
		if len(rootBindings) == 0 {
			continue
		}

		lines = append(lines, "", fmt.Sprintf("# ======= %s =======", name))
		for _, b := range rootBindings {
			lines = append(lines, FormatBinding(b))
		}
	}

	if len(config.Submaps) > 0 {
		lines = append(lines, "", "# ======= Submaps =======")

		for _, name := range config.SubmapNames() {
			lines = append(lines, "", fmt.Sprintf("submap = %s", name))
			for _, b := range config.Submaps[name] {
				lines = append(lines, FormatBinding(b))
			}
			lines = append(lines, "submap = reset")
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatBinding renders one binding as a config line. Modifiers share the
// first comma-delimited field, separated by spaces, which is exactly the form
// the parser accepts back.
func FormatBinding(b domain.Binding) string {
	mods := strings.Join(b.Modifiers, " ")

	if b.Type == domain.BindDocumented {
		return fmt.Sprintf("%s = %s, %s, %s, %s, %s",
			b.Type, mods, b.Key, b.Description, b.Action, b.Params)
	}
	return fmt.Sprintf("%s = %s, %s, %s, %s",
		b.Type, mods, b.Key, b.Action, b.Params)
}

// WriteFile persists config to path atomically. An existing destination is
// first copied to a sibling .backup path, then the new content is written to
// a temp file in the same directory, fsynced, and renamed over the
// destination. On any failure before the rename the temp file is removed and
// the destination is left untouched.
func WriteFile(config *domain.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		logging.Logger.Debug("Created sibling backup", "path", backupPath)
	}

	tempPath := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".hyprbind_tmp_%s.conf", uuid.New().String()))

	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := writeAndSync(f, GenerateContent(config)); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Rename is atomic on POSIX; readers see either the old file or the new
	// one, never a partial write
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	logging.Logger.Info("Wrote config file", "path", path, "bindings", config.BindingCount())
	return nil
}

// writeAndSync writes content, forces it to durable storage, and closes f
func writeAndSync(f *os.File, content string) error {
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
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
