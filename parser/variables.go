package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hyprbind/logging"
)

// standardVariableFiles are the auxiliary definition files loaded from the
// config directory, in override order (later files win)
var standardVariableFiles = []string{"variables.conf", "defaults.conf"}

// LoadVariables reads $name = value definitions from a file into vars,
// overriding existing entries. A missing file contributes nothing and is not
// an error.
func LoadVariables(path string, vars map[string]string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open variables file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "$") {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		vars[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read variables file: %w", err)
	}
	return nil
}

// LoadAllVariables loads definitions from the standard files in configDir.
// Later files override earlier ones.
func LoadAllVariables(configDir string) map[string]string {
	vars := make(map[string]string)
	for _, name := range standardVariableFiles {
		path := filepath.Join(configDir, name)
		if err := LoadVariables(path, vars); err != nil {
			logging.Logger.Warn("Failed to load variables file", "path", path, "error", err)
		}
	}
	return vars
}

// ResolveVariables substitutes every known variable name in text with its
// value. Substitution is direct and non-recursive: a value is never re-scanned
// for further references. Replacement order follows map iteration, so the
// result is order-sensitive when one variable name is a textual prefix of
// another; this matches the established behavior and must not be changed
// without coordinating with existing configs.
func ResolveVariables(text string, vars map[string]string) string {
	for name, value := range vars {
		text = strings.ReplaceAll(text, name, value)
	}
	return text
}
