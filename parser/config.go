package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"hyprbind/domain"
	"hyprbind/logging"
)

// categoryMarker matches section headers like "# ======= Window Management ======="
var categoryMarker = regexp.MustCompile(`=+\s+(.+?)\s+=+`)

// ParseFile parses a keybinds config file into a Config. A missing file
// yields an empty Config rather than an error; variables are loaded from the
// standard files in the same directory.
func ParseFile(path string) (*domain.Config, error) {
	config := domain.NewConfig()
	config.FilePath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Debug("Config file does not exist, starting empty", "path", path)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.Variables = LoadAllVariables(filepath.Dir(path))
	parseContent(config, string(data))
	return config, nil
}

// ParseString parses keybindings from an in-memory string
func ParseString(content string) *domain.Config {
	config := domain.NewConfig()
	parseContent(config, content)
	return config
}

// parseContent drives the line parser across the whole source, tracking the
// active category (from section-marker comments) and the active submap (from
// submap enter/reset lines).
func parseContent(config *domain.Config, content string) {
	config.OriginalContent = content

	currentCategory := domain.DefaultCategory
	currentSubmap := ""

	for lineNum, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "#") && strings.Contains(stripped, "=======") {
			if m := categoryMarker.FindStringSubmatch(stripped); m != nil {
				currentCategory = strings.TrimSpace(m[1])
			}
		}

		if name, ok := parseSubmapLine(stripped); ok {
			if name == "reset" {
				currentSubmap = ""
			} else {
				currentSubmap = name
			}
			continue
		}

		binding, ok := ParseLine(line, lineNum+1, currentCategory)
		if !ok {
			continue
		}
		binding.Submap = currentSubmap
		config.AddBinding(binding)
	}
}

// parseSubmapLine recognizes "submap = <name>" scope markers
func parseSubmapLine(line string) (string, bool) {
	keyword, rest, found := strings.Cut(line, "=")
	if !found || strings.TrimSpace(keyword) != "submap" {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
