// Package parser turns Hyprland keybinding configuration text into the
// domain model. Parsing is lenient: content that does not match the binding
// grammar is dropped, never reported as an error.
package parser

import (
	"strings"

	"hyprbind/domain"
)

// ParseLine parses a single line into a Binding. The second return value is
// false for blank lines, comments, and anything that does not match the
// binding grammar.
//
// Grammar: bindtype = mod1 mod2, key, [description,] action, params...
// The modifier field is whitespace-separated; everything after the action
// field is re-joined so command arguments containing commas survive.
func ParseLine(line string, lineNumber int, category string) (domain.Binding, bool) {
	line = strings.TrimSpace(line)

	if line == "" || strings.HasPrefix(line, "#") {
		return domain.Binding{}, false
	}

	typeStr, rest, found := strings.Cut(line, "=")
	if !found {
		return domain.Binding{}, false
	}

	bindType := domain.BindType(strings.TrimSpace(typeStr))
	if !bindType.IsValid() {
		return domain.Binding{}, false
	}

	parts := strings.Split(rest, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return domain.Binding{}, false
	}

	binding := domain.Binding{
		Type:       bindType,
		Modifiers:  strings.Fields(parts[0]),
		Key:        parts[1],
		LineNumber: lineNumber,
		Category:   category,
	}

	if bindType == domain.BindDocumented {
		// bindd = MODS, KEY, Description, action, params
		if len(parts) < 4 {
			return domain.Binding{}, false
		}
		binding.Description = parts[2]
		binding.Action = parts[3]
		binding.Params = strings.Join(parts[4:], ",")
	} else {
		// bind/bindel/bindm = MODS, KEY, action, params
		binding.Action = parts[2]
		binding.Params = strings.Join(parts[3:], ",")
	}

	return binding, true
}
