package domain

import (
	"sort"
	"strings"
)

// BindType identifies the syntactic variant of a binding declaration
type BindType string

const (
	// BindDocumented carries a description field (bindd)
	BindDocumented BindType = "bindd"
	// BindStandard is a plain binding (bind)
	BindStandard BindType = "bind"
	// BindRelease fires on key release / repeat (bindel)
	BindRelease BindType = "bindel"
	// BindMouse binds a mouse button (bindm)
	BindMouse BindType = "bindm"
)

// IsValid reports whether t is one of the four recognized bind types
func (t BindType) IsValid() bool {
	switch t {
	case BindDocumented, BindStandard, BindRelease, BindMouse:
		return true
	}
	return false
}

// Binding represents a single keyboard-shortcut declaration (domain entity).
// Key is an opaque token compared only lexically; "XF86AudioMute" and
// "code:121" are never recognized as the same physical key.
type Binding struct {
	Type        BindType
	Modifiers   []string
	Key         string
	Description string
	Action      string
	Params      string
	Submap      string
	LineNumber  int
	Category    string
}

// ConflictKey identifies the slot a binding occupies. Two bindings conflict
// iff their conflict keys are equal: same modifier set (order-insensitive),
// same key literal, same submap context (empty submap is the root scope).
type ConflictKey struct {
	Modifiers string
	Key       string
	Submap    string
}

// ConflictKey derives the slot key for b. Modifiers are sorted so that
// "SHIFT $mainMod" and "$mainMod SHIFT" map to the same slot.
func (b Binding) ConflictKey() ConflictKey {
	mods := make([]string, len(b.Modifiers))
	copy(mods, b.Modifiers)
	sort.Strings(mods)
	return ConflictKey{
		Modifiers: strings.Join(mods, " "),
		Key:       b.Key,
		Submap:    b.Submap,
	}
}

// ConflictsWith reports whether b and other occupy the same slot
func (b Binding) ConflictsWith(other Binding) bool {
	return b.ConflictKey() == other.ConflictKey()
}

// readableModifiers maps raw modifier tokens to display names
var readableModifiers = map[string]string{
	"$mainMod": "Super",
	"SUPER":    "Super",
	"SHIFT":    "Shift",
	"CTRL":     "Ctrl",
	"ALT":      "Alt",
}

// DisplayName returns a human-readable representation like "Super + Shift + Q"
func (b Binding) DisplayName() string {
	parts := make([]string, 0, len(b.Modifiers)+1)
	for _, mod := range b.Modifiers {
		if readable, ok := readableModifiers[mod]; ok {
			parts = append(parts, readable)
		} else {
			parts = append(parts, mod)
		}
	}
	parts = append(parts, b.Key)
	return strings.Join(parts, " + ")
}
