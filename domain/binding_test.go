package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictKeyModifierOrderInsensitive(t *testing.T) {
	a := Binding{Modifiers: []string{"SHIFT", "$mainMod"}, Key: "Q"}
	b := Binding{Modifiers: []string{"$mainMod", "SHIFT"}, Key: "Q"}

	assert.Equal(t, a.ConflictKey(), b.ConflictKey())
	assert.True(t, a.ConflictsWith(b))
	assert.True(t, b.ConflictsWith(a), "conflict detection should be symmetric")
}

func TestConflictKeySubmapScopesAreDistinct(t *testing.T) {
	root := Binding{Key: "h"}
	scoped := Binding{Key: "h", Submap: "resize"}

	assert.NotEqual(t, root.ConflictKey(), scoped.ConflictKey())
	assert.False(t, root.ConflictsWith(scoped))
}

func TestConflictKeyDifferentKeys(t *testing.T) {
	a := Binding{Modifiers: []string{"$mainMod"}, Key: "Q"}
	b := Binding{Modifiers: []string{"$mainMod"}, Key: "W"}

	assert.False(t, a.ConflictsWith(b))
}

func TestConflictKeyIsLexical(t *testing.T) {
	// A literal key name and its numeric-code form are never equivalent
	literal := Binding{Key: "XF86AudioMute"}
	code := Binding{Key: "code:121"}

	assert.False(t, literal.ConflictsWith(code))
}

func TestConflictKeyDoesNotMutateModifiers(t *testing.T) {
	b := Binding{Modifiers: []string{"SHIFT", "$mainMod"}, Key: "Q"}
	b.ConflictKey()

	assert.Equal(t, []string{"SHIFT", "$mainMod"}, b.Modifiers,
		"deriving the key should not reorder the written modifiers")
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		binding  Binding
		expected string
	}{
		{
			name:     "main mod alias",
			binding:  Binding{Modifiers: []string{"$mainMod"}, Key: "Q"},
			expected: "Super + Q",
		},
		{
			name:     "multiple modifiers",
			binding:  Binding{Modifiers: []string{"$mainMod", "SHIFT"}, Key: "Q"},
			expected: "Super + Shift + Q",
		},
		{
			name:     "no modifiers",
			binding:  Binding{Key: "XF86AudioRaiseVolume"},
			expected: "XF86AudioRaiseVolume",
		},
		{
			name:     "unknown modifier passes through",
			binding:  Binding{Modifiers: []string{"MOD3"}, Key: "t"},
			expected: "MOD3 + t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.binding.DisplayName())
		})
	}
}

func TestBindTypeIsValid(t *testing.T) {
	for _, bt := range []BindType{BindDocumented, BindStandard, BindRelease, BindMouse} {
		assert.True(t, bt.IsValid(), string(bt))
	}
	assert.False(t, BindType("bindfoo").IsValid())
	assert.False(t, BindType("").IsValid())
}
