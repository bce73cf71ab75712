package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprbind/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected domain.Binding
	}{
		{
			name: "documented binding",
			line: "bindd = $mainMod, Q, Close window, killactive,",
			expected: domain.Binding{
				Type:        domain.BindDocumented,
				Modifiers:   []string{"$mainMod"},
				Key:         "Q",
				Description: "Close window",
				Action:      "killactive",
			},
		},
		{
			name: "standard binding",
			line: "bind = $mainMod, Return, exec, kitty",
			expected: domain.Binding{
				Type:      domain.BindStandard,
				Modifiers: []string{"$mainMod"},
				Key:       "Return",
				Action:    "exec",
				Params:    "kitty",
			},
		},
		{
			name: "multiple modifiers share one field",
			line: "bindd = $mainMod SHIFT, Q, Force close, exec, kill -9",
			expected: domain.Binding{
				Type:        domain.BindDocumented,
				Modifiers:   []string{"$mainMod", "SHIFT"},
				Key:         "Q",
				Description: "Force close",
				Action:      "exec",
				Params:      "kill -9",
			},
		},
		{
			name: "params with commas are re-joined",
			line: "bindd = $mainMod, R, Record, exec, wf-recorder -g \"$(slurp)\",--audio",
			expected: domain.Binding{
				Type:        domain.BindDocumented,
				Modifiers:   []string{"$mainMod"},
				Key:         "R",
				Description: "Record",
				Action:      "exec",
				Params:      "wf-recorder -g \"$(slurp)\",--audio",
			},
		},
		{
			name: "release binding with media key",
			line: "bindel = , XF86AudioRaiseVolume, exec, wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+",
			expected: domain.Binding{
				Type:   domain.BindRelease,
				Key:    "XF86AudioRaiseVolume",
				Action: "exec",
				Params: "wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+",
			},
		},
		{
			name: "mouse binding",
			line: "bindm = $mainMod, mouse:272, movewindow",
			expected: domain.Binding{
				Type:      domain.BindMouse,
				Modifiers: []string{"$mainMod"},
				Key:       "mouse:272",
				Action:    "movewindow",
			},
		},
		{
			name: "numeric code key",
			line: "bind = $mainMod, code:10, workspace, 1",
			expected: domain.Binding{
				Type:      domain.BindStandard,
				Modifiers: []string{"$mainMod"},
				Key:       "code:10",
				Action:    "workspace",
				Params:    "1",
			},
		},
		{
			name: "surrounding whitespace",
			line: "   bind = $mainMod , T , exec , kitty   ",
			expected: domain.Binding{
				Type:      domain.BindStandard,
				Modifiers: []string{"$mainMod"},
				Key:       "T",
				Action:    "exec",
				Params:    "kitty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding, ok := ParseLine(tt.line, 7, "Apps")
			require.True(t, ok)

			tt.expected.LineNumber = 7
			tt.expected.Category = "Apps"
			if tt.expected.Modifiers == nil {
				tt.expected.Modifiers = []string{}
			}
			assert.Equal(t, tt.expected, binding)
		})
	}
}

func TestParseLineRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"whitespace only", "   "},
		{"comment", "# bind = $mainMod, Q, killactive,"},
		{"section marker", "# ======= Apps ======="},
		{"no equals sign", "bind $mainMod, Q, killactive"},
		{"unknown bind type", "bindr = $mainMod, Q, killactive,"},
		{"unrelated assignment", "general = true"},
		{"variable definition", "$mainMod = SUPER"},
		{"submap marker", "submap = resize"},
		{"too few fields", "bind = $mainMod, Q"},
		{"bindd missing description", "bindd = $mainMod, Q, killactive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseLine(tt.line, 1, "Apps")
			assert.False(t, ok)
		})
	}
}
