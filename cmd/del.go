package cmd

import (
	"context"
	"fmt"
	"strings"

	"hyprbind/domain"
)

// DelCmd removes a keybinding identified by its slot
type DelCmd struct {
	Key    string `arg:"" help:"Key token of the binding to remove"`
	Mods   string `help:"Space-separated modifiers of the binding"`
	Submap string `help:"Submap scope of the binding (empty for global)"`
}

// Run executes the del command
func (d *DelCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}

	// Only the conflict key matters for removal
	probe := domain.Binding{
		Modifiers: strings.Fields(d.Mods),
		Key:       d.Key,
		Submap:    d.Submap,
	}

	existing, ok := m.Config().FindConflict(probe)
	if !ok {
		return fmt.Errorf("no binding found for %s", probe.DisplayName())
	}

	if result := m.RemoveBinding(existing); !result.Success {
		return fmt.Errorf("%s", result.Message)
	}

	if err := cli.saveAndRecord(context.Background(), m); err != nil {
		return err
	}

	fmt.Printf("Removed %s (%s)\n", existing.DisplayName(), existing.Action)
	return nil
}
