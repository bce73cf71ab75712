package cmd

import (
	"context"
	"fmt"
	"strings"

	"hyprbind/domain"
)

// UpdateCmd rebinds an existing slot to a new key combination or action. The
// mutation is all-or-nothing: if the new slot is taken, the old binding stays.
type UpdateCmd struct {
	Key    string `arg:"" help:"Key token of the binding to update"`
	Mods   string `help:"Space-separated modifiers of the binding"`
	Submap string `help:"Submap scope of the binding (empty for global)"`

	NewKey         string `help:"New key token"`
	NewMods        string `help:"New space-separated modifiers"`
	NewAction      string `help:"New dispatcher action"`
	NewParams      string `help:"New action parameters"`
	NewDescription string `help:"New description (bindd only)"`
}

// Run executes the update command
func (u *UpdateCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}

	probe := domain.Binding{
		Modifiers: strings.Fields(u.Mods),
		Key:       u.Key,
		Submap:    u.Submap,
	}

	oldBinding, ok := m.Config().FindConflict(probe)
	if !ok {
		return fmt.Errorf("no binding found for %s", probe.DisplayName())
	}

	newBinding := oldBinding
	if u.NewKey != "" {
		newBinding.Key = u.NewKey
	}
	if u.NewMods != "" {
		newBinding.Modifiers = strings.Fields(u.NewMods)
	}
	if u.NewAction != "" {
		newBinding.Action = u.NewAction
	}
	if u.NewParams != "" {
		newBinding.Params = u.NewParams
	}
	if u.NewDescription != "" {
		newBinding.Description = u.NewDescription
	}

	result := m.UpdateBinding(oldBinding, newBinding)
	if !result.Success {
		for _, conflict := range result.Conflicts {
			fmt.Println(errorStyle.Render("Conflict: ") + conflict.DisplayName() +
				" already bound to " + conflict.Action)
		}
		return fmt.Errorf("%s", result.Message)
	}

	if err := cli.saveAndRecord(context.Background(), m); err != nil {
		return err
	}

	fmt.Printf("Updated %s -> %s\n", oldBinding.DisplayName(), newBinding.DisplayName())
	return nil
}
