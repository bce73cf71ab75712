package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"hyprbind/domain"
)

// AddCmd adds a new keybinding
type AddCmd struct {
	Type        string `help:"Bind type (bindd, bind, bindel, bindm)" default:"bindd" enum:"bindd,bind,bindel,bindm"`
	Mods        string `help:"Space-separated modifiers (e.g. '$mainMod SHIFT')"`
	Key         string `help:"Key token (literal name, code:N, or mouse:N)"`
	Description string `help:"Description (bindd only)"`
	Action      string `help:"Dispatcher action (e.g. exec, killactive)"`
	Params      string `help:"Action parameters"`
	Category    string `help:"Category to file the binding under" default:"Uncategorized"`
	Submap      string `help:"Submap scope (empty for global)"`
	Interactive bool   `help:"Fill in the binding via an interactive form" short:"i"`
	Replace     bool   `help:"Replace an existing binding occupying the same slot"`
	DryRun      bool   `help:"Check for conflicts without modifying the file"`
}

// Run executes the add command
func (a *AddCmd) Run(cli *CLI) error {
	if a.Interactive {
		if err := a.runForm(); err != nil {
			return err
		}
	}
	if a.Key == "" || a.Action == "" {
		return fmt.Errorf("key and action are required (or use --interactive)")
	}

	m, err := cli.newManager()
	if err != nil {
		return err
	}

	binding := domain.Binding{
		Type:        domain.BindType(a.Type),
		Modifiers:   strings.Fields(a.Mods),
		Key:         a.Key,
		Description: a.Description,
		Action:      a.Action,
		Params:      a.Params,
		Category:    a.Category,
		Submap:      a.Submap,
		LineNumber:  m.Config().NextLineNumber(),
	}

	if a.DryRun {
		if existing, ok := m.Config().FindConflict(binding); ok {
			fmt.Println(errorStyle.Render("Conflict: ") + existing.DisplayName() +
				" already bound to " + existing.Action)
			return fmt.Errorf("conflict detected")
		}
		fmt.Println("No conflicts")
		return nil
	}

	result := m.AddBinding(binding)
	if !result.Success && len(result.Conflicts) > 0 && a.Replace {
		// Overwriting is an explicit caller decision: remove then re-add
		for _, conflict := range result.Conflicts {
			if res := m.RemoveBinding(conflict); !res.Success {
				return fmt.Errorf("failed to replace %q: %s", conflict.DisplayName(), res.Message)
			}
		}
		result = m.AddBinding(binding)
	}
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

	fmt.Printf("Added %s\n", binding.DisplayName())
	return nil
}

// runForm collects binding fields interactively
func (a *AddCmd) runForm() error {
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("required")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Bind type").
				Options(huh.NewOptions("bindd", "bind", "bindel", "bindm")...).
				Value(&a.Type),
			huh.NewInput().
				Title("Modifiers").
				Description("Space-separated, e.g. '$mainMod SHIFT'").
				Value(&a.Mods),
			huh.NewInput().
				Title("Key").
				Validate(required).
				Value(&a.Key),
			huh.NewInput().
				Title("Description").
				Value(&a.Description),
			huh.NewInput().
				Title("Action").
				Validate(required).
				Value(&a.Action),
			huh.NewInput().
				Title("Params").
				Value(&a.Params),
			huh.NewInput().
				Title("Category").
				Value(&a.Category),
			huh.NewInput().
				Title("Submap").
				Value(&a.Submap),
		),
	)
	return form.Run()
}
