package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"hyprbind/domain"
	"hyprbind/writer"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	submapStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	keyComboStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// ListCmd lists keybindings grouped by category
type ListCmd struct {
	Category string `help:"Only show bindings in this category"`
	Submap   string `help:"Only show bindings in this submap"`
	Raw      bool   `help:"Print bindings in config file syntax"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}
	cfg := m.Config()

	if l.Submap != "" {
		bindings, ok := cfg.Submaps[l.Submap]
		if !ok {
			return fmt.Errorf("submap %q not found", l.Submap)
		}
		fmt.Println(submapStyle.Render("submap: " + l.Submap))
		for _, b := range bindings {
			l.printBinding(b)
		}
		return nil
	}

	for _, name := range cfg.CategoryNames() {
		if l.Category != "" && name != l.Category {
			continue
		}
		cat := cfg.Categories[name]
		if len(cat.Bindings) == 0 {
			continue
		}

		fmt.Println(categoryStyle.Render(name))
		for _, b := range cat.Bindings {
			l.printBinding(b)
		}
		fmt.Println()
	}

	if l.Category == "" {
		fmt.Printf("%d bindings in %d categories\n", cfg.BindingCount(), len(cfg.Categories))
	}
	return nil
}

func (l *ListCmd) printBinding(b domain.Binding) {
	if l.Raw {
		fmt.Println("  " + writer.FormatBinding(b))
		return
	}

	line := "  " + keyComboStyle.Render(b.DisplayName())
	if b.Submap != "" {
		line += submapStyle.Render(" ["+b.Submap+"]")
	}
	line += "  " + b.Action
	if b.Params != "" {
		line += " " + b.Params
	}
	if b.Description != "" {
		line += descStyle.Render("  - " + b.Description)
	}
	fmt.Println(line)
}
