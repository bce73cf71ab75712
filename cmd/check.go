package cmd

import (
	"fmt"
	"os"

	"hyprbind/parser"
)

// CheckCmd checks an externally-authored config file for conflicts against
// the current configuration. Each imported binding costs one index probe, so
// large community configs check in linear time.
type CheckCmd struct {
	File string `arg:"" help:"Config file to check" type:"existingfile"`
}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	incoming := parser.ParseString(string(data))

	conflictCount := 0
	for _, b := range incoming.AllBindings() {
		existing, ok := m.Config().FindConflict(b)
		if !ok {
			continue
		}
		conflictCount++
		fmt.Printf("%s %s: line %d collides with existing binding for %s\n",
			errorStyle.Render("conflict"), b.DisplayName(), b.LineNumber, existing.Action)
	}

	if conflictCount > 0 {
		return fmt.Errorf("%d conflicting binding(s)", conflictCount)
	}

	fmt.Printf("No conflicts: %d bindings checked\n", incoming.BindingCount())
	return nil
}
