package cmd

import (
	"context"
	"fmt"

	"hyprbind/writer"
)

// FmtCmd regenerates the config file in canonical form: categories sorted
// under section markers, submap bindings wrapped in enter/reset markers
type FmtCmd struct {
	Output string `help:"Write to this path instead of the source file" type:"path"`
	Stdout bool   `help:"Print the regenerated content instead of writing"`
}

// Run executes the fmt command
func (f *FmtCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}

	if f.Stdout {
		fmt.Print(writer.GenerateContent(m.Config()))
		return nil
	}

	if f.Output != "" {
		if err := m.Save(f.Output); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", f.Output)
		return nil
	}

	if err := cli.saveAndRecord(context.Background(), m); err != nil {
		return err
	}
	fmt.Printf("Rewrote %s (%d bindings)\n", m.ConfigPath(), m.Config().BindingCount())
	return nil
}
