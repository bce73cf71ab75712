package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"hyprbind/manager"
	"hyprbind/parser"
)

// VarsCmd shows the variables defined in the standard files next to the
// config, optionally resolving a text snippet against them
type VarsCmd struct {
	Resolve string `help:"Resolve variable references in the given text and print the result"`
}

// Run executes the vars command
func (v *VarsCmd) Run(cli *CLI) error {
	configPath := cli.Config
	if configPath == "" {
		configPath = manager.DefaultConfigPath()
	}
	vars := parser.LoadAllVariables(filepath.Dir(configPath))

	if v.Resolve != "" {
		fmt.Println(parser.ResolveVariables(v.Resolve, vars))
		return nil
	}

	if len(vars) == 0 {
		fmt.Println("No variables defined")
		return nil
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s = %s\n", keyComboStyle.Render(name), vars[name])
	}
	return nil
}
