package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"hyprbind/manager"
	"hyprbind/storage"
)

// HistoryCmd shows the save history recorded for the config file
type HistoryCmd struct {
	Limit int `help:"Maximum number of entries to show (0 = all)" default:"10"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	configPath := cli.Config
	if configPath == "" {
		configPath = manager.DefaultConfigPath()
	}

	store, err := storage.NewStore(cli.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	records, err := store.ListSaves(context.Background(), configPath, h.Limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No save history")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SAVED AT\tBINDINGS\tBACKUP")
	for _, r := range records {
		backupPath := r.BackupPath
		if backupPath == "" {
			backupPath = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			r.SavedAt.Local().Format("2006-01-02 15:04:05"), r.BindingCount, backupPath)
	}
	return w.Flush()
}
