package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"hyprbind/manager"
)

// BackupsCmd manages timestamped backups of the config file
type BackupsCmd struct {
	List    BackupsListCmd    `cmd:"list" help:"List backups (default)" default:"1"`
	Create  BackupsCreateCmd  `cmd:"create" help:"Create a backup now"`
	Restore BackupsRestoreCmd `cmd:"restore" help:"Restore a backup over the config file"`
	Prune   BackupsPruneCmd   `cmd:"prune" help:"Delete backups beyond the keep count"`
}

// configPathFor resolves the config path the backup commands operate on
func configPathFor(cli *CLI) string {
	if cli.Config != "" {
		return cli.Config
	}
	return manager.DefaultConfigPath()
}

// BackupsListCmd lists backups for the config file
type BackupsListCmd struct{}

// Run executes the backups list command
func (b *BackupsListCmd) Run(cli *CLI) error {
	backups, err := cli.newBackupManager().List(configPathFor(cli))
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tSIZE\tPATH")
	for _, info := range backups {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			info.Timestamp.Format("2006-01-02 15:04:05"), info.Size, info.Path)
	}
	return w.Flush()
}

// BackupsCreateCmd creates a backup immediately
type BackupsCreateCmd struct{}

// Run executes the backups create command
func (b *BackupsCreateCmd) Run(cli *CLI) error {
	path, err := cli.newBackupManager().Create(configPathFor(cli))
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}

// BackupsRestoreCmd restores a backup over the config file
type BackupsRestoreCmd struct {
	Backup string `arg:"" help:"Path to the backup file to restore" type:"existingfile"`
}

// Run executes the backups restore command
func (b *BackupsRestoreCmd) Run(cli *CLI) error {
	configPath := configPathFor(cli)
	if err := cli.newBackupManager().Restore(b.Backup, configPath); err != nil {
		return err
	}
	fmt.Printf("Restored %s from %s\n", configPath, b.Backup)
	return nil
}

// BackupsPruneCmd deletes old backups beyond the keep count
type BackupsPruneCmd struct{}

// Run executes the backups prune command
func (b *BackupsPruneCmd) Run(cli *CLI) error {
	removed, err := cli.newBackupManager().Prune(configPathFor(cli))
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d backup(s)\n", removed)
	return nil
}
