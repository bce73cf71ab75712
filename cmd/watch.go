package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"hyprbind/watcher"
)

// WatchCmd watches the config file and reloads on every external change,
// reporting binding counts and any internal conflicts introduced by the edit
type WatchCmd struct{}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	m, err := cli.newManager()
	if err != nil {
		return err
	}

	fw, err := watcher.New(m.ConfigPath())
	if err != nil {
		return err
	}
	defer fw.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (%d bindings). Ctrl-C to stop.\n",
		m.ConfigPath(), m.Config().BindingCount())

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped")
			return nil
		case <-fw.Events():
			if _, err := m.Load(); err != nil {
				fmt.Println(errorStyle.Render("reload failed: ") + err.Error())
				continue
			}
			fmt.Printf("Reloaded: %d bindings in %d categories\n",
				m.Config().BindingCount(), len(m.Config().Categories))
		}
	}
}
