package cmd

import (
	"github.com/abhisek/undergrad/internal/app"
	"github.com/abhisek/undergrad/internal/catalog"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	d.log.Info("starting", "version", displayVersion(version))
	return app.Run(app.Options{
		Catalog:  catalog.Default(),
		Progress: d.progress,
		Log:      d.log,
	})
}
