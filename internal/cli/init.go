package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/netgraph/internal/config"
	"github.com/rileyhilliard/netgraph/internal/errors"
)

var initForce bool

// initCmd writes a default config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the netgraph config file",
	Long: `Write a config file with the default settings.

The file lives at ~/.config/netgraph/config.yaml (or the path given with
--config) and can then be edited by hand; flags still override it per run.

Examples:
  netgraph init
  netgraph init --force
  netgraph init --config ./netgraph.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.DefaultPath()
		}
		if path == "" {
			return errors.New(errors.ErrConfig,
				"Cannot determine the config path",
				"Set HOME, or pass an explicit path with --config")
		}
		return initConfig(path, initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

// initConfig writes the default config to path, confirming before
// overwriting an existing file unless force is set.
func initConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
