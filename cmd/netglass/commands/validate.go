/*
File: validate.go
Description: Validate command implementation for netglass. Runs every eager
catalog check against the configuration file and reports all problems found,
so catalog gaps surface before deployment rather than at request time.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netglass/netglass/pkg/config"
)

// RunValidate loads the configuration and reports every catalog problem
func RunValidate(cmd *cobra.Command, args []string) error {
	path := viper.GetString("config")
	if path == "" {
		return fmt.Errorf("no configuration file specified: use --config")
	}

	cfg, err := config.LoadUnchecked(path)
	if err != nil {
		return err
	}

	problems := cfg.Problems()
	if len(problems) == 0 {
		fmt.Printf("OK: %d devices, %d platforms, no problems found\n", len(cfg.Devices), len(cfg.Commands))
		return nil
	}

	for _, p := range problems {
		fmt.Printf("PROBLEM: %v\n", p)
	}
	return fmt.Errorf("%d problems found in %s", len(problems), path)
}
