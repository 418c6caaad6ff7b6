/*
File: build.go
Description: Build command implementation for netglass. Loads the device
catalog, constructs the query artifact for the requested device/target/kind,
and prints it to stdout one element per line.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netglass/netglass/pkg/construct"
	"github.com/netglass/netglass/pkg/interfaces"
)

// RunBuild constructs and prints one query artifact
func RunBuild(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := LoadCatalog()
	if err != nil {
		return err
	}
	logger.LogCatalogLoad(viper.GetString("config"), len(cfg.Devices), len(cfg.Commands))

	deviceName := viper.GetString("device")
	device, ok := cfg.Device(deviceName)
	if !ok {
		return fmt.Errorf("device %q is not in the catalog", deviceName)
	}

	req := &interfaces.Request{
		QueryTarget: viper.GetString("target"),
		QueryVRF:    viper.GetString("vrf"),
		QueryType:   interfaces.QueryType(viper.GetString("query_type")),
		Transport:   interfaces.Transport(viper.GetString("transport")),
	}

	var builder interfaces.Builder = construct.New(device, cfg.Commands, logger.GetLogger())
	query, err := builder.Build(req)
	if err != nil {
		return fmt.Errorf("query construction failed: %w", err)
	}

	for _, line := range query {
		fmt.Println(line)
	}
	return nil
}
