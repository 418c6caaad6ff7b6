/*
File: main.go
Description: Command-line interface for netglass. Provides offline operator
tooling around the query construction engine: building query artifacts from a
device catalog and validating catalog configuration. Nothing here executes a
query or touches the network.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netglass/netglass/cmd/netglass/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	// Build request
	deviceName string
	target     string
	vrf        string
	queryType  string
	transport  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netglass",
		Short: "netglass - looking glass query construction engine",
		Long: `netglass constructs the exact command or API payload needed to run a
looking glass query (ping, traceroute, bgp_route, bgp_community, bgp_aspath)
against a network device, resolving address family, VRF context, and the
per-vendor command template from a device capability catalog. It constructs
only; execution belongs to a separate transport layer.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Device/catalog configuration file path (required)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Construct the query artifact for one request",
		Long: `Construct the command strings (scrape transport) or JSON payload (rest
transport) for a single query request against a device from the catalog, and
print the result. Useful for verifying catalog changes before deployment.`,
		RunE: commands.RunBuild,
	}

	buildCmd.Flags().StringVar(&deviceName, "device", "", "Device name from the catalog (required)")
	buildCmd.Flags().StringVar(&target, "target", "", "Query target IP address or prefix (required)")
	buildCmd.Flags().StringVar(&vrf, "vrf", "default", "Routing VRF name")
	buildCmd.Flags().StringVar(&queryType, "query-type", "", "Query kind: ping, traceroute, bgp_route, bgp_community, bgp_aspath (required)")
	buildCmd.Flags().StringVar(&transport, "transport", "scrape", "Transport: scrape or rest")

	buildCmd.MarkFlagRequired("device")
	buildCmd.MarkFlagRequired("target")
	buildCmd.MarkFlagRequired("query-type")

	viper.BindPFlag("device", buildCmd.Flags().Lookup("device"))
	viper.BindPFlag("target", buildCmd.Flags().Lookup("target"))
	viper.BindPFlag("vrf", buildCmd.Flags().Lookup("vrf"))
	viper.BindPFlag("query_type", buildCmd.Flags().Lookup("query-type"))
	viper.BindPFlag("transport", buildCmd.Flags().Lookup("transport"))

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the device catalog configuration",
		Long: `Load the configuration file and run every eager catalog check, reporting
all problems found: unknown template placeholders, devices whose platform has
no catalog entry, command templates missing for query paths the device's VRF
table makes reachable, VRFs without address families, and unparseable source
addresses. Exits non-zero when any problem is found.`,
		RunE: commands.RunValidate,
	}

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
