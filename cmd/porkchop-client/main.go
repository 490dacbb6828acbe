package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxygene76/porkchop-client/pkg/catalog"
	"github.com/oxygene76/porkchop-client/pkg/utils"
)

const (
	// Application constants
	appName = "porkchop-client"
	version = "v1.0.0"
)

var (
	// Global configuration, loaded before any analysis command runs
	cfg *utils.Config

	// catalogPath overrides the configured body catalog when set
	catalogPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Launch-window and separation plot preparation for solar transfer studies",
	Long: `porkchop-client prepares time-sampled astrodynamic data for
visualization. It samples body-to-body separation distances from a local
ephemeris and reduces transfer-cost sweeps into porkchop contour grids,
emitting declarative chart specs that any Vega-Lite renderer can turn
into images.

The transfer sweep itself (Lambert solutions per departure/arrival pair)
is produced upstream by the porkchop solver; this client only consumes
its CSV output.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		loaded, err := utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// initCmd initializes the client configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize client configuration",
	Long: `Initialize the porkchop-client configuration. This creates the
default configuration file and the output directory used for generated
chart specs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Initializing %s %s\n", appName, version)

		if _, err := utils.LoadConfig(); err != nil {
			return err
		}

		path, err := utils.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("Configuration ready at: %s\n", path)
		return nil
	},
}

// bodiesCmd lists the catalog bodies available for sampling
var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List bodies available in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		for _, body := range cat.Bodies() {
			kind := "kepler"
			if body.Elements == nil && body.TLE != nil {
				kind = "sgp4"
			}
			fmt.Printf("%-12s %-12s %s\n", body.Name, body.SpiceName, kind)
		}
		return nil
	},
}

// loadCatalog opens the body catalog from the flag override or config.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.Ephemeris.CatalogPath
	}
	return catalog.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the body catalog (overrides config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(bodiesCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(porkchopCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
