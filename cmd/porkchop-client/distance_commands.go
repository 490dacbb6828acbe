package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxygene76/porkchop-client/pkg/catalog"
	"github.com/oxygene76/porkchop-client/pkg/ephemeris"
	"github.com/oxygene76/porkchop-client/pkg/plot"
	"github.com/oxygene76/porkchop-client/pkg/separation"
)

var (
	distBodyA    string
	distBodyB    string
	distStart    string
	distEnd      string
	distStepDays float64
	distProvider string
	distOutput   string
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Sample the separation distance between two catalog bodies",
	Long: `Sample the separation between two catalog bodies over a time
window and write a line-chart spec with the minimum and maximum
separation annotated.

Examples:
  # Earth-Mars separation over two years at the default 5-day cadence
  porkchop-client distance --body-a EARTH --body-b MARS

  # Conjunction distance between two satellites from catalog TLEs
  porkchop-client distance --body-a ISS --body-b TIANGONG \
      --provider sgp4 --start "2026 MAR 01" --end "2026 MAR 08" --step-days 0.01`,
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().StringVar(&distBodyA, "body-a", "EARTH", "First body name/identifier from the catalog")
	distanceCmd.Flags().StringVar(&distBodyB, "body-b", "MARS", "Second body name/identifier from the catalog")
	distanceCmd.Flags().StringVar(&distStart, "start", "2025 JAN 01 00:00:00 TDB", "Start epoch")
	distanceCmd.Flags().StringVar(&distEnd, "end", "2027 JAN 01 00:00:00 TDB", "End epoch")
	distanceCmd.Flags().Float64Var(&distStepDays, "step-days", 0, "Sampling cadence in days (default from config)")
	distanceCmd.Flags().StringVar(&distProvider, "provider", "", "Ephemeris provider: kepler or sgp4 (default from config)")
	distanceCmd.Flags().StringVar(&distOutput, "output", "", "Path for the chart spec (default derived from body names)")
}

func runDistance(cmd *cobra.Command, args []string) error {
	start, err := ephemeris.ParseEpoch(distStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := ephemeris.ParseEpoch(distEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	stepDays := distStepDays
	if stepDays == 0 {
		stepDays = cfg.Sampling.StepDays
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	bodyA, err := cat.Resolve(distBodyA)
	if err != nil {
		return err
	}
	bodyB, err := cat.Resolve(distBodyB)
	if err != nil {
		return err
	}

	provider, err := buildProvider(cat, bodyA, bodyB)
	if err != nil {
		return err
	}

	log.Printf("Sampling %s-%s separation from %s to %s every %g days",
		bodyA.Name, bodyB.Name, start.Format(), end.Format(), stepDays)

	sampler := &separation.Sampler{Provider: provider, Workers: cfg.Sampling.Workers}
	series, err := sampler.Sample(bodyA.SpiceName, bodyB.SpiceName, start, end, stepDays)
	if err != nil {
		return err
	}

	min, max := series.Min(), series.Max()
	log.Printf("Sampled %d epochs: min %.1f Mkm at %s, max %.1f Mkm at %s",
		len(series.Samples),
		min.Distance/1e6, min.Epoch.Format(),
		max.Distance/1e6, max.Epoch.Format())

	spec, err := plot.SeparationSpec(series)
	if err != nil {
		return fmt.Errorf("failed to build chart spec: %w", err)
	}

	output := distOutput
	if output == "" {
		name := fmt.Sprintf("%s_%s_distance.vl.json",
			strings.ToLower(bodyA.Name), strings.ToLower(bodyB.Name))
		output = filepath.Join(cfg.Plot.OutputDir, name)
	}
	if err := writeSpec(output, spec); err != nil {
		return err
	}

	fmt.Printf("Saved %s-%s separation chart spec to %s\n", bodyA.Name, bodyB.Name, output)
	return nil
}

// buildProvider constructs the configured ephemeris provider and checks
// that both bodies are actually resolvable through it.
func buildProvider(cat *catalog.Catalog, bodies ...*catalog.Body) (ephemeris.Provider, error) {
	providerName := distProvider
	if providerName == "" {
		providerName = cfg.Ephemeris.Provider
	}

	switch providerName {
	case "kepler":
		for _, body := range bodies {
			if body.Elements == nil {
				return nil, fmt.Errorf("body %s has no orbital elements in the catalog; try --provider sgp4", body.Name)
			}
		}
		return ephemeris.NewKeplerProvider(cat.KeplerElements()), nil

	case "sgp4":
		tles := make(map[string]ephemeris.TLE)
		for _, body := range cat.Bodies() {
			if body.TLE != nil {
				tles[body.SpiceName] = ephemeris.TLE{Line1: body.TLE.Line1, Line2: body.TLE.Line2}
			}
		}
		for _, body := range bodies {
			if _, ok := tles[body.SpiceName]; !ok {
				return nil, fmt.Errorf("body %s has no TLE in the catalog; try --provider kepler", body.Name)
			}
		}
		return ephemeris.NewSGP4Provider(tles), nil
	}

	return nil, fmt.Errorf("unknown ephemeris provider %q (use: kepler, sgp4)", providerName)
}

// writeSpec writes a chart spec, creating the output directory first.
func writeSpec(path string, spec []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, spec, 0644); err != nil {
		return fmt.Errorf("failed to write chart spec: %w", err)
	}
	return nil
}
