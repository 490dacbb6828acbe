package catalog

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oxygene76/porkchop-client/pkg/astronomy/orbital"
)

// ElementsSpec holds heliocentric Keplerian elements as written in the
// catalog file. Angles are in degrees, distances in AU.
type ElementsSpec struct {
	SemiMajorAxisAU  float64 `yaml:"semi_major_axis_au"`
	Eccentricity     float64 `yaml:"eccentricity"`
	InclinationDeg   float64 `yaml:"inclination_deg"`
	AscendingNodeDeg float64 `yaml:"ascending_node_deg"`
	ArgPerihelionDeg float64 `yaml:"arg_perihelion_deg"`
	MeanAnomalyDeg   float64 `yaml:"mean_anomaly_deg"`
	EpochJD          float64 `yaml:"epoch_jd"`
}

// Orbital converts the catalog representation to radians-based elements.
func (e ElementsSpec) Orbital() orbital.OrbitalElements {
	const degToRad = math.Pi / 180.0
	return orbital.OrbitalElements{
		SemiMajorAxis:          e.SemiMajorAxisAU,
		Eccentricity:           e.Eccentricity,
		Inclination:            e.InclinationDeg * degToRad,
		LongitudeAscendingNode: e.AscendingNodeDeg * degToRad,
		ArgumentPerihelion:     e.ArgPerihelionDeg * degToRad,
		MeanAnomaly:            e.MeanAnomalyDeg * degToRad,
		Epoch:                  e.EpochJD,
	}
}

// TLESpec holds a two-line element set for Earth-orbiting bodies.
type TLESpec struct {
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`
}

// Body represents one catalog entry. A body carries either heliocentric
// orbital elements, a TLE, or both.
type Body struct {
	Name      string        `yaml:"name"`
	SpiceName string        `yaml:"spice_name"`
	MuKm3S2   float64       `yaml:"mu_km3_s2"`
	RadiusKm  float64       `yaml:"radius_km"`
	Elements  *ElementsSpec `yaml:"elements"`
	TLE       *TLESpec      `yaml:"tle"`
}

// Catalog maps body identifiers to their records. Both the display name
// and the provider-native (SPICE) name resolve to the same entry,
// case-insensitively.
type Catalog struct {
	bodies []*Body
	byKey  map[string]*Body
}

// normalize maps an identifier to its canonical lookup key.
func normalize(identifier string) string {
	return strings.ToUpper(strings.TrimSpace(identifier))
}

// Parse reads a YAML body catalog from r.
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []*Body
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{byKey: make(map[string]*Body)}
	for _, entry := range entries {
		if entry == nil || entry.Name == "" || entry.SpiceName == "" {
			continue
		}
		c.bodies = append(c.bodies, entry)
		c.byKey[normalize(entry.Name)] = entry
		c.byKey[normalize(entry.SpiceName)] = entry
	}

	if len(c.bodies) == 0 {
		return nil, fmt.Errorf("no valid bodies found in catalog")
	}
	return c, nil
}

// Load reads a YAML body catalog from a file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Resolve maps a body identifier (name or SPICE name) to its record.
func (c *Catalog) Resolve(identifier string) (*Body, error) {
	body, ok := c.byKey[normalize(identifier)]
	if !ok {
		return nil, fmt.Errorf("body %q not found in catalog (available: %s)",
			identifier, strings.Join(c.Names(), ", "))
	}
	return body, nil
}

// Names returns the display names of all catalog bodies, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.bodies))
	for _, body := range c.bodies {
		names = append(names, body.Name)
	}
	sort.Strings(names)
	return names
}

// Bodies returns all catalog entries in file order.
func (c *Catalog) Bodies() []*Body {
	return c.bodies
}

// KeplerElements collects the orbital elements of every body that has
// them, keyed by SPICE name, ready to seed a Kepler ephemeris provider.
func (c *Catalog) KeplerElements() map[string]orbital.OrbitalElements {
	out := make(map[string]orbital.OrbitalElements)
	for _, body := range c.bodies {
		if body.Elements != nil {
			out[body.SpiceName] = body.Elements.Orbital()
		}
	}
	return out
}
