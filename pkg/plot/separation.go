// Package plot turns reduced analysis results into declarative
// Vega-Lite chart specs. Pixel rendering stays outside this repository;
// the specs can be rendered with any Vega-Lite viewer or vl-convert.
package plot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oxygene76/porkchop-client/pkg/separation"
)

const vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// kmPerMkm converts kilometres to millions of kilometres for axis labels.
const kmPerMkm = 1.0e6

type separationPoint struct {
	Date        string  `json:"date"`
	DistanceMkm float64 `json:"distance_mkm"`
	Label       string  `json:"label,omitempty"`
}

// SeparationSpec renders a separation series as a line chart spec with
// the minimum and maximum samples annotated.
func SeparationSpec(series *separation.Series) ([]byte, error) {
	points := make([]separationPoint, len(series.Samples))
	for i, sample := range series.Samples {
		points[i] = separationPoint{
			Date:        sample.Epoch.Time().Format(time.RFC3339),
			DistanceMkm: sample.Distance / kmPerMkm,
		}
	}

	annotate := func(s separation.Sample, tag string) separationPoint {
		return separationPoint{
			Date:        s.Epoch.Time().Format(time.RFC3339),
			DistanceMkm: s.Distance / kmPerMkm,
			Label: fmt.Sprintf("%s: %.1f Mkm (%s)",
				tag, s.Distance/kmPerMkm, s.Epoch.Time().Format("2006-01-02")),
		}
	}
	extrema := []separationPoint{
		annotate(series.Min(), "Min"),
		annotate(series.Max(), "Max"),
	}

	spec := map[string]interface{}{
		"$schema": vegaLiteSchema,
		"title":   fmt.Sprintf("%s - %s Separation (%s, origin %s)", series.BodyA, series.BodyB, series.Frame, series.Origin),
		"width":   900,
		"height":  420,
		"layer": []map[string]interface{}{
			{
				"data": map[string]interface{}{"values": points},
				"mark": map[string]interface{}{"type": "line", "interpolate": "monotone"},
				"encoding": map[string]interface{}{
					"x": map[string]interface{}{"field": "date", "type": "temporal", "title": "Date (UTC)"},
					"y": map[string]interface{}{"field": "distance_mkm", "type": "quantitative", "title": "Distance (million km)"},
				},
			},
			{
				"data": map[string]interface{}{"values": extrema},
				"mark": map[string]interface{}{"type": "point", "filled": true, "size": 90},
				"encoding": map[string]interface{}{
					"x": map[string]interface{}{"field": "date", "type": "temporal"},
					"y": map[string]interface{}{"field": "distance_mkm", "type": "quantitative"},
				},
			},
			{
				"data": map[string]interface{}{"values": extrema},
				"mark": map[string]interface{}{"type": "text", "align": "left", "dx": 8, "dy": -8},
				"encoding": map[string]interface{}{
					"x":    map[string]interface{}{"field": "date", "type": "temporal"},
					"y":    map[string]interface{}{"field": "distance_mkm", "type": "quantitative"},
					"text": map[string]interface{}{"field": "label"},
				},
			},
		},
	}

	return json.MarshalIndent(spec, "", "  ")
}
