package plot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oxygene76/porkchop-client/pkg/porkchop"
)

type porkchopCell struct {
	Depart string  `json:"depart"`
	Arrive string  `json:"arrive"`
	Value  float64 `json:"value"`
}

// PorkchopSpec renders a reduced porkchop grid as a heatmap spec. The
// color scale is a threshold scale over the derived contour levels, so
// the rendered bands match the level boundaries, and the minimum-cost
// point is marked with cross hairs.
func PorkchopSpec(res *porkchop.Result, metricLabel string) ([]byte, error) {
	grid := res.Grid

	var cells []porkchopCell
	for i := range grid.Arrives {
		for j := range grid.Departs {
			if !grid.Present(i, j) {
				continue
			}
			cells = append(cells, porkchopCell{
				Depart: grid.Departs[j].Format(time.RFC3339),
				Arrive: grid.Arrives[i].Format(time.RFC3339),
				Value:  grid.Values[i][j],
			})
		}
	}

	// Interior level boundaries split the clip range into bands.
	thresholds := res.Levels[1 : len(res.Levels)-1]

	minPoint := []map[string]interface{}{{
		"depart": res.Minimum.Depart.Format(time.RFC3339),
		"arrive": res.Minimum.Arrive.Format(time.RFC3339),
		"label":  fmt.Sprintf("%s = %.2f", metricLabel, res.Minimum.Cost),
	}}

	spec := map[string]interface{}{
		"$schema": vegaLiteSchema,
		"title":   "Launch Window Transfer Cost",
		"width":   640,
		"height":  480,
		"layer": []map[string]interface{}{
			{
				"data": map[string]interface{}{"values": cells},
				"mark": "rect",
				"encoding": map[string]interface{}{
					"x": map[string]interface{}{"field": "depart", "type": "ordinal", "timeUnit": "yearmonthdate", "title": "Departure Date"},
					"y": map[string]interface{}{"field": "arrive", "type": "ordinal", "timeUnit": "yearmonthdate", "title": "Arrival Date"},
					"color": map[string]interface{}{
						"field": "value",
						"type":  "quantitative",
						"title": metricLabel,
						"scale": map[string]interface{}{
							"type":   "threshold",
							"domain": thresholds,
							"scheme": "turbo",
						},
					},
				},
			},
			{
				"data": map[string]interface{}{"values": minPoint},
				"mark": map[string]interface{}{"type": "point", "shape": "cross", "size": 200, "color": "black"},
				"encoding": map[string]interface{}{
					"x": map[string]interface{}{"field": "depart", "type": "ordinal", "timeUnit": "yearmonthdate"},
					"y": map[string]interface{}{"field": "arrive", "type": "ordinal", "timeUnit": "yearmonthdate"},
				},
			},
			{
				"data": map[string]interface{}{"values": minPoint},
				"mark": map[string]interface{}{"type": "text", "align": "left", "dx": 10, "dy": -10},
				"encoding": map[string]interface{}{
					"x":    map[string]interface{}{"field": "depart", "type": "ordinal", "timeUnit": "yearmonthdate"},
					"y":    map[string]interface{}{"field": "arrive", "type": "ordinal", "timeUnit": "yearmonthdate"},
					"text": map[string]interface{}{"field": "label"},
				},
			},
		},
	}

	return json.MarshalIndent(spec, "", "  ")
}
