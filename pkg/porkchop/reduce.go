package porkchop

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyInput is returned when no feasible rows remain after
	// filtering.
	ErrEmptyInput = errors.New("no feasible transfer solutions in input")

	// ErrEmptyGrid is returned when densification leaves no rows or
	// columns.
	ErrEmptyGrid = errors.New("no grid cells survive densification")

	// ErrDegenerateRange is returned when a valid [zmin, zmax) contour
	// range cannot be derived from the grid.
	ErrDegenerateRange = errors.New("unable to determine contour levels")
)

// NumLevels is the number of contour level boundaries generated for a
// reduced grid, inclusive of both range ends.
const NumLevels = 30

// Row represents one observed transfer solution from the upstream
// porkchop CSV. Multiple rows may share a (depart, arrive) pair from
// feasibility reruns; the minimum metric value wins during folding.
type Row struct {
	Depart   time.Time
	Arrive   time.Time
	Feasible bool

	TOFDays float64
	C3      float64
	VinfDep float64
	VinfArr float64
	DVDep   float64
	DVArr   float64
	DVTotal float64
}

// Metric selects the cost value to reduce from a row.
type Metric func(Row) float64

// MetricByName maps a CSV metric column name to its accessor.
func MetricByName(name string) (Metric, error) {
	switch name {
	case "tof_days":
		return func(r Row) float64 { return r.TOFDays }, nil
	case "c3_km2_s2":
		return func(r Row) float64 { return r.C3 }, nil
	case "vinf_dep_km_s":
		return func(r Row) float64 { return r.VinfDep }, nil
	case "vinf_arr_km_s":
		return func(r Row) float64 { return r.VinfArr }, nil
	case "dv_dep_km_s":
		return func(r Row) float64 { return r.DVDep }, nil
	case "dv_arr_km_s":
		return func(r Row) float64 { return r.DVArr }, nil
	case "dv_total_km_s":
		return func(r Row) float64 { return r.DVTotal }, nil
	}
	return nil, fmt.Errorf("unknown metric column %q", name)
}

// Grid is a dense cost matrix: rows are sorted distinct arrival epochs,
// columns are sorted distinct departure epochs. Absent cells (no
// feasible solution for the pair) hold NaN.
type Grid struct {
	Departs []time.Time
	Arrives []time.Time
	Values  [][]float64 // indexed [arrive][depart]
}

// Present reports whether the cell at (arrive i, depart j) holds a
// finite value. Non-finite cells are treated as absent, the way the
// contouring stage masks them.
func (g *Grid) Present(i, j int) bool {
	v := g.Values[i][j]
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClipRange is the value range all contouring and coloring operate on.
type ClipRange struct {
	Low  float64
	High float64
}

// MinimumPoint is the globally minimal-cost transfer in the original
// pre-fold, pre-clip feasible rows.
type MinimumPoint struct {
	Depart time.Time
	Arrive time.Time
	Cost   float64
}

// Result bundles everything the renderer needs for one porkchop plot.
type Result struct {
	Grid    *Grid
	Clip    ClipRange
	Levels  []float64
	Minimum MinimumPoint
}

// Reduce runs the full porkchop pipeline over the input rows:
// filter infeasible rows, fold duplicate (depart, arrive) pairs to
// their minimum cost, densify into a rectangular grid, clip extreme
// outliers against highClipFactor*zmin, derive the contour levels, and
// locate the true minimum-cost point.
//
// The input slice is treated as an immutable snapshot; Reduce never
// mutates it and the result does not alias it.
func Reduce(rows []Row, metric Metric, highClipFactor float64) (*Result, error) {
	// Step 1 - filter to feasible rows.
	feasible := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Feasible {
			feasible = append(feasible, row)
		}
	}
	if len(feasible) == 0 {
		return nil, ErrEmptyInput
	}

	// Step 2 - fold duplicates, keeping the minimum cost per pair.
	// Non-finite costs never displace a finite one, matching the
	// NaN-skipping aggregation of the original pivot.
	folded := make(map[pairKey]float64)
	departAt := make(map[int64]time.Time)
	arriveAt := make(map[int64]time.Time)
	for _, row := range feasible {
		key := pairKey{row.Depart.UnixNano(), row.Arrive.UnixNano()}
		departAt[key.depart] = row.Depart
		arriveAt[key.arrive] = row.Arrive

		cost := metric(row)
		current, seen := folded[key]
		switch {
		case !seen:
			folded[key] = cost
		case math.IsNaN(current) && !math.IsNaN(cost):
			folded[key] = cost
		case !math.IsNaN(cost) && cost < current:
			folded[key] = cost
		}
	}

	// Step 3 - densify onto sorted distinct axes.
	grid := densify(folded, departAt, arriveAt)

	// Step 4 - validate.
	if len(grid.Departs) == 0 || len(grid.Arrives) == 0 {
		return nil, ErrEmptyGrid
	}

	// Step 5 - clip outliers. zmin is never re-derived downward after
	// clamping; the displayed minimum always matches the true one.
	zmin, zmax := presentRange(grid)
	clip := ClipRange{Low: zmin, High: zmax}
	if limit := zmin * highClipFactor; zmax > limit {
		for i := range grid.Values {
			for j := range grid.Values[i] {
				if grid.Present(i, j) {
					v := grid.Values[i][j]
					grid.Values[i][j] = math.Min(math.Max(v, zmin), limit)
				}
			}
		}
		clip.High = limit
	}
	if math.IsInf(clip.Low, 0) || math.IsNaN(clip.Low) ||
		math.IsInf(clip.High, 0) || math.IsNaN(clip.High) ||
		clip.Low >= clip.High {
		return nil, fmt.Errorf("%w: range [%g, %g]", ErrDegenerateRange, clip.Low, clip.High)
	}

	// Step 6 - evenly spaced contour boundaries over the clipped range.
	levels := floats.Span(make([]float64, NumLevels), clip.Low, clip.High)

	// Step 7 - locate the global minimum in the original feasible rows,
	// untouched by folding or clipping. First occurrence wins ties.
	minimum := locateMinimum(feasible, metric)

	return &Result{Grid: grid, Clip: clip, Levels: levels, Minimum: minimum}, nil
}

// pairKey identifies one exact (depart, arrive) combination.
type pairKey struct{ depart, arrive int64 }

// densify arranges folded cells onto a dense (arrive x depart) matrix
// and trims rows and columns that hold no finite value.
func densify(folded map[pairKey]float64, departAt, arriveAt map[int64]time.Time) *Grid {
	departs := sortedTimes(departAt)
	arrives := sortedTimes(arriveAt)

	values := make([][]float64, len(arrives))
	for i, arrive := range arrives {
		values[i] = make([]float64, len(departs))
		for j, depart := range departs {
			cell, ok := folded[pairKey{depart.UnixNano(), arrive.UnixNano()}]
			if !ok {
				cell = math.NaN()
			}
			values[i][j] = cell
		}
	}

	keepRow := make([]bool, len(arrives))
	keepCol := make([]bool, len(departs))
	for i := range values {
		for j, v := range values[i] {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				keepRow[i] = true
				keepCol[j] = true
			}
		}
	}

	out := &Grid{}
	for j, keep := range keepCol {
		if keep {
			out.Departs = append(out.Departs, departs[j])
		}
	}
	for i, keep := range keepRow {
		if !keep {
			continue
		}
		out.Arrives = append(out.Arrives, arrives[i])
		rowVals := make([]float64, 0, len(out.Departs))
		for j, keep := range keepCol {
			if keep {
				rowVals = append(rowVals, values[i][j])
			}
		}
		out.Values = append(out.Values, rowVals)
	}
	return out
}

// presentRange returns the minimum and maximum over finite grid cells.
func presentRange(g *Grid) (zmin, zmax float64) {
	zmin = math.Inf(1)
	zmax = math.Inf(-1)
	for i := range g.Values {
		for j, v := range g.Values[i] {
			if !g.Present(i, j) {
				continue
			}
			zmin = math.Min(zmin, v)
			zmax = math.Max(zmax, v)
		}
	}
	return zmin, zmax
}

// locateMinimum scans the pre-fold feasible rows for the smallest
// finite cost.
func locateMinimum(feasible []Row, metric Metric) MinimumPoint {
	best := MinimumPoint{Cost: math.Inf(1)}
	for _, row := range feasible {
		cost := metric(row)
		if math.IsNaN(cost) {
			continue
		}
		if cost < best.Cost {
			best = MinimumPoint{Depart: row.Depart, Arrive: row.Arrive, Cost: cost}
		}
	}
	return best
}

func sortedTimes(set map[int64]time.Time) []time.Time {
	out := make([]time.Time, 0, len(set))
	for _, t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
