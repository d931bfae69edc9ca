// Package measure holds the per-region measures a figure is drawn from:
// typed keys, the aligned measure dictionary, display bounds and axis
// labels.
package measure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DepthKind tells how a sampling depth is measured.
type DepthKind int

const (
	NoDepth   DepthKind = iota
	FracDepth           // percent of cortical thickness, 100 is the pial surface
	DistDepth           // distance in hundredths of a mm from the GM/WM boundary
)

// Depth is a cortical sampling depth. The zero value means the measure
// has no depth.
type Depth struct {
	Kind  DepthKind
	Value int
}

// Frac returns the depth at v percent of the cortical thickness.
func Frac(v int) Depth { return Depth{FracDepth, v} }

// Dist returns the depth v hundredths of a mm from the GM/WM boundary.
// Negative values lie in the white matter.
func Dist(v int) Depth { return Depth{DistDepth, v} }

func (d Depth) String() string {
	switch d.Kind {
	case FracDepth:
		return fmt.Sprintf("projfrac%+04d", d.Value)
	case DistDepth:
		return fmt.Sprintf("projdist%+04d", d.Value)
	}
	return ""
}

// Label returns the tick label of d.
func (d Depth) Label() string {
	switch {
	case d.Kind == FracDepth && d.Value == 100:
		return "Pial"
	case d.Kind == FracDepth && d.Value == 0:
		return "GM/WM"
	case d.Kind == FracDepth:
		return fmt.Sprintf("%2.0f%%", 100-float64(d.Value))
	case d.Kind == DistDepth:
		return fmt.Sprintf("%2.1fmm", float64(d.Value)/-100)
	}
	return ""
}

func parseDepth(s string) (Depth, bool) {
	var kind DepthKind
	switch {
	case strings.HasPrefix(s, "projfrac"):
		kind = FracDepth
	case strings.HasPrefix(s, "projdist"):
		kind = DistDepth
	default:
		return Depth{}, false
	}
	v, err := strconv.Atoi(s[len("projfrac"):])
	if err != nil {
		return Depth{}, false
	}
	return Depth{kind, v}, true
}

// DepthSeries returns the sampled depths from the pial surface down:
// 100% to 0% of the cortical thickness in steps of 10%, followed by
// 0.4mm and 0.8mm into the white matter.
func DepthSeries() []Depth {
	var ds []Depth
	for v := 100; v >= 0; v -= 10 {
		ds = append(ds, Frac(v))
	}
	return append(ds, Dist(-40), Dist(-80))
}

// GMWMIndex is the position of the GM/WM boundary in DepthSeries.
const GMWMIndex = 10

// DepthLabels returns the labels of DepthSeries.
func DepthLabels() []string {
	ds := DepthSeries()
	labels := make([]string, len(ds))
	for i, d := range ds {
		labels[i] = d.Label()
	}
	return labels
}

// Cohorts a statistic is computed over.
const (
	All    = "all"
	Global = "global"
)

// Key identifies a measure: a physical quantity (CT, MT, Degree, PLS1,
// ...) optionally sampled at a depth, a cohort and a statistic.
type Key struct {
	Quantity  string
	Depth     Depth
	Cohort    string
	Statistic string
}

// String returns the name of k, its parts joined by underscores,
// e.g. MT_projfrac+030_all_slope_age.
func (k Key) String() string {
	parts := []string{k.Quantity}
	if k.Depth.Kind != NoDepth {
		parts = append(parts, k.Depth.String())
	}
	if k.Cohort != "" {
		parts = append(parts, k.Cohort)
	}
	if k.Statistic != "" {
		parts = append(parts, k.Statistic)
	}
	return strings.Join(parts, "_")
}

// At returns k sampled at depth d.
func (k Key) At(d Depth) Key {
	k.Depth = d
	return k
}

// With returns k with statistic s.
func (k Key) With(s string) Key {
	k.Statistic = s
	return k
}

// Quantities whose names contain an underscore. ParseKey matches them
// before splitting a name at its first underscore.
var Quantities = []string{"von_economo", "Renumbered_Module"}

// ParseKey is the inverse of Key.String for quantities named without
// an underscore or listed in Quantities.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, errors.New("measure: empty key")
	}
	var k Key
	rest := s
	for _, q := range Quantities {
		if s == q || strings.HasPrefix(s, q+"_") {
			k.Quantity, rest = q, strings.TrimPrefix(s[len(q):], "_")
			break
		}
	}
	if k.Quantity == "" {
		i := strings.Index(s, "_")
		if i < 0 {
			i = len(s)
		}
		k.Quantity, rest = s[:i], strings.TrimPrefix(s[i:], "_")
	}
	if k.Quantity == "" {
		return Key{}, errors.Errorf("measure: malformed key %q", s)
	}
	var parts []string
	if rest != "" {
		parts = strings.Split(rest, "_")
	}
	if len(parts) > 0 {
		if d, ok := parseDepth(parts[0]); ok {
			k.Depth = d
			parts = parts[1:]
		}
	}
	if len(parts) > 0 && (parts[0] == All || parts[0] == Global) {
		k.Cohort = parts[0]
		parts = parts[1:]
	}
	k.Statistic = strings.Join(parts, "_")
	return k, nil
}

// MustParseKey is like ParseKey but panics on malformed input.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// CT returns the regional CT statistic of the whole cohort.
func CT(stat string) Key { return Key{Quantity: "CT", Cohort: All, Statistic: stat} }

// MT returns the regional MT statistic at depth d. The quantity name
// is mpm, the multi parameter map the MT values come from.
func MT(mpm string, d Depth, stat string) Key {
	return Key{Quantity: mpm, Depth: d, Cohort: All, Statistic: stat}
}

// NetworkKey returns the key of a nodal network measure (Degree, PC,
// Module, ...) of the CT covariance network at the given cost.
func NetworkKey(measure string, cost int) Key {
	return Key{Quantity: measure, Statistic: fmt.Sprintf("CT_covar_ones_all_COST_%02d", cost)}
}

// Frequently used keys.
var (
	VonEconomo = Key{Quantity: "von_economo"}
	AgeScan    = Key{Quantity: "age", Statistic: "scan"}
	CentroidX  = Key{Quantity: "x"}
	CentroidY  = Key{Quantity: "y"}
	CentroidZ  = Key{Quantity: "z"}
)
