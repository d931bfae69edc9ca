package measure

import (
	"github.com/HappyPenguin/figure"
	"github.com/pkg/errors"
)

// Bounds holds the display range of the axis and of the colorbar for
// each measure. Colorbar ranges fix the color encoding across panels
// and may differ from the axis range.
type Bounds struct {
	axis map[string]figure.Interval
	cbar map[string]figure.Interval
}

// NewBounds computes the axis range of every measure in d with
// figure.CalcMinMax. Measures whose range cannot be determined are left
// out.
func NewBounds(d *Dict) *Bounds {
	b := &Bounds{
		axis: make(map[string]figure.Interval),
		cbar: make(map[string]figure.Interval),
	}
	for name, s := range d.m {
		lo, hi := figure.CalcMinMax(s.values, figure.DefaultPad)
		if iv := (figure.Interval{Min: lo, Max: hi}); iv.Valid() {
			b.axis[name] = iv
		}
	}
	return b
}

// Axis returns the axis range of k.
func (b *Bounds) Axis(k Key) (lo, hi float64, err error) {
	iv, ok := b.axis[k.String()]
	if !ok {
		return 0, 0, errors.Wrapf(ErrMissing, "axis bounds of %s", k)
	}
	return iv.Min, iv.Max, nil
}

// Colorbar returns the colorbar range of k, falling back to its axis
// range.
func (b *Bounds) Colorbar(k Key) (lo, hi float64, err error) {
	if iv, ok := b.cbar[k.String()]; ok {
		return iv.Min, iv.Max, nil
	}
	lo, hi, err = b.Axis(k)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrMissing, "colorbar bounds of %s", k)
	}
	return lo, hi, nil
}

// SetAxis overrides the axis range of k.
func (b *Bounds) SetAxis(k Key, lo, hi float64) {
	b.axis[k.String()] = figure.Interval{Min: lo, Max: hi}
}

// SetColorbar overrides the colorbar range of k.
func (b *Bounds) SetColorbar(k Key, lo, hi float64) {
	b.cbar[k.String()] = figure.Interval{Min: lo, Max: hi}
}

// OverrideSubset recomputes the axis ranges of keys from their values at
// the given regions only.
func (b *Bounds) OverrideSubset(d *Dict, regions []int, keys ...Key) error {
	for _, k := range keys {
		v, err := d.Select(k, regions)
		if err != nil {
			return err
		}
		lo, hi := figure.CalcMinMax(v, figure.DefaultPad)
		b.SetAxis(k, lo, hi)
	}
	return nil
}

// override is a fixed range of a named measure.
type override struct {
	name     string
	lo, hi   float64
	colorbar bool
}

var manuscriptOverrides = []override{
	{"CT_all_slope_age", -0.03, -0.01, true},
	{"CT_all_slope_age_Uncorr", -0.03, 0.03, true},
	{"CT_all_slope_age_at14", 2.5, 3.5, true},
	{"MT_projfrac+030_all_slope_age", 0.002, 0.005, true},
	{"MT_projfrac+030_all_slope_age_at14", 0.8, 1.0, true},
	{"PLS1", -0.07, 0.07, true},
	{"PLS2", -0.07, 0.07, true},
	{"PLS1_usable", -0.07, 0.07, true},
	{"PLS2_usable", -0.07, 0.07, true},
	{"MT_all_mean", 0.4, 1.8, false},
	{"MT_all_slope_age", -0.008, 0.016, false},
	{"MT_all_slope_age", -0.005, 0.005, true},
	{"MT_all_slope_age_at14", 0.4, 1.8, false},
	{"MT_all_slope_age_at14", 0.4, 1.8, true},
	{"MT_all_slope_ct", -5.5, 2.2, false},
	{"MT_all_slope_age_vs_mbp", -0.002, -0.0006, false},
	{"MT_all_slope_age_at14_vs_mbp", 0.01, 0.08, false},
}

// GeneMeasures are the gene expression measures whose axis ranges
// ManuscriptBounds recomputes over the gene expression regions.
var GeneMeasures = []Key{
	{Quantity: "mbp"},
	{Quantity: "cux"},
	{Quantity: "PLS1"},
	{Quantity: "PLS2"},
}

// ManuscriptBounds returns the bounds of d with the fixed manuscript
// ranges layered on top. If geneRegions is not nil the axis ranges of
// the GeneMeasures are computed over these regions only.
func ManuscriptBounds(d *Dict, geneRegions []int) (*Bounds, error) {
	b := NewBounds(d)
	for _, o := range manuscriptOverrides {
		k := MustParseKey(o.name)
		if o.colorbar {
			b.SetColorbar(k, o.lo, o.hi)
		} else {
			b.SetAxis(k, o.lo, o.hi)
		}
	}
	if geneRegions != nil {
		if err := b.OverrideSubset(d, geneRegions, GeneMeasures...); err != nil {
			return nil, errors.Wrap(err, "gene bounds")
		}
	}
	return b, nil
}
