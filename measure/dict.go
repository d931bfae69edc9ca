package measure

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrMissing is returned for a measure not in the dictionary.
	ErrMissing = errors.New("measure: missing")

	// ErrMisaligned is returned for values which cannot be matched to
	// the regions or subjects of the dictionary.
	ErrMisaligned = errors.New("measure: misaligned")
)

// series is one measure: a value per region, per region of a subset,
// or per subject.
type series struct {
	key      Key
	values   []float64
	regions  []int // nil: all regions in order
	subjects bool
}

// Dict maps keys to measures. Regional measures are aligned: value i of
// a full measure belongs to region i, and subset measures carry the
// region of each of their values. Subject level measures (age, global
// means) have one value per scanned subject.
type Dict struct {
	regions  int
	subjects int
	m        map[string]series
}

// NewDict returns an empty dictionary over n regions.
func NewDict(regions int) *Dict {
	return &Dict{regions: regions, subjects: -1, m: make(map[string]series)}
}

// Len returns the number of regions.
func (d *Dict) Len() int { return d.regions }

// Add stores a value for every region under k.
func (d *Dict) Add(k Key, values []float64) error {
	if len(values) != d.regions {
		return errors.Wrapf(ErrMisaligned, "%s has %d values for %d regions", k, len(values), d.regions)
	}
	d.m[k.String()] = series{key: k, values: values}
	return nil
}

// AddSubset stores values of the given regions under k. Regions must be
// increasing and valid.
func (d *Dict) AddSubset(k Key, regions []int, values []float64) error {
	if len(values) != len(regions) {
		return errors.Wrapf(ErrMisaligned, "%s has %d values for %d regions", k, len(values), len(regions))
	}
	for i, r := range regions {
		if r < 0 || r >= d.regions || (i > 0 && r <= regions[i-1]) {
			return errors.Wrapf(ErrMisaligned, "%s: bad region %d at %d", k, r, i)
		}
	}
	d.m[k.String()] = series{key: k, values: values, regions: regions}
	return nil
}

// AddSubjects stores a subject level measure. All subject level
// measures must have the same length.
func (d *Dict) AddSubjects(k Key, values []float64) error {
	if d.subjects >= 0 && len(values) != d.subjects {
		return errors.Wrapf(ErrMisaligned, "%s has %d values for %d subjects", k, len(values), d.subjects)
	}
	d.subjects = len(values)
	d.m[k.String()] = series{key: k, values: values, subjects: true}
	return nil
}

// Has reports whether k is in d.
func (d *Dict) Has(k Key) bool {
	_, ok := d.m[k.String()]
	return ok
}

// Get returns the values of k.
func (d *Dict) Get(k Key) ([]float64, error) {
	s, ok := d.m[k.String()]
	if !ok {
		return nil, errors.Wrap(ErrMissing, k.String())
	}
	return s.values, nil
}

// Regions returns the regions the values of k belong to. Subject level
// measures have none.
func (d *Dict) Regions(k Key) ([]int, error) {
	s, ok := d.m[k.String()]
	if !ok {
		return nil, errors.Wrap(ErrMissing, k.String())
	}
	if s.subjects {
		return nil, nil
	}
	return d.regionsOf(s), nil
}

func (d *Dict) regionsOf(s series) []int {
	if s.regions != nil {
		return s.regions
	}
	all := make([]int, d.regions)
	for i := range all {
		all[i] = i
	}
	return all
}

// Select returns the values of k at the given regions.
func (d *Dict) Select(k Key, regions []int) ([]float64, error) {
	s, ok := d.m[k.String()]
	if !ok {
		return nil, errors.Wrap(ErrMissing, k.String())
	}
	if s.subjects {
		return nil, errors.Wrapf(ErrMisaligned, "%s is a subject level measure", k)
	}
	pos := make(map[int]int, len(s.values))
	for i, r := range d.regionsOf(s) {
		pos[r] = i
	}
	out := make([]float64, len(regions))
	for i, r := range regions {
		j, ok := pos[r]
		if !ok {
			return nil, errors.Wrapf(ErrMisaligned, "%s has no value for region %d", k, r)
		}
		out[i] = s.values[j]
	}
	return out, nil
}

// Pair returns the values of x and y for the regions (or subjects) both
// cover, in region order.
func (d *Dict) Pair(x, y Key) (xs, ys []float64, err error) {
	sx, ok := d.m[x.String()]
	if !ok {
		return nil, nil, errors.Wrap(ErrMissing, x.String())
	}
	sy, ok := d.m[y.String()]
	if !ok {
		return nil, nil, errors.Wrap(ErrMissing, y.String())
	}
	switch {
	case sx.subjects && sy.subjects:
		return sx.values, sy.values, nil
	case sx.subjects || sy.subjects:
		return nil, nil, errors.Wrapf(ErrMisaligned, "cannot pair %s with %s", x, y)
	case sx.regions == nil && sy.regions == nil:
		return sx.values, sy.values, nil
	}

	rx, ry := d.regionsOf(sx), d.regionsOf(sy)
	i, j := 0, 0
	for i < len(rx) && j < len(ry) {
		switch {
		case rx[i] < ry[j]:
			i++
		case rx[i] > ry[j]:
			j++
		default:
			xs = append(xs, sx.values[i])
			ys = append(ys, sy.values[j])
			i++
			j++
		}
	}
	if len(xs) == 0 {
		return nil, nil, errors.Wrapf(ErrMisaligned, "%s and %s share no region", x, y)
	}
	return xs, ys, nil
}

// DepthProfile returns the values of the cohort wide statistic stat of
// the multi parameter map mpm at every depth of DepthSeries.
func (d *Dict) DepthProfile(mpm, stat string) ([][]float64, error) {
	ds := DepthSeries()
	profile := make([][]float64, len(ds))
	for i, depth := range ds {
		v, err := d.Get(MT(mpm, depth, stat))
		if err != nil {
			return nil, errors.Wrap(err, "depth profile")
		}
		profile[i] = v
	}
	return profile, nil
}

// Keys returns all keys of d sorted by name.
func (d *Dict) Keys() []Key {
	names := make([]string, 0, len(d.m))
	for n := range d.m {
		names = append(names, n)
	}
	sort.Strings(names)
	keys := make([]Key, len(names))
	for i, n := range names {
		keys[i] = d.m[n].key
	}
	return keys
}

// Classes returns the values of an integer valued measure like
// von_economo or a module assignment. Non integral values are an error.
func (d *Dict) Classes(k Key) ([]int, error) {
	v, err := d.Get(k)
	if err != nil {
		return nil, err
	}
	c := make([]int, len(v))
	for i, x := range v {
		if x != math.Trunc(x) {
			return nil, errors.Errorf("measure: %s has non integral value %g", k, x)
		}
		c[i] = int(x)
	}
	return c, nil
}
