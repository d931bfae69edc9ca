package measure

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/pkg/errors"
)

func TestKeyString(t *testing.T) {
	for i, tc := range []struct {
		key  Key
		want string
	}{
		{MT("MT", Frac(30), "slope_age"), "MT_projfrac+030_all_slope_age"},
		{MT("MT", Dist(-40), "mean"), "MT_projdist-040_all_mean"},
		{CT("slope_age_at14"), "CT_all_slope_age_at14"},
		{Key{Quantity: "CT", Cohort: Global, Statistic: "mean"}, "CT_global_mean"},
		{NetworkKey("Degree", 10), "Degree_CT_covar_ones_all_COST_10"},
		{NetworkKey("Degree", 2), "Degree_CT_covar_ones_all_COST_02"},
		{VonEconomo, "von_economo"},
		{NetworkKey("Renumbered_Module", 10), "Renumbered_Module_CT_covar_ones_all_COST_10"},
		{MT("MT", Frac(0), "mean"), "MT_projfrac+000_all_mean"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.key.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			k, err := ParseKey(tc.want)
			if err != nil {
				t.Fatal(err)
			}
			if k != tc.key {
				t.Errorf("ParseKey(%q) = %#v, want %#v", tc.want, k, tc.key)
			}
		})
	}

	k := MustParseKey("MT_projfrac+030_all_slope_age")
	if want := MT("MT", Frac(30), "slope_age"); k != want {
		t.Errorf("ParseKey = %#v, want %#v", k, want)
	}
	if _, err := ParseKey(""); err == nil {
		t.Errorf("empty key accepted")
	}
	if _, err := ParseKey("_x"); err == nil {
		t.Errorf("key without quantity accepted")
	}
}

func TestDepthLabels(t *testing.T) {
	want := []string{"Pial", "10%", "20%", "30%", "40%", "50%", "60%", "70%",
		"80%", "90%", "GM/WM", "0.4mm", "0.8mm"}
	if got := DepthLabels(); !reflect.DeepEqual(got, want) {
		t.Errorf("DepthLabels = %q", got)
	}
	if d := DepthSeries()[GMWMIndex]; d != Frac(0) {
		t.Errorf("GM/WM boundary at %v", d)
	}
}

func testDict(t *testing.T) *Dict {
	t.Helper()
	d := NewDict(4)
	mustAdd := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(d.Add(CT("slope_age"), []float64{1, 2, 3, 4}))
	mustAdd(d.Add(VonEconomo, []float64{1, 2, 2, 5}))
	mustAdd(d.AddSubset(Key{Quantity: "PLS1", Statistic: "usable"}, []int{1, 3}, []float64{-0.5, 0.5}))
	mustAdd(d.AddSubjects(AgeScan, []float64{14, 18, 22}))
	return d
}

func TestDictKeys(t *testing.T) {
	d := NewDict(2)
	added := []Key{VonEconomo, NetworkKey("Renumbered_Module", 10), Key{Quantity: "mbp", Statistic: "usable"}}
	for _, k := range added {
		if err := d.Add(k, []float64{1, 2}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	for _, k := range d.Keys() {
		if !d.Has(k) {
			t.Errorf("Keys returned %#v which is not in the dictionary", k)
		}
		found := false
		for _, a := range added {
			found = found || a == k
		}
		if !found {
			t.Errorf("Keys returned %#v, not an added key", k)
		}
	}
	if n := len(d.Keys()); n != len(added) {
		t.Errorf("got %d keys, want %d", n, len(added))
	}
}

func TestDict(t *testing.T) {
	d := testDict(t)

	if err := d.Add(CT("mean"), []float64{1, 2}); errors.Cause(err) != ErrMisaligned {
		t.Errorf("short measure: %v", err)
	}
	if err := d.AddSubset(CT("mean"), []int{2, 1}, []float64{1, 2}); errors.Cause(err) != ErrMisaligned {
		t.Errorf("unordered subset: %v", err)
	}
	if err := d.AddSubjects(CT("global"), []float64{1}); errors.Cause(err) != ErrMisaligned {
		t.Errorf("subject count mismatch: %v", err)
	}
	if _, err := d.Get(CT("nope")); errors.Cause(err) != ErrMissing {
		t.Errorf("missing key: %v", err)
	}

	xs, ys, err := d.Pair(CT("slope_age"), MustParseKey("PLS1_usable"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(xs, []float64{2, 4}) || !reflect.DeepEqual(ys, []float64{-0.5, 0.5}) {
		t.Errorf("Pair = %v, %v", xs, ys)
	}
	if _, _, err := d.Pair(AgeScan, CT("slope_age")); errors.Cause(err) != ErrMisaligned {
		t.Errorf("subject/region pair: %v", err)
	}

	sel, err := d.Select(CT("slope_age"), []int{3, 0})
	if err != nil || !reflect.DeepEqual(sel, []float64{4, 1}) {
		t.Errorf("Select = %v, %v", sel, err)
	}
	if _, err := d.Select(MustParseKey("PLS1_usable"), []int{0}); errors.Cause(err) != ErrMisaligned {
		t.Errorf("select outside subset: %v", err)
	}

	cls, err := d.Classes(VonEconomo)
	if err != nil || !reflect.DeepEqual(cls, []int{1, 2, 2, 5}) {
		t.Errorf("Classes = %v, %v", cls, err)
	}

	if n := len(d.Keys()); n != 4 {
		t.Errorf("got %d keys", n)
	}
}

func TestBounds(t *testing.T) {
	d := testDict(t)
	if err := d.Add(Key{Quantity: "mbp"}, []float64{0, 10, 20, 100}); err != nil {
		t.Fatal(err)
	}
	b, err := ManuscriptBounds(d, nil)
	if err != nil {
		t.Fatal(err)
	}

	lo, hi, err := b.Axis(CT("slope_age"))
	if err != nil || math.Abs(lo-0.85) > 1e-12 || math.Abs(hi-4.15) > 1e-12 {
		t.Errorf("axis bounds = %v, %v, %v", lo, hi, err)
	}
	lo, hi, _ = b.Colorbar(CT("slope_age"))
	if lo != -0.03 || hi != -0.01 {
		t.Errorf("colorbar override = %v, %v", lo, hi)
	}
	lo, hi, err = b.Colorbar(VonEconomo)
	if err != nil || math.Abs(lo-0.8) > 1e-12 || math.Abs(hi-5.2) > 1e-12 {
		t.Errorf("colorbar fallback = %v, %v, %v", lo, hi, err)
	}
	if _, _, err := b.Axis(CT("nope")); errors.Cause(err) != ErrMissing {
		t.Errorf("missing bounds: %v", err)
	}

	if err := b.OverrideSubset(d, []int{0, 1, 2}, Key{Quantity: "mbp"}); err != nil {
		t.Fatal(err)
	}
	if lo, hi, _ := b.Axis(Key{Quantity: "mbp"}); lo != -1 || hi != 21 {
		t.Errorf("subset bounds = %v, %v", lo, hi)
	}
}

func TestAxisLabel(t *testing.T) {
	for k, want := range map[Key]string{
		CT("slope_age"):          "ΔCT (mm/year)",
		NetworkKey("Degree", 10): "Degree",
		MustParseKey("PLS2_usable"): "PLS 2 scores",
		CT("unknown"):            "CT_all_unknown",
	} {
		if got := AxisLabel(k); got != want {
			t.Errorf("AxisLabel(%s) = %q, want %q", k, got, want)
		}
	}
	if HasAxisLabel(CT("unknown")) || !HasAxisLabel(VonEconomo) {
		t.Errorf("HasAxisLabel wrong")
	}
}
