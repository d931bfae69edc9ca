package manuscript

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/network"
	"github.com/HappyPenguin/figure/render"
)

const (
	nRegions  = 12
	nSubjects = 8
)

var geneRegions = []int{0, 2, 4, 6, 8, 10}

// wave returns n smoothly varying, non constant values.
func wave(n int, offset, scale float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = offset + scale*(float64(i)+0.5*math.Sin(float64(3*i)))
	}
	return v
}

func add(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func testData(t *testing.T) *Data {
	t.Helper()
	d := measure.NewDict(nRegions)

	classes := make([]float64, nRegions)
	modules := make([]float64, nRegions)
	for i := range classes {
		classes[i] = float64(i%5 + 1)
		modules[i] = float64(i%3 + 1)
	}
	add(t, d.Add(measure.VonEconomo, classes))
	add(t, d.Add(measure.NetworkKey("Renumbered_Module", 10), modules))
	add(t, d.Add(measure.NetworkKey("Degree", 10), wave(nRegions, 2, 1)))
	add(t, d.Add(measure.NetworkKey("PC", 10), wave(nRegions, 0.1, 0.05)))
	add(t, d.Add(measure.CentroidX, wave(nRegions, -60, 10)))
	add(t, d.Add(measure.CentroidY, wave(nRegions, -90, 15)))
	add(t, d.Add(measure.CentroidZ, wave(nRegions, -30, 6)))

	add(t, d.Add(measure.CT("slope_age_at14"), wave(nRegions, 2.5, 0.08)))
	add(t, d.Add(measure.CT("slope_age"), wave(nRegions, -0.03, 0.002)))
	mt30 := measure.MT("MT", measure.Frac(30), "")
	add(t, d.Add(mt30.With("slope_age_at14"), wave(nRegions, 0.8, 0.02)))
	add(t, d.Add(mt30.With("slope_age"), wave(nRegions, 0.002, 0.0003)))
	for i, depth := range measure.DepthSeries() {
		add(t, d.Add(measure.MT("MT", depth, "mean"), wave(nRegions, 0.5+0.08*float64(i), 0.01)))
		add(t, d.Add(measure.MT("MT", depth, "slope_age"), wave(nRegions, 0.004-0.0005*float64(i), 0.0002)))
	}

	add(t, d.AddSubjects(measure.AgeScan, wave(nSubjects, 14, 1.5)))
	for _, q := range []measure.Key{
		{Quantity: "CT", Cohort: measure.Global},
		{Quantity: "MT", Depth: measure.Frac(30), Cohort: measure.Global},
	} {
		add(t, d.AddSubjects(q.With("mean"), wave(nSubjects, 1, 0.05)))
		add(t, d.AddSubjects(q.With("slope_age"), wave(nSubjects, -0.02, 0.003)))
	}

	for _, k := range []string{"mbp", "cux", "PLS1", "PLS2", "mbp_usable", "oligo_usable", "PLS1_usable", "PLS2_usable"} {
		add(t, d.AddSubset(measure.MustParseKey(k), geneRegions, wave(len(geneRegions), -0.05, 0.02)))
	}

	ring := func(n, step int) *network.Graph {
		var edges [][2]int
		for i := 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + step) % n})
		}
		edges = append(edges, [2]int{0, 6}, [2]int{0, 4}, [2]int{3, 9})
		g, err := network.FromEdges(n, edges)
		add(t, err)
		return g
	}
	samples := make(map[string][]float64)
	for _, m := range render.GlobalMeasures {
		samples[m] = []float64{0.4, 0.5, 0.6}
		samples[m+"_rand"] = []float64{0.2, 0.25, 0.3}
	}
	return &Data{
		Measures:       d,
		GeneRegions:    geneRegions,
		Networks:       map[int]*network.Graph{10: ring(nRegions, 1), 2: ring(nRegions, 5)},
		RichClub:       []float64{0.2, 0.3, 0.5, 0.9},
		RandomRichClub: [][]float64{{0.2, 0.3, 0.4, 0.6}, {0.2, 0.25, 0.45, 0.5}},
		GlobalMeasures: samples,
	}
}

func writeImage(t *testing.T, path string, w, h int, jpg bool) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if jpg {
		err = jpeg.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatal(err)
	}
}

// testOptions lays out a temporary manuscript tree. With images set
// it holds all surface renderings and schematics.
func testOptions(t *testing.T, images bool) Options {
	t.Helper()
	root := t.TempDir()
	o := Options{
		FiguresDir: filepath.Join(root, "paper", "figures"),
		ResultsDir: filepath.Join(root, "results"),
		DPI:        8,
	}
	for _, dir := range []string{o.FiguresDir, filepath.Join(o.ResultsDir, "PNGS")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if !images {
		return o
	}
	for _, kind := range []string{"cells", "methods"} {
		writeImage(t, o.schematic(kind), 300, 1200, true)
	}
	for _, prefix := range []string{
		"SlopeAge_at14_CT", "SlopeAge_FDRmask_CT",
		"SlopeAge_at14_MT_projfrac+030", "SlopeAge_FDRmask_MT_projfrac+030",
		"PLS1", "PLS2", "Degree_CT_covar_ones_all_COST_10",
	} {
		for _, p := range figure.SurfaceViews(o.png(prefix + "_lh_pial_classic_lateral.png")) {
			writeImage(t, p, 800, 700, false)
		}
	}
	return o
}

// captureLog redirects the figure log for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := figure.Logger
	figure.Logger = log.New(&buf, "", 0)
	t.Cleanup(func() { figure.Logger = old })
	return &buf
}

func checkPNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("%s: %v", path, err)
	}
}

var figures = []struct {
	name string
	fn   func(*Data, Options) error
}{
	{"Figure1.png", Figure1},
	{"Figure2.png", Figure2},
	{"Figure3.png", Figure3},
	{"Figure4.png", Figure4},
}

func TestFigures(t *testing.T) {
	d := testData(t)
	o := testOptions(t, true)
	for _, fig := range figures {
		t.Run(fig.name, func(t *testing.T) {
			logs := captureLog(t)
			if err := fig.fn(d, o); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			checkPNG(t, filepath.Join(o.FiguresDir, fig.name))
			if logs.Len() != 0 {
				t.Errorf("unexpected warnings:\n%s", logs)
			}
		})
	}
}

func TestFiguresWithoutImages(t *testing.T) {
	d := testData(t)
	o := testOptions(t, false)
	for _, fig := range figures {
		t.Run(fig.name, func(t *testing.T) {
			logs := captureLog(t)
			if err := fig.fn(d, o); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			checkPNG(t, filepath.Join(o.FiguresDir, fig.name))
			if !strings.Contains(logs.String(), "missing image") {
				t.Errorf("missing images not reported:\n%s", logs)
			}
		})
	}
}

func TestNetworkFigures(t *testing.T) {
	for _, fig := range []struct {
		name string
		fn   func(*Data, Options) error
	}{
		{"NetworkSummary.png", NetworkSummary},
		{"MT_Degree_Network.png", MTDegreeNetwork},
	} {
		t.Run(fig.name, func(t *testing.T) {
			d := testData(t)
			o := testOptions(t, false)
			logs := captureLog(t)
			if err := fig.fn(d, o); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			checkPNG(t, filepath.Join(o.FiguresDir, fig.name))
			if logs.Len() != 0 {
				t.Errorf("unexpected warnings:\n%s", logs)
			}
		})
	}

	d := testData(t)
	d.RichClub, d.GlobalMeasures = nil, nil
	o := testOptions(t, false)
	logs := captureLog(t)
	if err := NetworkSummary(d, o); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, filepath.Join(o.FiguresDir, "NetworkSummary.png"))
	for _, msg := range []string{"no rich club coefficients", "no global network measures"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("%q not reported:\n%s", msg, logs)
		}
	}
}

func TestMissingMeasure(t *testing.T) {
	d := testData(t)
	d.Networks = nil
	o := testOptions(t, true)
	logs := captureLog(t)
	if err := Figure4(d, o); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := strings.Count(logs.String(), "no network at cost"); n != 2 {
		t.Errorf("got %d blank network panels, want 2:\n%s", n, logs)
	}
}

func TestRichClubFigure(t *testing.T) {
	d := testData(t)
	o := testOptions(t, false)
	o.RichClub = true
	captureLog(t)
	if err := Figure4(d, o); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, filepath.Join(o.FiguresDir, "Figure4_RC.png"))
}

func TestCombineSurfaceViews(t *testing.T) {
	dir := t.TempDir()
	for _, hemi := range []string{"lh", "rh"} {
		for _, view := range []string{"lateral", "medial"} {
			writeImage(t, filepath.Join(dir, "CT_"+hemi+"_pial_mean_"+view+".png"), 800, 700, false)
		}
	}
	logs := captureLog(t)
	if err := CombineSurfaceViews(dir, "CT", "pial", "mean"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, filepath.Join(dir, "CT_pial_mean_combined.png"))
	if logs.Len() != 0 {
		t.Errorf("unexpected warnings:\n%s", logs)
	}
}

func TestStandalone(t *testing.T) {
	dir := t.TempDir()
	samples := make(map[string][]float64)
	for _, m := range []string{"a", "M", "E", "C", "L", "sigma"} {
		samples[m] = []float64{0.4, 0.5, 0.6}
		samples[m+"_rand"] = []float64{0.2, 0.25, 0.3}
	}
	path := filepath.Join(dir, "measures.png")
	if err := SaveNetworkMeasures(path, samples, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, path)

	path = filepath.Join(dir, "rc.png")
	rc := []float64{0.2, 0.3, 0.5, 0.9}
	random := [][]float64{{0.2, 0.3, 0.4, 0.6}, {0.2, 0.25, 0.45, 0.5}}
	if err := SaveRichClub(path, rc, random, true, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, path)

	d := testData(t)
	path = filepath.Join(dir, "laminar.png")
	if err := SaveLaminarScatter(path, d.Measures, measure.CT("slope_age_at14"), measure.CT("slope_age")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPNG(t, path)
	if err := SaveLaminarScatter(path, d.Measures, measure.CT("slope_age_at14"), measure.MustParseKey("mbp")); err == nil {
		t.Errorf("missing error for a measure of a region subset")
	}

	delete(samples, "a")
	if err := SaveNetworkMeasures(filepath.Join(dir, "bad.png"), samples, nil); err == nil {
		t.Errorf("missing error for incomplete samples")
	}
}
