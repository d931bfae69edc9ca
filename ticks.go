package figure

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// niceSteps are the mantissas a tick step may take.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// NBins places ticks at "nice" values so that [min, max] is split into
// at most N intervals. It is the counterpart of matplotlib's
// locator_params(nbins=N).
type NBins struct {
	N int
}

// Ticks implements plot.Ticker.
func (t NBins) Ticks(min, max float64) []plot.Tick {
	if min > max {
		min, max = max, min
	}
	step := niceStep(max-min, t.N)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}
	prec := stepPrecision(step)
	eps := step * 1e-9

	var ticks []plot.Tick
	for k := math.Ceil((min - eps) / step); k*step <= max+eps; k++ {
		v := k * step
		if math.Abs(v) < eps {
			v = 0
		}
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', prec, 64),
		})
	}
	return ticks
}

// niceStep returns the smallest nice step which splits span into at
// most n intervals.
func niceStep(span float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	if span <= 0 {
		return 0
	}
	raw := span / float64(n)
	scale := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range niceSteps {
		if s := m * scale; s >= raw*(1-1e-9) {
			return s
		}
	}
	return 10 * scale
}

// stepPrecision returns the number of decimals needed to print
// multiples of step.
func stepPrecision(step float64) int {
	e := math.Floor(math.Log10(step) + 1e-9)
	prec := int(-e)
	if m := step / math.Pow(10, e); math.Abs(m-2.5) < 1e-6 {
		prec++
	}
	if prec < 0 {
		prec = 0
	}
	return prec
}

// An OffsetTicker labels its ticks relative to a common factor which
// is printed once at the end of the axis.
type OffsetTicker interface {
	plot.Ticker
	Offset(min, max float64) string
}

// SciTicks switches the labels of Ticker to scientific notation when the
// order of magnitude of the axis is <= Lo or >= Hi, like matplotlib's
// ticklabel_format(style='sci', scilimits=(Lo, Hi)).
type SciTicks struct {
	Ticker plot.Ticker
	Lo, Hi int
}

// Ticks implements plot.Ticker.
func (t SciTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	oom, ok := t.exponent(min, max)
	if !ok {
		return ticks
	}
	f := math.Pow(10, float64(oom))

	step := math.Abs(max-min) / f
	if len(ticks) > 1 {
		step = math.Abs(ticks[1].Value-ticks[0].Value) / f
	}
	prec := 0
	if step > 0 {
		prec = stepPrecision(step)
	}
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value/f, 'f', prec, 64)
	}
	return ticks
}

// Offset returns the factor ("1e-3") all labels are to be multiplied
// with, or "" if labels are plain.
func (t SciTicks) Offset(min, max float64) string {
	oom, ok := t.exponent(min, max)
	if !ok {
		return ""
	}
	return fmt.Sprintf("1e%d", oom)
}

func (t SciTicks) exponent(min, max float64) (int, bool) {
	m := math.Max(math.Abs(min), math.Abs(max))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, false
	}
	oom := int(math.Floor(math.Log10(m)))
	if oom <= t.Lo || oom >= t.Hi {
		return oom, true
	}
	return 0, false
}

// Sci wraps an NBins ticker with the (-2, 2) scientific limits used on
// most manuscript axes.
func Sci(nbins int) SciTicks {
	return SciTicks{Ticker: NBins{N: nbins}, Lo: -2, Hi: 2}
}

// LabelTicks returns fixed ticks at 0, 1, ... len(labels)-1.
func LabelTicks(labels []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// NoLabels keeps the tick marks of Ticker but drops their labels, for
// panels sharing an axis with their left neighbor.
type NoLabels struct {
	plot.Ticker
}

// Ticks implements plot.Ticker.
func (t NoLabels) Ticks(min, max float64) []plot.Tick {
	ticks := append([]plot.Tick(nil), t.Ticker.Ticks(min, max)...)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
