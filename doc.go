// Package figure composes multi-panel manuscript figures on top of
// gonum.org/v1/plot.
//
// A Figure is a fixed-size canvas onto which Panels are placed at
// figure-fraction rectangles, usually taken from a GridSpec. Each panel
// owns its scales and a list of Geoms (see package geom) and is drawn in
// isolation: a panel whose input is missing is left blank and the failure
// is reported through Figure.Warnings.
//
// Scales
//
// The concept of a scale is borrowed from ggplot2. Every panel has an
// x- and a y-scale which are drawn as axes. Two further scales control
// how data values are turned into aesthetics:
//   - Color-Scale    maps a value through a ColorMapper
//   - Size-Scale     maps a value to a glyph radius
//
// Scales autoscale to the data of their geoms unless fixed. Autoscaling
// pads the data range by DefaultPad on both sides, see CalcMinMax.
//
// Colors
//
// Named colormaps follow the matplotlib names ("jet", "RdBu", "autumn",
// ...) and accept a "_r" suffix for the reversed map. A ColorMapper
// normalizes values into [0,1] before sampling a map, categorical data
// sample the map at the centers of n equal slices.
package figure
