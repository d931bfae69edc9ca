package measure

// axisLabels are the axis titles of the measures.
var axisLabels = map[string]string{
	"Degree":                             "Degree",
	"von_economo":                        "Cortical Lamination Pattern",
	"PC":                                 "Participation Coefficient",
	"AverageDist":                        "Average Distance (mm)",
	"Clustering":                         "Clustering",
	"Closeness":                          "Closeness",
	"InterhemProp":                       "Interhemispheric Connections",
	"CT_all_slope_age_at14":              "CT at 14 yrs (mm)",
	"CT_all_slope_age":                   "ΔCT (mm/year)",
	"MT_projfrac+030_all_slope_age_at14": "MT at 14 yrs (AU)",
	"MT_projfrac+030_all_slope_age":      "ΔMT (AU/year)",
	"age_scan":                           "Age (years)",
	"CT_global_mean":                     "Global CT (mm)",
	"MT_projfrac+030_global_mean":        "Global MT (AU)",
	"MT_all_mean":                        "Mean MT across regions (AU)",
	"MT_all_slope_ct":                    "ΔMT with CT (AU/mm)",
	"MT_all_slope_age":                   "ΔMT with age (AU/year)",
	"MT_all_slope_age_at14":              "MT at 14 yrs (AU)",
	"mbp":                                "Myelin Basic Protein",
	"cux":                                "CUX",
	"oligo":                              "Oligodendrocyte Expr",
	"mbp_usable":                         "Myelin Basic Protein",
	"cux_usable":                         "CUX",
	"oligo_usable":                       "Oligodendrocyte Expr",
	"x":                                  "X coordinate",
	"y":                                  "Y coordinate",
	"z":                                  "Z coordinate",
	"PLS1":                               "PLS 1 scores",
	"PLS2":                               "PLS 2 scores",
	"PLS1_usable":                        "PLS 1 scores",
	"PLS2_usable":                        "PLS 2 scores",
	"MT_all_slope_age_at14_vs_mbp":       "MT at 14 years\nvs MBP",
	"MT_all_slope_age_vs_mbp":            "ΔMT with age\nvsMBP",
}

// AxisLabel returns the human readable axis title of k. Network measures
// are labeled by their quantity. Unknown keys are labeled by their name.
func AxisLabel(k Key) string {
	if l, ok := lookupLabel(k); ok {
		return l
	}
	return k.String()
}

// HasAxisLabel reports whether k has a dedicated axis title.
func HasAxisLabel(k Key) bool {
	_, ok := lookupLabel(k)
	return ok
}

func lookupLabel(k Key) (string, bool) {
	if l, ok := axisLabels[k.String()]; ok {
		return l, true
	}
	if k.Depth.Kind == NoDepth && k.Cohort == "" {
		l, ok := axisLabels[k.Quantity]
		return l, ok
	}
	return "", false
}
