// Package charts derives series-oriented views from a resume's chart data:
// the key union across points, per-key numeric series, and display-name
// resolution. All views are computed on demand and leave the model untouched.
package charts

import "github.com/jonathan/resume-renderer/internal/types"

// AxisKeys returns the series keys recorded at a single axis position, in
// document order.
func AxisKeys(entry types.ChartAxisEntry) []string {
	return entry.Data.Keys()
}

// AxisDisplayNames maps each series key at a single axis position to its
// display name, falling back to the key itself when no display is set.
func AxisDisplayNames(entry types.ChartAxisEntry) map[string]string {
	names := make(map[string]string, entry.Data.Len())
	for _, key := range entry.Data.Keys() {
		point, _ := entry.Data.Get(key)
		if point.Display != "" {
			names[key] = point.Display
		} else {
			names[key] = key
		}
	}
	return names
}

// Keys returns the union of series keys across all points of a chart, in
// first-seen order. A key already seen at an earlier point is not re-added.
func Keys(chart types.ChartEntry) []string {
	keys := make([]string, 0)
	seen := make(map[string]bool)
	for _, point := range chart.Points {
		for _, key := range AxisKeys(point) {
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// Series returns one numeric sequence per key from Keys, with an element for
// every point: the point's recorded value, or zero when the point has no
// entry for the key. Every sequence has length len(chart.Points).
func Series(chart types.ChartEntry) map[string][]float64 {
	keys := Keys(chart)
	series := make(map[string][]float64, len(keys))
	for _, key := range keys {
		series[key] = make([]float64, 0, len(chart.Points))
	}
	for _, point := range chart.Points {
		for _, key := range keys {
			value := 0.0
			if dataPoint, ok := point.Data.Get(key); ok {
				value = dataPoint.Value
			}
			series[key] = append(series[key], value)
		}
	}
	return series
}

// DisplayNames maps every key from Keys to its display name: the first
// non-empty display encountered for the key in point order, or the key
// itself when no point supplies one.
func DisplayNames(chart types.ChartEntry) map[string]string {
	names := make(map[string]string)
	for _, point := range chart.Points {
		for _, key := range AxisKeys(point) {
			if _, resolved := names[key]; resolved {
				continue
			}
			if dataPoint, _ := point.Data.Get(key); dataPoint.Display != "" {
				names[key] = dataPoint.Display
			}
		}
	}
	for _, key := range Keys(chart) {
		if _, resolved := names[key]; !resolved {
			names[key] = key
		}
	}
	return names
}
