package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChartDataPoint is one measured value in a chart series. An empty Display
// means the series key itself is the display name.
type ChartDataPoint struct {
	Value   float64 `yaml:"value" json:"value"`
	Display string  `yaml:"display" json:"display,omitempty"`
}

// ScalarValue captures a YAML scalar in its literal text form. Chart axis
// labels may be written as bare integers or as strings; both decode to the
// text as it appears in the source.
type ScalarValue string

// UnmarshalYAML decodes any scalar node into its string form.
func (s *ScalarValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar, got %s", nodeKind(value.Kind))
	}
	*s = ScalarValue(value.Value)
	return nil
}

// AxisData maps series keys to data points for a single axis entry,
// preserving the key order of the source document. Order matters: the chart
// key union is defined by first appearance across points.
type AxisData struct {
	keys   []string
	points map[string]ChartDataPoint
}

// NewAxisData builds an AxisData from explicit (key, point) pairs in the
// given order.
func NewAxisData(pairs ...AxisPair) AxisData {
	d := AxisData{
		keys:   make([]string, 0, len(pairs)),
		points: make(map[string]ChartDataPoint, len(pairs)),
	}
	for _, pair := range pairs {
		if _, exists := d.points[pair.Key]; !exists {
			d.keys = append(d.keys, pair.Key)
		}
		d.points[pair.Key] = pair.Point
	}
	return d
}

// AxisPair is a series key with its data point, used to build AxisData in
// memory.
type AxisPair struct {
	Key   string
	Point ChartDataPoint
}

// Keys returns the series keys in document order.
func (d *AxisData) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns the data point for a series key.
func (d *AxisData) Get(key string) (ChartDataPoint, bool) {
	point, ok := d.points[key]
	return point, ok
}

// Len returns the number of series keys in this axis entry.
func (d *AxisData) Len() int {
	return len(d.keys)
}

// UnmarshalYAML decodes the data mapping, recording key order as it walks
// the document.
func (d *AxisData) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("chart data must be a mapping, got %s", nodeKind(value.Kind))
	}
	d.keys = make([]string, 0, len(value.Content)/2)
	d.points = make(map[string]ChartDataPoint, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var point ChartDataPoint
		if err := valueNode.Decode(&point); err != nil {
			return err
		}
		if _, exists := d.points[keyNode.Value]; !exists {
			d.keys = append(d.keys, keyNode.Value)
		}
		d.points[keyNode.Value] = point
	}
	return nil
}

// ChartAxisEntry is one position on a chart's x-axis: the axis label plus the
// data points recorded at that position.
type ChartAxisEntry struct {
	YValue ScalarValue `yaml:"yValue" json:"yValue"`
	Data   AxisData    `yaml:"data" json:"data"`
}

// ChartEntry is a titled multi-series dataset, such as skill proficiency
// over time.
type ChartEntry struct {
	Title  string           `yaml:"title" json:"title" validate:"required"`
	Points []ChartAxisEntry `yaml:"points" json:"points" validate:"dive"`
}
