// Package types defines the validated resume model shared by the rendering
// and conversion layers. A Resume is decoded from a YAML or JSON document,
// validated once via Validate, and never mutated afterward; derived views
// (skills by rank, chart series) are computed on demand by their packages.
package types

// Resume is the aggregate root describing one candidate.
type Resume struct {
	Contact    Contact           `yaml:"contact" json:"contact"`
	Summary    string            `yaml:"summary" json:"summary" validate:"required"`
	Education  []EducationEntry  `yaml:"education" json:"education" validate:"dive"`
	Experience []ExperienceEntry `yaml:"experience" json:"experience" validate:"dive"`
	Skills     SkillGroups       `yaml:"skills" json:"skills"`
	Charts     []ChartEntry      `yaml:"charts" json:"charts,omitempty" validate:"omitempty,dive"`
}
