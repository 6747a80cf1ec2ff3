package types

import "gopkg.in/yaml.v3"

// EducationEntry is a single degree or course of study. Minor is a pointer
// because the source document must carry the key even when its value is null.
type EducationEntry struct {
	Degree      string  `yaml:"degree" json:"degree" validate:"required"`
	End         *string `yaml:"end" json:"end,omitempty"`
	GPA         float64 `yaml:"gpa" json:"gpa"`
	Institution string  `yaml:"institution" json:"institution" validate:"required"`
	Location    string  `yaml:"location" json:"location" validate:"required"`
	Minor       *string `yaml:"minor" json:"minor"`
	Active      bool    `yaml:"active" json:"active"`
	Specialty   *string `yaml:"specialty" json:"specialty,omitempty"`
}

// UnmarshalYAML decodes an education entry with Active defaulting to true
// when the key is absent from the document.
func (e *EducationEntry) UnmarshalYAML(value *yaml.Node) error {
	type plain EducationEntry
	out := plain{Active: true}
	if err := value.Decode(&out); err != nil {
		return err
	}
	*e = EducationEntry(out)
	return nil
}
