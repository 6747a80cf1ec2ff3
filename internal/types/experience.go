package types

// ExperienceEntry is a single position held at a company or other
// institution. A nil End means the position is ongoing.
type ExperienceEntry struct {
	Institution string   `yaml:"institution" json:"institution" validate:"required"`
	Focus       *string  `yaml:"focus" json:"focus,omitempty"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Start       string   `yaml:"start" json:"start" validate:"required"`
	End         *string  `yaml:"end" json:"end,omitempty"`
	Location    string   `yaml:"location" json:"location" validate:"required"`
	Summary     string   `yaml:"summary" json:"summary" validate:"required"`
	Highlights  []string `yaml:"highlights" json:"highlights,omitempty"`
}
