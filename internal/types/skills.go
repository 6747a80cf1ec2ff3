package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SkillGroup is a ranked collection of skill labels. The category name lives
// in the parent SkillGroups mapping.
type SkillGroup struct {
	Rank    int      `yaml:"rank" json:"rank"`
	Entries []string `yaml:"entries" json:"entries"`
}

// SkillGroups maps category names to skill groups while preserving the order
// the categories appear in the source document. Plain Go maps randomize
// iteration order, which would scramble both rank-collision reporting and the
// rendered column order.
type SkillGroups struct {
	names  []string
	groups map[string]SkillGroup
}

// NewSkillGroups builds a SkillGroups from explicit (name, group) pairs in
// the given order. A repeated name overwrites the earlier group but keeps its
// original position.
func NewSkillGroups(pairs ...SkillPair) SkillGroups {
	s := SkillGroups{
		names:  make([]string, 0, len(pairs)),
		groups: make(map[string]SkillGroup, len(pairs)),
	}
	for _, pair := range pairs {
		if _, exists := s.groups[pair.Name]; !exists {
			s.names = append(s.names, pair.Name)
		}
		s.groups[pair.Name] = pair.Group
	}
	return s
}

// SkillPair is a category name with its skill group, used to build
// SkillGroups in memory.
type SkillPair struct {
	Name  string
	Group SkillGroup
}

// Names returns the category names in document order.
func (s *SkillGroups) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the skill group for a category name.
func (s *SkillGroups) Get(name string) (SkillGroup, bool) {
	group, ok := s.groups[name]
	return group, ok
}

// Len returns the number of categories.
func (s *SkillGroups) Len() int {
	return len(s.names)
}

// UnmarshalYAML decodes the skills mapping, recording key order as it walks
// the document.
func (s *SkillGroups) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("skills must be a mapping, got %s", nodeKind(value.Kind))
	}
	s.names = make([]string, 0, len(value.Content)/2)
	s.groups = make(map[string]SkillGroup, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var group SkillGroup
		if err := valueNode.Decode(&group); err != nil {
			return err
		}
		if _, exists := s.groups[keyNode.Value]; !exists {
			s.names = append(s.names, keyNode.Value)
		}
		s.groups[keyNode.Value] = group
	}
	return nil
}

// nodeKind names a yaml node kind for error messages.
func nodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
