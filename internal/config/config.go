package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/types"
	"github.com/Mahdi-s/games-of-life/internal/vitality"
)

// RuleFile is the on-disk YAML shape of a rule spec: struct tags plus
// a single yaml.Unmarshal call, then a conversion pass into the
// package's runtime type.
type RuleFile struct {
	Birth        []int         `yaml:"birth"`
	Survive      []int         `yaml:"survive"`
	NumStates    int           `yaml:"num_states"`
	Neighborhood string        `yaml:"neighborhood"`
	Boundary     string        `yaml:"boundary"`
	Vitality     []AnchorFile  `yaml:"vitality,omitempty"`
}

// AnchorFile is one vitality curve control point in YAML.
type AnchorFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadRuleFile reads and parses a YAML rule file from path, then
// builds and validates the runtime Rule it describes.
func LoadRuleFile(path string) (*rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading rule file: %w", err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("config: parsing rule file: %w", err)
	}

	return rf.Build()
}

// Build converts the YAML shape into a validated runtime Rule.
func (rf RuleFile) Build() (*rule.Rule, error) {
	anchors := make([]vitality.Anchor, 0, len(rf.Vitality))
	for _, a := range rf.Vitality {
		anchors = append(anchors, vitality.Anchor{X: a.X, Y: a.Y})
	}

	numStates := rf.NumStates
	if numStates == 0 {
		numStates = 2
	}

	return rule.New(
		rule.MaskFromCounts(rf.Birth...),
		rule.MaskFromCounts(rf.Survive...),
		numStates,
		types.Neighborhood(rf.Neighborhood),
		types.Boundary(rf.Boundary),
		anchors,
	)
}

// SaveRuleFile serializes r back to YAML at path, e.g. so an operator
// can dump a rule built from CLI flags and hand-tune it afterward.
func SaveRuleFile(path string, r *rule.Rule) error {
	rf := RuleFile{
		NumStates:    r.NumStates,
		Neighborhood: string(r.Neighborhood),
		Boundary:     string(r.Boundary),
	}
	for k := 0; k < 32; k++ {
		if r.BirthMask.Set(k) {
			rf.Birth = append(rf.Birth, k)
		}
		if r.SurviveMask.Set(k) {
			rf.Survive = append(rf.Survive, k)
		}
	}
	for _, a := range r.Vitality {
		rf.Vitality = append(rf.Vitality, AnchorFile{X: a.X, Y: a.Y})
	}

	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("config: serializing rule file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
