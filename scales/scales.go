// Package scales is a catalog of named scale families and their modes.
package scales

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordbook/theory"
)

var (
	// ErrEmptySteps indicates a scale family without any step.
	ErrEmptySteps = errors.New("scales: a scale needs at least one step")
	// ErrModeCount indicates mode names that do not match the step count.
	ErrModeCount = errors.New("scales: need one mode name per step")
	// ErrUnknownFamily indicates a lookup for a family not in the catalog.
	ErrUnknownFamily = errors.New("scales: unknown scale family")
)

const unnamed = "unnamed"

// ScaleObj binds a family name and the names of its modes to a step pattern.
type ScaleObj struct {
	Steps      theory.Steps `yaml:"steps"`
	FamilyName string       `yaml:"name"`
	Modes      []string     `yaml:"modes"`
}

// ModeObj is one mode of a scale family.
type ModeObj struct {
	Steps      theory.Steps
	FamilyName string
	ModeName   string
}

func (m ModeObj) String() string {
	return fmt.Sprintf("%s, mode of %s", m.ModeName, m.FamilyName)
}

func (s ScaleObj) CloneSteps() theory.Steps {
	return append(theory.Steps{}, s.Steps...)
}

// ModeName wraps mode around the number of steps. Modes without a name are
// "unnamed".
func (s ScaleObj) ModeName(mode int) string {
	if len(s.Steps) == 0 {
		return unnamed
	}
	m := ((mode % len(s.Steps)) + len(s.Steps)) % len(s.Steps)
	if m >= len(s.Modes) || s.Modes[m] == "" {
		return unnamed
	}
	return s.Modes[m]
}

func (s ScaleObj) Mode(mode int) ModeObj {
	return ModeObj{
		Steps:      theory.ModeOfScale(s.Steps, mode),
		FamilyName: s.FamilyName,
		ModeName:   s.ModeName(mode),
	}
}

func (s ScaleObj) validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptySteps, s.FamilyName)
	}
	if len(s.Modes) != 0 && len(s.Modes) != len(s.Steps) {
		return fmt.Errorf("%w: %q has %d steps and %d modes", ErrModeCount, s.FamilyName, len(s.Steps), len(s.Modes))
	}
	return nil
}

// All returns the built-in scale families.
func All() []ScaleObj {
	return []ScaleObj{Ionian(), HarmonicMinor(), HarmonicMajor()}
}

// Lookup finds a family by name, ignoring case.
func Lookup(catalog []ScaleObj, name string) (ScaleObj, error) {
	for _, s := range catalog {
		if strings.EqualFold(s.FamilyName, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return ScaleObj{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
