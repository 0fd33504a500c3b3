package scales

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/chordbook/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(steps theory.Steps) theory.Note {
	var total theory.Note
	for _, s := range steps {
		total += s
	}
	return total
}

func TestStepPatternsSpanAnOctave(t *testing.T) {
	patterns := map[string]theory.Steps{
		"ionian":                 IonianSteps(),
		"harmonic minor":         HarmonicMinorSteps(),
		"harmonic major":         HarmonicMajorSteps(),
		"greek dorian chromatic": GreekDorianChromaticSteps(),
		"satie":                  SatieSteps(),
		"chromatic":              ChromaticSteps(),
	}
	for name, steps := range patterns {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, theory.Octave, sum(steps))
			assert.Equal(t, steps, steps.IntoScale(0).ToSteps())
		})
	}
}

func TestBuiltInFamilies(t *testing.T) {
	for _, s := range All() {
		t.Run(s.FamilyName, func(t *testing.T) {
			require.NoError(t, s.validate())
			assert.Len(t, s.Modes, len(s.Steps))
			assert.Equal(t, s.FamilyName, s.ModeName(0))
		})
	}
}

func TestModeName(t *testing.T) {
	assert := assert.New(t)
	ionian := Ionian()

	assert.Equal("Dorian", ionian.ModeName(DorianMode))
	assert.Equal("Dorian", ionian.ModeName(DorianMode+7))
	assert.Equal("Locrian", ionian.ModeName(-1))
	assert.Equal("Phrygian Dominant", HarmonicMinor().ModeName(4))

	partial := ScaleObj{Steps: theory.Steps{4, 3, 5}, FamilyName: "Triad", Modes: []string{"Root", ""}}
	assert.Equal("unnamed", partial.ModeName(1))
	assert.Equal("unnamed", partial.ModeName(2))
	assert.Equal("unnamed", ScaleObj{}.ModeName(0))
}

func TestMode(t *testing.T) {
	m := Ionian().Mode(AeolianMode)
	assert.Equal(t, "Aeolian, mode of Ionian", m.String())
	assert.Equal(t, theory.Steps{2, 1, 2, 2, 1, 2, 2}, m.Steps)
	assert.Equal(t, []string{"i", "ii°", "III", "iv", "v", "VI", "VII"}, theory.ScaleChordNamesRoman(m.Steps, 3, theory.Std))
}

func TestCloneSteps(t *testing.T) {
	s := Ionian()
	steps := s.CloneSteps()
	steps[0] = 5
	assert.Equal(t, theory.Whole, s.Steps[0])
}

func TestLookup(t *testing.T) {
	s, err := Lookup(All(), "harmonic MINOR")
	require.NoError(t, err)
	assert.Equal(t, "Harmonic Minor", s.FamilyName)

	_, err = Lookup(All(), "bebop")
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

const hirajoshi = `
- name: Hirajoshi
  steps: [2, 1, 4, 1, 4]
  modes: [Hirajoshi, Iwato, Kumoi, Hon Kumoi, Chinese]
- name: Whole Tone
  steps: [2, 2, 2, 2, 2, 2]
`

func TestLoad(t *testing.T) {
	catalog, err := Load(strings.NewReader(hirajoshi))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "Hirajoshi", catalog[0].FamilyName)
	assert.Equal(t, theory.Steps{2, 1, 4, 1, 4}, catalog[0].Steps)
	assert.Equal(t, "Kumoi", catalog[0].ModeName(2))
	assert.Equal(t, "unnamed", catalog[1].ModeName(2))
	assert.Equal(t, []string{"I+", "II+", "III+", "IV+", "V+", "VI+"}, theory.ScaleChordNamesRoman(catalog[1].Steps, 3, theory.Std))
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"EmptySteps", "- name: Nothing\n  steps: []\n", ErrEmptySteps},
		{"ModeCount", "- name: Short\n  steps: [6, 6]\n  modes: [One]\n", ErrModeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Load(strings.NewReader("name: [unclosed"))
	assert.Error(t, err)

	catalog, err := Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCatalog(t *testing.T) {
	catalog, err := Catalog("")
	require.NoError(t, err)
	assert.Equal(t, All(), catalog)

	path := filepath.Join(t.TempDir(), "scales.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hirajoshi), 0o644))
	catalog, err = Catalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, len(All())+2)

	s, err := Lookup(catalog, "whole tone")
	require.NoError(t, err)
	assert.Len(t, s.Steps, 6)

	_, err = Catalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
