package theory

import "strings"

const (
	Semi  Note = 1
	Whole Note = 2
)

const (
	Unison        Note = 0
	MinorSecond   Note = 1
	MajorSecond   Note = 2
	MinorThird    Note = 3
	MajorThird    Note = 4
	PerfectFourth Note = 5
	Tritone       Note = 6
	PerfectFifth  Note = 7
	MinorSixth    Note = 8
	MajorSixth    Note = 9
	MinorSeventh  Note = 10
	MajorSeventh  Note = 11
	Octave        Note = 12

	FlatNinth       Note = 13
	Ninth           Note = 14
	SharpNinth      Note = 15
	FlatEleventh    Note = 16
	Eleventh        Note = 17
	SharpEleventh   Note = 18
	Twelfth         Note = 19
	FlatThirteenth  Note = 20
	Thirteenth      Note = 21
	SharpThirteenth Note = 22
)

// Enharmonic spellings.
const (
	DiminishedSecond  Note = 0
	AugmentedUnison   Note = 1
	DiminishedThird   Note = 2
	AugmentedSecond   Note = 3
	DiminishedFourth  Note = 4
	AugmentedThird    Note = 5
	DiminishedFifth   Note = 6
	AugmentedFourth   Note = 6
	DiminishedSixth   Note = 7
	AugmentedFifth    Note = 8
	DiminishedSeventh Note = 9
	AugmentedSixth    Note = 10
	DiminishedOctave  Note = 11
	AugmentedSeventh  Note = 12
)

var extensionLabels = map[Note]string{
	0:  "R",
	1:  "♭2",
	2:  "♮2",
	3:  "♭3",
	4:  "♮3",
	5:  "♮4",
	6:  "♭5",
	7:  "♮5",
	8:  "♭6",
	9:  "♮6",
	10: "♭7",
	11: "♮7",
	13: "♭9",
	14: "♮9",
	15: "♯9",
	16: "♭11",
	17: "♮11",
	18: "♯11",
	20: "♭13",
	21: "♮13",
	22: "♯13",
}

// ExtensionLabel returns the chord-symbol degree of an interval above the
// root. Octaves, twelfths and anything outside the table render as "".
func ExtensionLabel(interval Note) string {
	return extensionLabels[interval]
}

var degrees = [12]string{"I", "bII", "II", "bIII", "III", "IV", "bV", "V", "bVI", "VI", "bVII", "VII"}

const outOfRange = "[outofrange]"

// ToDegree names an interval of 0..11 semitones as a scale degree.
func ToDegree(interval Note) string {
	if interval < 0 || interval >= Octave {
		return outOfRange
	}
	return degrees[interval]
}

// AccidentalString renders a signed alteration as repeated flats or sharps.
func AccidentalString(offset Note) string {
	switch {
	case offset < 0:
		return strings.Repeat("♭", int(-offset))
	case offset > 0:
		return strings.Repeat("♯", int(offset))
	default:
		return "♮"
	}
}
