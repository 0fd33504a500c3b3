package scales

import "github.com/jsphweid/chordbook/theory"

// Modes of the Ionian family.
const (
	IonianMode = iota
	DorianMode
	PhrygianMode
	LydianMode
	MixolydianMode
	AeolianMode
	LocrianMode
)

func IonianSteps() theory.Steps {
	return theory.Steps{theory.Whole, theory.Whole, theory.Semi, theory.Whole, theory.Whole, theory.Whole, theory.Semi}
}

func Ionian() ScaleObj {
	return ScaleObj{
		Steps:      IonianSteps(),
		FamilyName: "Ionian",
		Modes:      []string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"},
	}
}

func HarmonicMinorSteps() theory.Steps {
	return theory.Steps{theory.Whole, theory.Semi, theory.Whole, theory.Whole, theory.Semi, theory.MinorThird, theory.Semi}
}

func HarmonicMinor() ScaleObj {
	return ScaleObj{
		Steps:      HarmonicMinorSteps(),
		FamilyName: "Harmonic Minor",
		Modes: []string{"Harmonic Minor", "Locrian ♯6", "Ionian ♯5", "Dorian ♯4",
			"Phrygian Dominant", "Lydian ♯2", "Superlocrian"},
	}
}

func HarmonicMajorSteps() theory.Steps {
	return theory.Steps{theory.Whole, theory.Whole, theory.Semi, theory.Whole, theory.Semi, theory.MinorThird, theory.Semi}
}

func HarmonicMajor() ScaleObj {
	return ScaleObj{
		Steps:      HarmonicMajorSteps(),
		FamilyName: "Harmonic Major",
		Modes: []string{"Harmonic Major", "Dorian ♭5", "Super Phrygian", "Lydian Diminished",
			"Mixolydian ♭9", "Lydian Augmented ♯2", "Locrian ♭♭7"},
	}
}

// GreekDorianChromaticSteps is the chromatic genus of the old Greek Dorian:
// two tetrachords of semitone, semitone, minor third split by a whole tone.
func GreekDorianChromaticSteps() theory.Steps {
	return theory.Steps{theory.Semi, theory.Semi, theory.MinorThird, theory.Whole, theory.Semi, theory.Semi, theory.MinorThird}
}

// SatieSteps spells A B C D♯ E F♯ A.
func SatieSteps() theory.Steps {
	return theory.Steps{theory.Whole, theory.Semi, theory.MinorThird, theory.Semi, theory.Whole, theory.MinorThird}
}

func ChromaticSteps() theory.Steps {
	return theory.Steps{theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi, theory.Semi}
}
