// Package theory models notes, intervals, scales and chords as plain integer
// semitone data and derives chord names from interval sets.
package theory

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Note is a signed count of semitones from middle C (C4).
type Note int

type Notes = []Note

const (
	C4 Note = 0
	A4 Note = 9

	// A4Hz is the reference pitch used by ToPitch.
	A4Hz = 440.0

	// MIDI key of C4
	midiC4 = 60
)

var ErrBadNoteName = errors.New("theory: unrecognized note name")

var pitchClassNames = [12]string{"C", "C♯", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B"}

// PitchClass reduces n to [0, 12).
func PitchClass(n Note) Note {
	return ((n % Octave) + Octave) % Octave
}

// Octave number in scientific pitch notation, C4 being the octave of middle C.
func OctaveOf(n Note) int {
	return int((n-PitchClass(n))/Octave) + 4
}

func PitchClassName(n Note) string {
	return pitchClassNames[PitchClass(n)]
}

// NoteName renders n as letter, accidental and octave, e.g. "F♯3".
func NoteName(n Note) string {
	return fmt.Sprintf("%s%d", PitchClassName(n), OctaveOf(n))
}

// ToPitch converts n to an equal-tempered frequency in Hz.
func ToPitch(n Note) float64 {
	return A4Hz * math.Pow(2, float64(n-A4)/12.0)
}

func FromMIDIKey(key uint8) Note {
	return Note(key) - midiC4
}

// ToMIDIKey clamps to the 0..127 MIDI key range.
func ToMIDIKey(n Note) uint8 {
	k := int(n) + midiC4
	if k < 0 {
		return 0
	}
	if k > 127 {
		return 127
	}
	return uint8(k)
}

// ParseNamedNote parses a letter, any number of accidentals ('#', '♯', 'b',
// '♭') and an optional signed octave (default 4), e.g. "C4", "eb3", "F#-1".
func ParseNamedNote(s string) (Note, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadNoteName, s)
	}

	var n Note
	switch ss[0] {
	case 'c', 'C':
		n = 0
	case 'd', 'D':
		n = 2
	case 'e', 'E':
		n = 4
	case 'f', 'F':
		n = 5
	case 'g', 'G':
		n = 7
	case 'a', 'A':
		n = 9
	case 'b', 'B':
		n = 11
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadNoteName, s)
	}

	rest := ss[1:]
accidentals:
	for {
		switch {
		case strings.HasPrefix(rest, "#"):
			n++
			rest = rest[1:]
		case strings.HasPrefix(rest, "♯"):
			n++
			rest = rest[len("♯"):]
		case strings.HasPrefix(rest, "b"):
			n--
			rest = rest[1:]
		case strings.HasPrefix(rest, "♭"):
			n--
			rest = rest[len("♭"):]
		default:
			break accidentals
		}
	}

	octave := 4
	if rest != "" {
		if _, err := fmt.Sscanf(rest, "%d", &octave); err != nil || fmt.Sprint(octave) != rest {
			return 0, fmt.Errorf("%w: %q", ErrBadNoteName, s)
		}
	}
	return n + Note(octave-4)*Octave, nil
}
