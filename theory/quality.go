package theory

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Styling selects how much of the chord book a name may draw on.
type Styling int

const (
	// Std names chords from the common entries of the book.
	Std Styling = iota
	// Extended also allows the uncommon entries.
	Extended
	// SpelledOut lists every interval instead of naming the chord.
	SpelledOut
)

var ErrBadStyling = errors.New("theory: unknown styling")

var stylingNames = []string{"std", "extended", "spelled"}

func (s Styling) String() string {
	if s < Std || s > SpelledOut {
		return fmt.Sprintf("Styling(%d)", int(s))
	}
	return stylingNames[s]
}

func ParseStyling(s string) (Styling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "std", "standard":
		return Std, nil
	case "ext", "extended":
		return Extended, nil
	case "spelled", "spelledout", "spelled-out":
		return SpelledOut, nil
	}
	return Std, fmt.Errorf("%w: %q", ErrBadStyling, s)
}

const (
	exactScore = 10
	sus2Score  = 2
	sus4Score  = 4
)

// Quality names c on top of base. Minor qualities lowercase the base when
// lower is set and append "m" otherwise. Chords the book cannot name are
// spelled out as base[intervals].
func (c Chord) Quality(base string, lower bool, styling Styling) string {
	if styling == SpelledOut {
		return c.spelledOut(base)
	}

	minor := base + "m"
	if lower {
		// a Caser is stateful, so one per call
		minor = cases.Lower(language.Und).String(base)
	}
	cased := func(majorBase bool) string {
		if majorBase {
			return base
		}
		return minor
	}
	allowed := func(e BookEntry) bool {
		return !e.Extended || styling != Std
	}

	for _, e := range stdChordBook {
		if !c.SameIntervals(e.Pattern) || !allowed(e) {
			continue
		}
		return cased(e.MajorBase) + e.Suffix
	}

	// extended chords: longest book entry the chord starts with
	var name string
	baselen := 0
	for _, e := range stdChordBook {
		if !allowed(e) || len(c) <= len(e.Pattern) || baselen >= len(e.Pattern) {
			continue
		}
		if !slices.Equal(c[:len(e.Pattern)], e.Pattern) {
			continue
		}
		baselen = len(e.Pattern)
		name = cased(e.MajorBase) + e.Suffix
	}
	if baselen > 0 {
		return name + c.extensions(baselen)
	}

	// suspended chords, maybe extended
	for _, e := range stdChordBook {
		if !allowed(e) || len(c) < len(e.Pattern) || baselen >= len(e.Pattern) {
			continue
		}
		score := susScore(e.Pattern, c[:len(e.Pattern)])
		if score == 0 || score == exactScore {
			continue
		}
		baselen = len(e.Pattern)
		name = fmt.Sprintf("%s%ssus%d", base, e.Suffix, score)
	}
	if baselen > 0 {
		return name + c.extensions(baselen)
	}

	return c.spelledOut(base)
}

// susScore compares a book pattern position by position with the start of a
// chord and returns the lowest position score: 10 for the same interval, 2
// for a third replaced by a second, 4 for a third replaced by a fourth and 0
// for anything else.
func susScore(pattern, base []Note) int {
	res := exactScore
	for i, ba := range pattern {
		se := base[i]
		score := 0
		isThird := ba == MinorThird || ba == MajorThird
		switch {
		case se == ba:
			score = exactScore
		case se == MajorSecond && isThird:
			score = sus2Score
		case se == PerfectFourth && isThird:
			score = sus4Score
		}
		if score < res {
			res = score
		}
		if res == 0 {
			break
		}
	}
	return res
}

// extensions renders the intervals from index from on as "(♭9♯11)". Nothing
// is rendered when those intervals have no label.
func (c Chord) extensions(from int) string {
	if from >= len(c) {
		return ""
	}
	var sb strings.Builder
	for _, n := range c[from:] {
		sb.WriteString(ExtensionLabel(n))
	}
	if sb.Len() == 0 {
		return ""
	}
	return "(" + sb.String() + ")"
}

func (c Chord) spelledOut(base string) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('[')
	for _, n := range c {
		sb.WriteString(ExtensionLabel(n))
	}
	sb.WriteByte(']')
	return sb.String()
}

// AsString names c with "X" standing in for the root.
func (c Chord) AsString(styling Styling) string {
	return c.Quality("X", true, styling)
}

func (c Chord) String() string {
	return c.AsString(Std)
}
