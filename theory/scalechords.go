package theory

import "strings"

// stack picks size notes from the walk over steps, starting at degree and
// skipping every other note.
func stack(steps Steps, root Note, degree, size int) Scale {
	if size <= 0 {
		return Scale{}
	}
	walk := steps.Walk(root, degree+2*(size-1)+1)
	res := make(Scale, 0, size)
	for i := degree; i < len(walk); i += 2 {
		res = append(res, walk[i])
	}
	return res
}

// ScaleChords stacks size thirds on every degree of the scale.
func ScaleChords(steps Steps, size int) []Chord {
	chords := make([]Chord, 0, len(steps))
	for i := range steps {
		chords = append(chords, stack(steps, 0, i, size).ToChord())
	}
	return chords
}

func RootedScaleChords(steps Steps, tonic Note, size int) []RootedChord {
	chords := make([]RootedChord, 0, len(steps))
	for i := range steps {
		chords = append(chords, RootedChordFromScale(stack(steps, tonic, i, size)))
	}
	return chords
}

// ScaleChordNamesRoman names the chords of ScaleChords with Roman numeral
// degrees, lowercase for minor.
func ScaleChordNamesRoman(steps Steps, size int, styling Styling) []string {
	chords := ScaleChords(steps, size)
	res := make([]string, 0, len(chords))
	for i, c := range chords {
		res = append(res, c.Quality(ToRomanNum(i+1), true, styling))
	}
	return res
}

// ScaleChordNames names the chords of RootedScaleChords by root pitch class.
func ScaleChordNames(steps Steps, tonic Note, size int, styling Styling) []string {
	chords := RootedScaleChords(steps, tonic, size)
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		res = append(res, c.AsString(true, styling))
	}
	return res
}

// ScaleSubseqChords collects the sub-chords of every rotation of scale,
// normalized and without duplicates. Scales of fewer than three notes have
// none.
func ScaleSubseqChords(scale Scale) []RootedChord {
	if len(scale) < 3 {
		return nil
	}
	steps := scale.ToSteps()
	seen := make(map[string]bool)
	var res []RootedChord
	for i := range scale {
		rotation := steps.Walk(scale[0], i+len(scale))[i:]
		for _, sub := range RootedChordFromScale(rotation).ToSubseqChords() {
			sub = sub.Normalized()
			if seen[sub.Key()] {
				continue
			}
			seen[sub.Key()] = true
			res = append(res, sub)
		}
	}
	sortRooted(res)
	return res
}

// StepsSubseqChords groups ScaleSubseqChords of the scale built on steps by
// the degree their root falls on.
func StepsSubseqChords(steps Steps) [][]Chord {
	scale := steps.IntoScale(0)
	scale = scale[:len(scale)-1]
	degreeOf := make(map[Note]int, len(scale))
	for i, n := range scale {
		degreeOf[PitchClass(n)] = i
	}
	cells := make([][]Chord, len(scale))
	for _, s := range ScaleSubseqChords(scale) {
		i := degreeOf[PitchClass(s.Root)]
		cells[i] = append(cells[i], s.Chord)
	}
	return cells
}

var romanNumerals = []struct {
	value int
	sym   string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRomanNum renders n in Roman numerals, "" when n < 1.
func ToRomanNum(n int) string {
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.sym)
			n -= r.value
		}
	}
	return sb.String()
}
