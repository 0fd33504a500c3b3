package theory

import "sort"

// RootedChord is a chord sounding on an absolute root.
type RootedChord struct {
	Root  Note
	Chord Chord
}

func NewRootedChord(root Note, chord Chord) RootedChord {
	return RootedChord{Root: root, Chord: chord}
}

func RootedChordFromIntervals(root Note, intervals ...Note) RootedChord {
	return RootedChord{Root: root, Chord: NewChord(intervals...)}
}

// RootedChordFromScale roots the chord on the first note of scale. An empty
// scale gives the zero RootedChord.
func RootedChordFromScale(scale Scale) RootedChord {
	switch len(scale) {
	case 0:
		return RootedChord{Chord: Chord{}}
	case 1:
		return RootedChord{Root: scale[0], Chord: Chord{}}
	}
	return RootedChord{Root: scale[0], Chord: scale.ToChord()}
}

// ToScale lists the root followed by every chord tone.
func (rc RootedChord) ToScale() Scale {
	return rc.Chord.ToScale(rc.Root)
}

func (rc RootedChord) Equal(o RootedChord) bool {
	return rc.Root == o.Root && rc.Chord.Equal(o.Chord)
}

func (rc RootedChord) Key() string {
	return NoteName(rc.Root) + ":" + rc.Chord.Key()
}

// Normalized reduces the root to its pitch class and normalizes the chord.
func (rc RootedChord) Normalized() RootedChord {
	return RootedChord{Root: PitchClass(rc.Root), Chord: rc.Chord.Normalized()}
}

// ToInversion moves the lowest note up by octaves until it sits above the
// highest one.
func (rc RootedChord) ToInversion() RootedChord {
	scale := rc.ToScale()
	if len(scale) == 1 {
		return RootedChord{Root: scale[0], Chord: Chord{}}
	}
	bottom, top := scale[0], scale[len(scale)-1]
	for bottom < top {
		bottom += Octave
	}
	inverted := append(Scale{}, scale[1:]...)
	return RootedChordFromScale(append(inverted, bottom))
}

// AllInversions inverts len(chord)+1 times, ending on the original chord
// transposed by octaves.
func (rc RootedChord) AllInversions() []RootedChord {
	res := make([]RootedChord, 0, len(rc.Chord)+1)
	inv := rc
	for i := 0; i <= len(rc.Chord); i++ {
		inv = inv.ToInversion()
		res = append(res, inv)
	}
	return res
}

// ToSubseqChords lists every chord formed by two or more of the chord's
// notes, each rooted on its lowest note, ordered by size, root and interval.
func (rc RootedChord) ToSubseqChords() []RootedChord {
	var res []RootedChord
	for _, sub := range subsets(rc.ToScale()) {
		res = append(res, RootedChordFromScale(sub))
	}
	sortRooted(res)
	return res
}

func sortRooted(chords []RootedChord) {
	sort.Slice(chords, func(i, j int) bool {
		a, b := chords[i], chords[j]
		if len(a.Chord) != len(b.Chord) {
			return len(a.Chord) < len(b.Chord)
		}
		if a.Root != b.Root {
			return a.Root < b.Root
		}
		return a.Chord.Compare(b.Chord) < 0
	})
}

// ToChordtoneWholetoneScale interleaves the first four chord tones with the
// tone four positions above each one, dropped an octave, or a whole step
// above when the chord has no such tone. Chords of fewer than four notes give
// an empty scale.
func (rc RootedChord) ToChordtoneWholetoneScale() Scale {
	scale := rc.ToScale()
	if len(scale) < 4 {
		return Scale{}
	}
	res := make(Scale, 0, 8)
	for i, n := range scale[:4] {
		res = append(res, n)
		between := n + MajorSecond
		if len(scale) > i+4 {
			between = scale[i+4] - Octave
		}
		res = append(res, between)
	}
	return res
}

// AsString names the chord with the pitch class of its root as base.
func (rc RootedChord) AsString(lower bool, styling Styling) string {
	return rc.Chord.Quality(PitchClassName(rc.Root), lower, styling)
}

func (rc RootedChord) String() string {
	return rc.AsString(true, Std)
}
