package theory

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Chord is a non-decreasing list of intervals above an implicit root.
type Chord []Note

func NewChord(intervals ...Note) Chord {
	return append(Chord{}, intervals...)
}

func (c Chord) Len() int { return len(c) }

func (c Chord) Equal(o Chord) bool {
	return slices.Equal(c, o)
}

// Compare orders chords lexicographically by interval.
func (c Chord) Compare(o Chord) int {
	return slices.Compare(c, o)
}

// Key identifies a chord by its intervals, e.g. "4-7".
func (c Chord) Key() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(int(n))
	}
	return strings.Join(parts, "-")
}

// SameIntervals reports whether c consists of exactly blueprint.
func (c Chord) SameIntervals(blueprint []Note) bool {
	return slices.Equal(c, blueprint)
}

// HasIntervals reports whether every interval of blueprint is present in c.
func (c Chord) HasIntervals(blueprint []Note) bool {
	for _, n := range blueprint {
		if !slices.Contains(c, n) {
			return false
		}
	}
	return true
}

// Normalized folds intervals of two octaves or more down an octave at a
// time, completes a bare twelfth with its fifth and drops octave and
// twelfth markers. The result lies in [1, 24), sorted and free of duplicates.
func (c Chord) Normalized() Chord {
	folded := make(Chord, 0, len(c)+1)
	for _, n := range c {
		for n >= 2*Octave {
			n -= Octave
		}
		folded = append(folded, n)
	}
	if slices.Contains(folded, Twelfth) && !slices.Contains(folded, PerfectFifth) {
		folded = append(folded, PerfectFifth)
	}

	res := make(Chord, 0, len(folded))
	for _, n := range folded {
		if n <= Unison || n == Octave || n == Twelfth {
			continue
		}
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return slices.Compact(res)
}

func (c Chord) ToScale(root Note) Scale {
	scale := make(Scale, 0, len(c)+1)
	scale = append(scale, root)
	for _, n := range c {
		scale = append(scale, root+n)
	}
	return scale
}

// ToSubseqChords lists every distinct chord formed by two or more notes of c,
// root included, ordered by size and then by interval.
func (c Chord) ToSubseqChords() []Chord {
	scale := c.ToScale(0)
	seen := make(map[string]bool)
	var res []Chord
	for _, sub := range subsets(scale) {
		chord := sub.ToChord()
		if seen[chord.Key()] {
			continue
		}
		seen[chord.Key()] = true
		res = append(res, chord)
	}
	sort.Slice(res, func(i, j int) bool {
		if len(res[i]) != len(res[j]) {
			return len(res[i]) < len(res[j])
		}
		return res[i].Compare(res[j]) < 0
	})
	return res
}

// subsets returns, in bitmask order, every selection of at least two notes
// of scale, preserving note order.
func subsets(scale Scale) []Scale {
	var res []Scale
	for mask := 0; mask < 1<<len(scale); mask++ {
		var sub Scale
		for j, n := range scale {
			if mask&(1<<j) != 0 {
				sub = append(sub, n)
			}
		}
		if len(sub) < 2 {
			continue
		}
		res = append(res, sub)
	}
	return res
}
