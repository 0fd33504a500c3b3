package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordEquality(t *testing.T) {
	assert := assert.New(t)
	c := NewChord(MajorTriad...)

	assert.True(c.Equal(Chord{4, 7}))
	assert.False(c.Equal(Chord{4, 7, 11}))
	assert.Equal(0, c.Compare(Chord{4, 7}))
	assert.Equal(-1, c.Compare(Chord{4, 8}))
	assert.Equal(-1, c.Compare(Chord{4, 7, 11}))
	assert.Equal(1, c.Compare(Chord{3, 7, 10}))
	assert.Equal("4-7", c.Key())
	assert.Equal("", Chord{}.Key())
}

func TestNewChordCopies(t *testing.T) {
	c := NewChord(MajorTriad...)
	c[0] = MinorThird
	assert.Equal(t, MajorThird, MajorTriad[0])
}

func TestHasIntervals(t *testing.T) {
	assert := assert.New(t)
	c := NewChord(DominantSeventh...)

	assert.True(c.HasIntervals(MajorTriad))
	assert.True(c.HasIntervals([]Note{MinorSeventh}))
	assert.True(c.HasIntervals(nil))
	assert.False(c.HasIntervals(MinorTriad))
	assert.True(c.SameIntervals(DominantSeventh))
	assert.False(c.SameIntervals(MajorTriad))
}

func TestNormalized(t *testing.T) {
	cases := []struct {
		in   Chord
		want Chord
	}{
		{Chord{4, 7}, Chord{4, 7}},
		{Chord{4, 7, 12, 19}, Chord{4, 7}},
		{Chord{4, 19}, Chord{4, 7}},
		{Chord{4, 28}, Chord{4, 16}},
		{Chord{0, 24, 36, 14}, Chord{14}},
		{Chord{14, 26}, Chord{14}},
		{Chord{31}, Chord{7}},
		{Chord{4, 7, 10, 26, 29}, Chord{4, 7, 10, 14, 17}},
		{Chord{}, Chord{}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint([]Note(tc.in)), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalized())
		})
	}
}

func TestNormalizedIsIdempotent(t *testing.T) {
	chords := []Chord{
		{4, 7}, {4, 19}, {3, 7, 10, 14, 17, 21}, {12, 19, 24, 31, 36}, {1, 13, 25, 37, 49}, {}, {11, 23, 35, 47},
	}
	for _, c := range chords {
		n := c.Normalized()
		assert.Equal(t, n, n.Normalized())
		for _, i := range n {
			assert.True(t, i >= 1 && i < 2*Octave, "%v out of range in %v", i, []Note(n))
			assert.NotEqual(t, Octave, i)
			assert.NotEqual(t, Twelfth, i)
		}
	}
}

func TestChordToSubseqChords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]Chord{{3}, {4}, {7}, {4, 7}}, NewChord(MajorTriad...).ToSubseqChords())
	// 0-4 and 4-8 are both a major third
	assert.Equal([]Chord{{4}, {8}, {4, 8}}, NewChord(MajorAugmented...).ToSubseqChords())
	assert.Empty(Chord{}.ToSubseqChords())
	assert.Equal([]Chord{{5}}, Chord{5}.ToSubseqChords())
}

func TestChordToSubseqChordsIsUniqueAndOrdered(t *testing.T) {
	for _, c := range []Chord{{2, 4, 5, 7, 9, 11}, {4, 7, 10, 14, 17, 21}, {1, 2, 3, 4, 5, 6, 7, 8}} {
		subs := c.ToSubseqChords()
		seen := map[string]bool{}
		for i, s := range subs {
			assert.NotEmpty(t, s)
			assert.False(t, seen[s.Key()], "duplicate %v", s.Key())
			seen[s.Key()] = true
			if i > 0 {
				prev := subs[i-1]
				ordered := len(prev) < len(s) || (len(prev) == len(s) && prev.Compare(s) < 0)
				assert.True(t, ordered, "%v before %v", prev.Key(), s.Key())
			}
		}
		// the full chord is always the last one
		assert.Equal(t, c, subs[len(subs)-1])
	}
}
