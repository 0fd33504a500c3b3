package theory

import "fmt"

// RelativeChord is a chord on a root given as a signed offset from some
// tonic, named by scale degree.
type RelativeChord struct {
	Root  Note
	Chord Chord
}

func NewRelativeChord(root Note, chord Chord) RelativeChord {
	return RelativeChord{Root: root, Chord: chord}
}

func RelativeChordFromIntervals(root Note, intervals ...Note) RelativeChord {
	return RelativeChord{Root: root, Chord: NewChord(intervals...)}
}

func (rc RelativeChord) AsString(lower bool, styling Styling) string {
	return rc.Chord.Quality(ToDegree(rc.Root), lower, styling)
}

// String renders the root as an offset from X, e.g. "<X+7>⁷".
func (rc RelativeChord) String() string {
	root := fmt.Sprintf("<X%+d>", int(rc.Root))
	return rc.Chord.Quality(root, true, Extended)
}
