package theory

// Scale is an ascending sequence of absolute notes. The first note is the tonic.
type Scale []Note

// Steps holds the gap from each scale note to the next one.
type Steps []Note

// ToScaler is implemented by anything that can be laid out as absolute notes
// above a root.
type ToScaler interface {
	ToScale(root Note) Scale
}

// ToSteps returns the successive differences of s. While s has not reached
// the octave above its tonic, a last step closing the octave is appended.
func (s Scale) ToSteps() Steps {
	if len(s) == 0 {
		return Steps{}
	}
	steps := make(Steps, 0, len(s))
	for i := 1; i < len(s); i++ {
		steps = append(steps, s[i]-s[i-1])
	}
	tonic, last := s[0], s[len(s)-1]
	if last < tonic+Octave {
		steps = append(steps, tonic+Octave-last)
	}
	return steps
}

// ToChord returns the intervals of every later note above the tonic.
func (s Scale) ToChord() Chord {
	if len(s) == 0 {
		return Chord{}
	}
	chord := make(Chord, 0, len(s)-1)
	for _, n := range s[1:] {
		chord = append(chord, n-s[0])
	}
	return chord
}

// IntoScale accumulates the steps from root. The result has one note more
// than there are steps, the last one closing the pattern.
func (st Steps) IntoScale(root Note) Scale {
	scale := make(Scale, 0, len(st)+1)
	scale = append(scale, root)
	n := root
	for _, step := range st {
		n += step
		scale = append(scale, n)
	}
	return scale
}

func (st Steps) ToScale(root Note) Scale {
	return st.IntoScale(root)
}

// Walk returns the first n notes of the endless ascending walk from root that
// cycles through the steps.
func (st Steps) Walk(root Note, n int) Scale {
	if n <= 0 {
		return Scale{}
	}
	res := make(Scale, 0, n)
	note := root
	for i := 0; i < n; i++ {
		res = append(res, note)
		if len(st) > 0 {
			note += st[i%len(st)]
		}
	}
	return res
}

// ModeOfScale rotates steps left by mode positions.
func ModeOfScale(steps Steps, mode int) Steps {
	if len(steps) == 0 {
		return Steps{}
	}
	m := ((mode % len(steps)) + len(steps)) % len(steps)
	res := make(Steps, 0, len(steps))
	res = append(res, steps[m:]...)
	res = append(res, steps[:m]...)
	return res
}

// NotesOfMode lists the notes of one octave of a mode, starting at tonic.
func NotesOfMode(tonic Note, steps Steps, mode int) Scale {
	return ModeOfScale(steps, mode).IntoScale(tonic)
}
