package model

// Notes are MIDI key numbers.
type Notes = []uint8

// Chord is the set of keys sounding together in a MIDI file from
// AbsTickOffset until the next change.
type Chord struct {
	AbsTickOffset uint32
	Notes         Notes
}

type ReducedEvent struct {
	AbsTicks  int64
	IsNoteOff bool
	Note      uint8
}
