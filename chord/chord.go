package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordbook/constants"
	"github.com/jsphweid/chordbook/model"
	"github.com/jsphweid/chordbook/theory"
	"github.com/jsphweid/chordbook/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// CreateChordKey sorts notes in place and joins them with "-".
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	parts := make([]string, len(notes))
	for i, note := range notes {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

// Identify roots the keys on the lowest one. Repeated keys count once.
func Identify(notes model.Notes) theory.RootedChord {
	keys := make(map[uint8]bool, len(notes))
	for _, n := range notes {
		keys[n] = true
	}
	var scale theory.Scale
	for _, k := range util.GetSortedKeys(keys) {
		scale = append(scale, theory.FromMIDIKey(k))
	}
	return theory.RootedChordFromScale(scale)
}

// Name identifies the keys and names the resulting chord.
func Name(notes model.Notes, styling theory.Styling) string {
	return Identify(notes).AsString(true, styling)
}

func reduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{AbsTicks: absTicks, Note: key})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{AbsTicks: absTicks, IsNoteOff: true, Note: key})
			}
		}
	}
	return reducedEvents
}

// Simultaneities replays note events in time order and returns the sounding
// keys after every tick at which something changed. Sets of fewer than
// constants.MinChordKeys or more than constants.MaxChordKeys keys are left out.
func Simultaneities(reducedEvents []model.ReducedEvent) []model.Chord {
	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].AbsTicks != reducedEvents[j].AbsTicks {
			return reducedEvents[i].AbsTicks < reducedEvents[j].AbsTicks
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	ticksToChords := make(map[int64]model.Chord)
	pressed := make(map[uint8]int)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			if pressed[evt.Note] <= 1 {
				delete(pressed, evt.Note)
			} else {
				pressed[evt.Note]--
			}
		} else {
			pressed[evt.Note]++
		}
		ticksToChords[evt.AbsTicks] = model.Chord{
			AbsTickOffset: uint32(evt.AbsTicks),
			Notes:         util.GetSortedKeys(pressed),
		}
	}

	var chords []model.Chord
	for _, ticks := range util.GetSortedKeys(ticksToChords) {
		c := ticksToChords[ticks]
		if len(c.Notes) < constants.MinChordKeys || len(c.Notes) > constants.MaxChordKeys {
			continue
		}
		chords = append(chords, c)
	}
	return chords
}

// GetChords lists the simultaneities of all tracks of s merged together.
func GetChords(s *smf.SMF) []model.Chord {
	return Simultaneities(reduceEvents(s))
}
