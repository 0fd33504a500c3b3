package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestReadRejectsGarbage(t *testing.T) {
	s, err := Read(bytes.NewReader([]byte("not a midi file at all")))
	assert.Error(t, err)
	assert.Nil(t, s)

	s, err = Read(bytes.NewReader(nil))
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestReadMidiFile(t *testing.T) {
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(96, gomidi.NoteOff(0, 60))
	tr.Close(0)

	s := smf.New()
	require.NoError(t, s.Add(tr))
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "one.mid")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := ReadMidiFile(path)
	require.NoError(t, err)
	require.Len(t, got.Tracks, 1)
	assert.Equal(t, uint32(96), got.Tracks[0][1].Delta)

	_, err = ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}
