package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordbook/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeTriad(t *testing.T, path string) {
	t.Helper()
	var tr smf.Track
	for _, key := range []uint8{60, 64, 67} {
		tr.Add(0, midi.NoteOn(0, key, 100))
	}
	tr.Add(480, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Close(0)

	s := smf.New()
	require.NoError(t, s.Add(tr))
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	writeTriad(t, filepath.Join(dir, "triad.mid"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.mid"), []byte("MThd"), 0o644))

	assert.NoError(t, analyze(dir, 0, theory.Std))
	uniqueFlag = true
	defer func() { uniqueFlag = false }()
	assert.NoError(t, analyze(dir, 1, theory.Extended))

	assert.Error(t, analyze(filepath.Join(dir, "missing"), 0, theory.Std))
}
