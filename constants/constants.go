package constants

import "os"

const (
	DefaultAddr    = ":8080"
	DefaultStyling = "std"
)

// GetAddr is the listen address of the HTTP API.
func GetAddr() string {
	return getEnv("CHORDBOOK_ADDR", DefaultAddr)
}

// GetScalesPath points at an optional YAML catalog of extra scale families.
func GetScalesPath() string {
	return os.Getenv("CHORDBOOK_SCALES")
}

func GetStyling() string {
	return getEnv("CHORDBOOK_STYLING", DefaultStyling)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// chords with fewer or more keys than this are skipped when analyzing MIDI
const (
	MinChordKeys = 2
	MaxChordKeys = 16
)
