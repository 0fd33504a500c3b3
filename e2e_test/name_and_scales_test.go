//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jsphweid/chordbook/cmd"
	"github.com/jsphweid/chordbook/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	if err := cmd.LoadServeFiles(os.Getenv("CHORDBOOK_SCALES")); err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func readBody(t *testing.T, resp *http.Response, v any) {
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(respBody, v); err != nil {
		t.Fatal(err)
	}
}

func TestNameCMajorSeventhE2E(t *testing.T) {
	resp, err := http.Post(server.URL+"/name", "application/json", strings.NewReader(`{"notes": [48, 64, 67, 71]}`))
	if err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	var res model.NameResult
	readBody(t, resp, &res)
	assert.Equal("C3", res.Root)
	assert.Equal([]int{16, 19, 23}, res.Intervals)
}

func TestNameFMinorE2E(t *testing.T) {
	resp, err := http.Post(server.URL+"/name", "application/json", strings.NewReader(`{"notes": [65, 68, 72]}`))
	if err != nil {
		t.Fatal(err)
	}

	var res model.NameResult
	readBody(t, resp, &res)
	assert.Equal(t, model.NameResult{Name: "f", Root: "F4", Intervals: []int{3, 7}}, res)
}

func TestHarmonicMajorChordsE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/scales/harmonic%20major/chords")
	if err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.ScaleChordsResult
	readBody(t, resp, &res)
	assert.Equal(model.ScaleChordsResult{
		Family: "Harmonic Major",
		Mode:   "Harmonic Major",
		Chords: []string{"I", "ii°", "iii", "iv", "V", "VI+", "vii°"},
	}, res)
}
