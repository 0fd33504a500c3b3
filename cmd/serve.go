package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordbook/chord"
	"github.com/jsphweid/chordbook/constants"
	"github.com/jsphweid/chordbook/model"
	"github.com/jsphweid/chordbook/scales"
	"github.com/jsphweid/chordbook/theory"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// loaded once before serving, read-only afterwards
var scaleCatalog []scales.ScaleObj

var addrFlag string

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", constants.GetAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves chord naming and scale chord listings over HTTP`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(scalesFlag); err != nil {
			return err
		}
		log.Printf("Listening on %v\n", addrFlag)
		return http.ListenAndServe(addrFlag, NewRouter())
	},
}

// LoadServeFiles loads the scale catalog the handlers read from.
func LoadServeFiles(scalesPath string) error {
	cat, err := scales.Catalog(scalesPath)
	if err != nil {
		return err
	}
	scaleCatalog = cat
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/name", HandleName).Methods(http.MethodPost)
	router.HandleFunc("/scales", HandleScales).Methods(http.MethodGet)
	router.HandleFunc("/scales/{family}/chords", HandleScaleChords).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%v %v %v\n", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleName(w http.ResponseWriter, r *http.Request) {
	var input model.NameRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("notes must not be empty"))
		return
	}
	st, err := theory.ParseStyling(input.Styling)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rc := chord.Identify(input.Notes)
	writeJSON(w, http.StatusOK, model.NameResult{
		Name:      rc.AsString(true, st),
		Root:      theory.NoteName(rc.Root),
		Intervals: toInts(rc.Chord),
	})
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ScaleFamily, 0, len(scaleCatalog))
	for _, s := range scaleCatalog {
		modes := make([]string, len(s.Steps))
		for i := range s.Steps {
			modes[i] = s.ModeName(i)
		}
		res = append(res, model.ScaleFamily{
			Name:  s.FamilyName,
			Steps: toInts(theory.Chord(s.Steps)),
			Modes: modes,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

func HandleScaleChords(w http.ResponseWriter, r *http.Request) {
	family, err := scales.Lookup(scaleCatalog, mux.Vars(r)["family"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	mode, err := queryInt(r, "mode", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	size, err := queryInt(r, "size", 3)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if size < 1 {
		writeError(w, http.StatusBadRequest, errors.New("size must be positive"))
		return
	}
	st, err := theory.ParseStyling(r.URL.Query().Get("styling"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m := family.Mode(mode)
	writeJSON(w, http.StatusOK, model.ScaleChordsResult{
		Family: m.FamilyName,
		Mode:   m.ModeName,
		Chords: theory.ScaleChordNamesRoman(m.Steps, size, st),
	})
}
