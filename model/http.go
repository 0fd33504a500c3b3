package model

type NameRequestBody struct {
	Notes   Notes  `json:"notes"`
	Styling string `json:"styling"`
}

type NameResult struct {
	Name      string `json:"name"`
	Root      string `json:"root"`
	Intervals []int  `json:"intervals"`
}

type ScaleFamily struct {
	Name  string   `json:"name"`
	Steps []int    `json:"steps"`
	Modes []string `json:"modes"`
}

type ScaleChordsResult struct {
	Family string   `json:"family"`
	Mode   string   `json:"mode"`
	Chords []string `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
