package tui

import (
	"encoding/json"

	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/model"
)

// Data loading messages.
type taxonomyLoadedMsg struct {
	err      error
	taxonomy *model.Taxonomy
}

// Prediction messages.
type predictionMsg struct {
	err         error
	prediction  *model.Prediction
	transaction string
}

// Correction messages.
type correctionMsg struct {
	err error
	raw json.RawMessage
}

// autoAddMsg reports the two-step auto-add action. indexErr is the soft
// failure of the optional add-to-index call; err is a hard correction error.
type autoAddMsg struct {
	err      error
	indexErr error
}

// Batch flow messages.
type csvPreviewMsg struct {
	err     error
	path    string
	preview csvview.Preview
}

type batchResultMsg struct {
	err error
	raw json.RawMessage
}

// Maintenance messages.
type uploadDoneMsg struct {
	err error
}

type rebuildDoneMsg struct {
	err error
}

// jsonSavedMsg reports the outcome of a raw JSON save or copy.
type jsonSavedMsg struct {
	err    error
	path   string
	copied bool
}
