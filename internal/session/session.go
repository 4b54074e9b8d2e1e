// Package session owns the client's mutable state: the cached taxonomy and
// the last-prediction slot. There is no history and no undo; both values are
// replaced wholesale.
package session

import (
	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/model"
)

// Session is the single controller state object, constructed at startup and
// touched only from sequential event handlers.
type Session struct {
	taxonomy *model.Taxonomy
	last     *model.PredictionResult
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// SetTaxonomy replaces the cached taxonomy.
func (s *Session) SetTaxonomy(t *model.Taxonomy) {
	s.taxonomy = t
}

// Taxonomy returns the cached taxonomy, nil when none has been loaded.
func (s *Session) Taxonomy() *model.Taxonomy {
	return s.taxonomy
}

// RecordPrediction overwrites the last-prediction slot.
func (s *Session) RecordPrediction(transaction string, prediction model.Prediction) {
	s.last = &model.PredictionResult{
		Transaction: transaction,
		Response:    prediction,
	}
}

// LastPrediction returns the last-prediction slot, nil when no prediction
// has succeeded yet.
func (s *Session) LastPrediction() *model.PredictionResult {
	return s.last
}

// AutoAddCorrection builds the correction payload for the auto-add action
// from the last prediction, falling back to the given selected label when
// the predicted category is absent.
func (s *Session) AutoAddCorrection(selectedLabel string) (model.Correction, error) {
	if s.last == nil {
		return model.Correction{}, common.ErrNoPrediction
	}

	label := s.last.Response.Category
	if label == "" {
		label = selectedLabel
	}
	if label == "" {
		return model.Correction{}, common.ErrNoLabel
	}

	return model.Correction{
		Transaction:  s.last.Transaction,
		CorrectLabel: label,
	}, nil
}
