package model

import "encoding/json"

// Neighbor is one similar historical transaction returned alongside a
// prediction. Either Transaction or Meta carries the display text.
type Neighbor struct {
	Transaction string  `json:"transaction,omitempty"`
	Meta        string  `json:"meta,omitempty"`
	Similarity  float64 `json:"similarity"`
}

// Text returns the neighbor's display text, preferring the transaction
// description over metadata.
func (n Neighbor) Text() string {
	if n.Transaction != "" {
		return n.Transaction
	}
	return n.Meta
}

// Prediction is the backend's answer for a single transaction.
type Prediction struct {
	Category       string          `json:"category"`
	CategoryName   string          `json:"category_name,omitempty"`
	Rationale      string          `json:"rationale,omitempty"`
	Explanations   []Neighbor      `json:"explanations,omitempty"`
	KeywordMatches []string        `json:"keyword_matches,omitempty"`
	Raw            json.RawMessage `json:"-"`
	Confidence     float64         `json:"confidence"`
	LowConfidence  bool            `json:"is_low_confidence,omitempty"`
	Unknown        bool            `json:"is_unknown,omitempty"`
}

// PredictionResult pairs the submitted transaction with its prediction.
// The session holds at most one of these, overwritten per prediction.
type PredictionResult struct {
	Transaction string
	Response    Prediction
}

// Correction is a user-supplied (transaction, correct label) pair submitted
// to improve future predictions.
type Correction struct {
	Transaction  string `json:"transaction"`
	CorrectLabel string `json:"correct_label"`
}
