// Package model defines the wire and domain types exchanged with the
// categorization backend.
package model

import "fmt"

// Category is one valid categorization label.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label returns the display form used in selection lists.
func (c Category) Label() string {
	return fmt.Sprintf("%s — %s", c.ID, c.Name)
}

// Taxonomy is the set of valid labels plus optional model/index metadata.
// It is replaced wholesale on each successful fetch; there is exactly one
// live instance at a time.
type Taxonomy struct {
	Model      string     `json:"model,omitempty"`
	Categories []Category `json:"categories"`
	IndexCount int        `json:"index_count,omitempty"`
}

// FindCategory returns the category with the given id, or nil.
func (t *Taxonomy) FindCategory(id string) *Category {
	for i := range t.Categories {
		if t.Categories[i].ID == id {
			return &t.Categories[i]
		}
	}
	return nil
}
