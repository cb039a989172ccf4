package app

import "github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"

// CondemnRequest is the input for the condemned-pool and repair workflows.
// Source is only read by MarkUnfit; the other workflows have fixed sources.
type CondemnRequest struct {
	ProductID string        `json:"productId"`
	Source    core.Location `json:"source,omitempty"`
	Amount    int           `json:"amount"`
	Note      string        `json:"note,omitempty"`
	Shift     string        `json:"shift,omitempty"`
}
