package domain

// ChecklistItemType classifies one checklist entry (spec §4.4).
type ChecklistItemType string

const (
	ChecklistDocument  ChecklistItemType = "document"
	ChecklistIncome    ChecklistItemType = "income"
	ChecklistDeduction ChecklistItemType = "deduction"
	ChecklistLifeEvent ChecklistItemType = "life_event"
	ChecklistDeadline  ChecklistItemType = "deadline"
)

// ChecklistStatus is the completion state of a checklist item.
type ChecklistStatus string

const (
	StatusPending  ChecklistStatus = "pending"
	StatusReceived ChecklistStatus = "received"
	StatusDone     ChecklistStatus = "done"
)

// ChecklistItem is one deterministic entry in a tax-year preparation checklist.
type ChecklistItem struct {
	ID     string            `json:"id"`
	Type   ChecklistItemType `json:"type"`
	Label  string            `json:"label"`
	Status ChecklistStatus   `json:"status"`
	DueDate string           `json:"dueDate,omitempty"`
}

// Checklist is the full deterministic checklist for a tax year plus its
// completion percentage (spec §4.4).
type Checklist struct {
	Year           int             `json:"year"`
	Items          []ChecklistItem `json:"items"`
	CompletionPct  float64         `json:"completionPct"`
}
