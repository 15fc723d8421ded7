package model

// Category classifies a checklist document request.
type Category string

const (
	CategoryLegal       Category = "Legal"
	CategoryFinancial   Category = "Financial"
	CategoryOperational Category = "Operational"
	CategoryTax         Category = "Tax"
	CategoryHR          Category = "HR"
	CategoryCommercial  Category = "Commercial"
	CategoryIP          Category = "IP"
	CategoryCompliance  Category = "Compliance"
)

// Categories returns all categories in canonical display order. Checklists
// are sorted category-major in this order.
func Categories() []Category {
	return []Category{
		CategoryLegal,
		CategoryFinancial,
		CategoryOperational,
		CategoryTax,
		CategoryHR,
		CategoryCommercial,
		CategoryIP,
		CategoryCompliance,
	}
}

// Valid reports whether the category is one of the defined values.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Priority ranks how urgently a document is needed.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities returns all priorities in rank order, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether the priority is one of the defined values.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Source records where a checklist entry came from.
type Source string

const (
	SourceBaseRule Source = "base-rule"
	SourceCustom   Source = "custom"
)

// Status tracks the lifecycle of a requested document. The generated
// workbook restricts the status column to these values.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusReceived Status = "Received"
	StatusReviewed Status = "Reviewed"
	StatusMissing  Status = "Missing"
)

// Statuses returns all statuses in display order. Pending is the default
// for freshly generated checklists.
func Statuses() []Status {
	return []Status{StatusPending, StatusReceived, StatusReviewed, StatusMissing}
}

// TranslationKey returns the i18n key for the status label.
func (s Status) TranslationKey() string {
	switch s {
	case StatusPending:
		return "status.pending"
	case StatusReceived:
		return "status.received"
	case StatusReviewed:
		return "status.reviewed"
	case StatusMissing:
		return "status.missing"
	}
	return ""
}

// DefinitionKey returns the i18n key for the status definition text shown
// on the instructions sheet.
func (s Status) DefinitionKey() string {
	switch s {
	case StatusPending:
		return "status_def.pending"
	case StatusReceived:
		return "status_def.received"
	case StatusReviewed:
		return "status_def.reviewed"
	case StatusMissing:
		return "status_def.missing"
	}
	return ""
}

// DocumentEntry is one resolved checklist line. Base-rule entries carry the
// translation key they were resolved from; custom entries carry only the
// caller-supplied literal name.
type DocumentEntry struct {
	Category Category `json:"category"`
	Key      string   `json:"key,omitempty"`
	Name     string   `json:"name"`
	Required bool     `json:"required"`
	Priority Priority `json:"priority"`
	Source   Source   `json:"source"`
}
