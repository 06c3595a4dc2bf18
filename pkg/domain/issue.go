package domain

// IssueType classifies a health issue raised for a consumer.
type IssueType string

const (
	// IssueRecall means the product batch has been recalled by its manufacturer.
	IssueRecall IssueType = "recall"
	// IssueDanger means the product conflicts with an allergy or a condition.
	IssueDanger IssueType = "danger"
	// IssueWarning flags a nutritional concern for a condition.
	IssueWarning IssueType = "warning"
	// IssueSafe is emitted alone when nothing else was found.
	IssueSafe IssueType = "safe"
)

// Issue is one finding of a health evaluation. Issues have no identity and
// are never persisted.
type Issue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}
