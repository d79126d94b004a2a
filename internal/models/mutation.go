package models

// MutationResult reports the outcome of an edit or delete.
//
// Edits and deletes of an unknown ID are not errors: the collection is left untouched
// and MutationSkipped is reported instead.
type MutationResult string

const (
	MutationApplied MutationResult = "applied"
	MutationSkipped MutationResult = "skipped"
)

// ListParams holds search, sort and pagination options for a list request
type ListParams struct {
	Search   string
	Page     int
	PageSize int
	Sort     string
	Order    SortOrder
}

// SortOrder represents the direction of a column sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
