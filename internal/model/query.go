package model

// SortOrder is the direction of a venue sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort keys accepted by the venue endpoints. Unknown keys are passed
// through; the server is the authority on what it can sort by.
const (
	SortCreated   = "created"
	SortUpdated   = "updated"
	SortPrice     = "price"
	SortRating    = "rating"
	SortMaxGuests = "maxGuests"
	SortName      = "name"
)

// QueryState is the full set of parameters driving a venue query. Any
// change to SearchTerm, SortKey or SortOrder resets Page to 1.
type QueryState struct {
	SearchTerm string
	Page       int
	Limit      int
	SortKey    string
	SortOrder  SortOrder
}

// DefaultQuery returns the initial query state: newest venues first,
// twelve per page.
func DefaultQuery() QueryState {
	return QueryState{
		Page:      1,
		Limit:     12,
		SortKey:   SortCreated,
		SortOrder: SortDesc,
	}
}
