package model

// PaginationMeta is the page-navigation descriptor returned alongside
// list results. PreviousPage is nil exactly on the first page and
// NextPage is nil exactly on the last page.
type PaginationMeta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// Consistent reports whether the nil-ness of PreviousPage/NextPage
// agrees with the first/last page flags.
func (m PaginationMeta) Consistent() bool {
	if (m.PreviousPage == nil) != m.IsFirstPage {
		return false
	}
	if (m.NextPage == nil) != m.IsLastPage {
		return false
	}
	return true
}
