package types

// PaginatedResponse is the shared shape of every list endpoint. NextPage is
// omitted on the last page.
type PaginatedResponse[T any] struct {
	Items      []T  `json:"items"`
	IsLastPage bool `json:"isLastPage"`
	NextPage   *int `json:"nextPage,omitempty"`
	Limit      int  `json:"limit"`
}

func NewPaginatedResponse[T any](items []T, total int64, page, limit int) PaginatedResponse[T] {
	isLastPage := total <= int64(page*limit)

	response := PaginatedResponse[T]{
		Items:      items,
		IsLastPage: isLastPage,
		Limit:      limit,
	}

	if !isLastPage {
		next := page + 1
		response.NextPage = &next
	}

	if response.Items == nil {
		response.Items = []T{}
	}

	return response
}
