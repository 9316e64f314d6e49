package models

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Error    string            `json:"error,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	CanRetry bool              `json:"canRetry,omitempty"`
	GoBack   bool              `json:"goBack,omitempty"`
}

// PaginationMeta describes one page of a client-side paginated list.
type PaginationMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PaginatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
	Pages   []int          `json:"pages,omitempty"`
}

// UpstreamPagination is the pagination block the upstream API attaches to
// booking-call responses.
type UpstreamPagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalBookings int  `json:"totalBookings"`
	Limit         int  `json:"limit"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}
