package models

// Envelope is the uniform response wrapper of the remote service:
//
//	{"status": "...", "message": "...", "data": {...}}
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Page is a paginated list payload carried in [Envelope.Data].
type Page[T any] struct {
	Results      []T `json:"results"`
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
}

// HasNext reports whether a page after this one exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether a page before this one exists.
func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

// PageRequest carries the ?page=&limit= query of list endpoints.
type PageRequest struct {
	Page  int
	Limit int
}

// Overview summarises both managed collections for the console header.
type Overview struct {
	TotalUsers   int
	TotalStreams int
	LiveStreams  int
}
