package devapi

import (
	"fmt"
	"net/http"
	"strconv"
)

// Paging bounds of the list endpoints.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func parsePaging(r *http.Request) (page, limit int, err error) {
	page, err = queryInt(r, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, min(limit, maxLimit), nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidData, name, raw)
	}
	return v, nil
}
