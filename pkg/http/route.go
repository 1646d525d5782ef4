package http

import (
	"fmt"
	"strings"
	"unicode"
)

// Route is a backend endpoint. URL is relative to the client base URL and may
// contain {param} placeholders filled by Request.SetPathParam.
type Route struct {
	Method string
	URL    string
}

// Name returns a log-friendly identifier, e.g. "get_api_sim_simid".
func (r Route) Name() string {
	path := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.Trim(r.URL, "/"))
	return strings.ToLower(fmt.Sprintf("%s_%s", r.Method, path))
}
