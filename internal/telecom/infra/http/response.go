package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

type errorOut struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// call sends the request and decodes a successful answer with extractor.
func call[T any](req *pkghttp.Request, extractor pkghttp.DataExtractor[T]) (T, error) {
	var result T

	resp, err := req.Send()
	if err != nil {
		return result, fmt.Errorf("request %s: %w", req.Route().Name(), err)
	}
	if err = checkStatus(resp); err != nil {
		return result, fmt.Errorf("request %s: %w", req.Route().Name(), err)
	}

	result, err = pkghttp.ParseResponse(resp, extractor, nil)
	if err != nil {
		return result, fmt.Errorf("%s response: %w", req.Route().Name(), err)
	}

	return result, nil
}

func checkStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return wrapMessage(backend.ErrUnauthorized, message)
	case http.StatusNotFound:
		return wrapMessage(backend.ErrNotFound, message)
	default:
		return &backend.StatusError{Code: code, Message: message}
	}
}

func wrapMessage(err error, message string) error {
	if message == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, message)
}

func errorMessage(body []byte) string {
	var out errorOut
	if err := json.Unmarshal(body, &out); err == nil {
		if out.Message != "" {
			return out.Message
		}
		return out.Error
	}

	return strings.TrimSpace(string(body))
}

// confirmation extracts the human readable answer of action endpoints, sent
// either as {"message": "..."} or as a bare string.
func confirmation() pkghttp.DataExtractor[string] {
	return func(resp *resty.Response) (string, error) {
		var out backend.Message
		if err := json.Unmarshal(resp.Body(), &out); err == nil && out.Message != "" {
			return out.Message, nil
		}

		var text string
		if err := json.Unmarshal(resp.Body(), &text); err == nil {
			return text, nil
		}

		text, err := pkghttp.TextBody()(resp)
		return strings.TrimSpace(text), err
	}
}

func noContent() pkghttp.DataExtractor[struct{}] {
	return func(*resty.Response) (struct{}, error) {
		return struct{}{}, nil
	}
}
