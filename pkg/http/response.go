package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrParsingError = errors.New("parsing error")

type DataExtractor[T any] func(*resty.Response) (T, error)

func ParseResponse[T any](resp *resty.Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(resp)
}

func JSONBody[T any]() DataExtractor[T] {
	return func(resp *resty.Response) (T, error) {
		var result T
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

// TextBody returns the raw body, for endpoints answering with a bare string.
func TextBody() DataExtractor[string] {
	return func(resp *resty.Response) (string, error) {
		return string(resp.Body()), nil
	}
}
