package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/klwxsrx/simctl/pkg/log"
)

const DefaultRequestIDHeader = "X-Request-ID"

var errRetryableStatus = errors.New("retryable response status")

type (
	ClientOption func(*ClientImpl)

	// RequestHook runs before every attempt, retries included.
	// Returning an error aborts the request.
	RequestHook func(*resty.Request) error

	Client interface {
		NewRequest(ctx context.Context, route Route) *Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		RESTClient *resty.Client
		newBackOff func() backoff.BackOff
		opts       []ClientOption
	}

	Request struct {
		impl       *resty.Request
		route      Route
		newBackOff func() backoff.BackOff
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		RESTClient: resty.New(),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context, route Route) *Request {
	return &Request{
		impl:       c.RESTClient.NewRequest().SetContext(ctx),
		route:      route,
		newBackOff: c.newBackOff,
	}
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func (r *Request) Route() Route {
	return r.route
}

func (r *Request) SetPathParam(name, value string) *Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r *Request) SetQueryParam(name, value string) *Request {
	r.impl.SetQueryParam(name, value)
	return r
}

func (r *Request) SetHeader(name, value string) *Request {
	r.impl.SetHeader(name, value)
	return r
}

func (r *Request) SetJSONBody(body any) *Request {
	r.impl.SetHeader("Content-Type", "application/json").SetBody(body)
	return r
}

// Send executes the request. GET requests of a client configured WithRetry are
// retried on transport errors and 5xx responses; the last response is returned
// once the backoff gives up.
func (r *Request) Send() (*resty.Response, error) {
	if r.newBackOff == nil || r.route.Method != http.MethodGet {
		return r.impl.Execute(r.route.Method, r.route.URL)
	}

	var resp *resty.Response
	attempt := func() error {
		var err error
		resp, err = r.impl.Execute(r.route.Method, r.route.URL)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return errRetryableStatus
		}
		return nil
	}

	err := backoff.Retry(attempt, backoff.WithContext(r.newBackOff(), r.impl.Context()))
	if errors.Is(err, errRetryableStatus) {
		return resp, nil
	}

	return resp, err
}

func WithBaseURL(url string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetBaseURL(url)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(key, value)
	}
}

func WithBeforeRequest(hook RequestHook) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return hook(req)
		})
	}
}

// WithRetry enables retries of GET requests, newBackOff is called once per request.
func WithRetry(newBackOff func() backoff.BackOff) ClientOption {
	return func(c *ClientImpl) {
		c.newBackOff = newBackOff
	}
}

// WithExponentialRetry retries GET requests until maxElapsed passes.
func WithExponentialRetry(maxElapsed time.Duration) ClientOption {
	return WithRetry(func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = maxElapsed
		return b
	})
}

// WithRequestID sets a random UUID header on every request that does not carry one.
func WithRequestID(header string) ClientOption {
	return WithBeforeRequest(func(req *resty.Request) error {
		if req.Header.Get(header) == "" {
			req.SetHeader(header, uuid.NewString())
		}
		return nil
	})
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			l := requestLogger(logger, resp.Request).With(log.Fields{
				"code":     resp.StatusCode(),
				"duration": resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				l.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				l.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			requestLogger(logger, req).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func requestLogger(logger log.Logger, req *resty.Request) log.Logger {
	return logger.With(log.Fields{
		"method":    req.Method,
		"url":       req.URL,
		"requestID": req.Header.Get(DefaultRequestIDHeader),
	})
}
