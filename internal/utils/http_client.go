package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the relay gateway can use the whole
// resty API.
type HTTPClient struct {
	*resty.Client
}

// NewRetryingHTTPClient returns a client bound to baseURL that retries
// transport failures and 5xx responses retryCount times with backoff.
// 4xx responses are never retried.
func NewRetryingHTTPClient(baseURL string, timeout time.Duration, retryCount int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}
