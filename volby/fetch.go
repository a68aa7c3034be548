package volby

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultUserAgent = "volby-scrapper/1.0"

// Fetcher downloads one page and returns its body and content type. Anything
// other than a 200 response is an error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

type RestyFetcher struct {
	client *resty.Client
}

// NewRestyFetcher never retries; a zero timeout leaves requests unbounded
// apart from ctx.
func NewRestyFetcher(timeout time.Duration, userAgent string) *RestyFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return &RestyFetcher{client: client}
}

func (f *RestyFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, "", &TransportError{URL: url, Cause: err}
	}

	if res.StatusCode() != http.StatusOK {
		return nil, "", &TransportError{URL: url, Status: res.StatusCode()}
	}

	return res.Body(), res.Header().Get("Content-Type"), nil
}
