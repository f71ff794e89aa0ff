package catalog

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/expki/go-dataminer/cache"
	"github.com/expki/go-dataminer/config"
	"github.com/expki/go-dataminer/database"
	"github.com/expki/go-dataminer/logger"
	"golang.org/x/net/http2"
)

// Fetcher returns the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// NewHTTPFetcher builds a fetcher with an HTTP/2 capable transport.
func NewHTTPFetcher(cfg config.Scrape) (*HTTPFetcher, error) {
	tlsConfig, err := cfg.TLS.Config()
	if err != nil {
		return nil, err
	}
	return newHTTPFetcher(tlsConfig, cfg.Timeout.Std(), cfg.UserAgent), nil
}

func newHTTPFetcher(tlsConfig *tls.Config, timeout time.Duration, userAgent string) *HTTPFetcher {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSClientConfig:     tlsConfig,
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     config.HTTP_IDLE_TIMEOUT,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 50,
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		logger.Sugar().Warnf("http2 unavailable, falling back to http/1.1: %v", err)
	}
	return &HTTPFetcher{
		client:    &http.Client{Transport: transport, Timeout: timeout},
		userAgent: userAgent,
	}
}

type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (body []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(errors.New("could not create request"), err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	logger.Sugar().Debugf("GET %s", url)
	res, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Join(fmt.Errorf("GET %s failed", url), err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode}
	}
	body, err = io.ReadAll(io.LimitReader(res.Body, config.HTTP_MAX_BODY_BYTES))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("GET %s body", url), err)
	}
	logger.Sugar().Debugf("GET %s %d bytes (%dms)", url, len(body), time.Since(start).Milliseconds())
	return body, nil
}

// PageStore persists fetched pages between runs. *database.Database implements it.
type PageStore interface {
	GetPage(ctx context.Context, url string) ([]byte, error)
	PutPage(ctx context.Context, url string, body []byte) error
}

// NewCachedFetcher layers an in-memory cache and an optional page store in front of next.
// store may be nil.
func NewCachedFetcher(memory *cache.Cache[[]byte], store PageStore, next Fetcher) *CachedFetcher {
	return &CachedFetcher{memory: memory, store: store, next: next}
}

type CachedFetcher struct {
	memory *cache.Cache[[]byte]
	store  PageStore
	next   Fetcher
}

// Fetch serves url from memory, then the store, then next. Concurrent callers for the same
// url share one load, which runs detached from the cancellation of whichever caller started
// it; the HTTP client timeout still bounds it.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)
	return f.memory.Fetch(url, func() ([]byte, error) {
		if f.store != nil {
			body, err := f.store.GetPage(ctx, url)
			if err == nil {
				logger.Sugar().Debugf("page store hit: %s", url)
				return body, nil
			} else if !errors.Is(err, database.ErrPageNotFound) {
				return nil, err
			}
		}

		body, err := f.next.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		if f.store != nil {
			if err := f.store.PutPage(ctx, url, body); err != nil {
				logger.Sugar().Warnf("could not persist page %s: %v", url, err)
			}
		}
		return body, nil
	})
}
