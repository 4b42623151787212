package check

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/rojanmagar2001/alivecheck/internal/domain"
	"github.com/rojanmagar2001/alivecheck/internal/ports"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "alivecheck/0.1"
)

type Checker struct {
	Client    ports.HTTPClient
	Timeout   time.Duration
	UserAgent string
}

func NewChecker(client ports.HTTPClient, timeout time.Duration, userAgent string) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Checker{
		Client:    client,
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}

// Check issues a single GET to https://<host> and reports Success only for
// status 200. The response body is never read.
func (c *Checker) Check(ctx context.Context, host string) domain.Result {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	res := domain.Result{URL: host, Outcome: domain.Failure}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+Target(host), nil)
	if err != nil {
		res.Err = fmt.Errorf("new request: %w", err)
		return res
	}
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.Client.Do(req)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("GET request: %w", err)
		return res
	}
	_ = resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		res.Outcome = domain.Success
	}
	return res
}

// Target returns the ASCII form of host for use in a request URL. Hosts that
// are already ASCII, or that IDNA rejects, are returned unchanged.
func Target(host string) string {
	if isASCII(host) {
		return host
	}

	name, port, err := net.SplitHostPort(host)
	if err != nil {
		name, port = host, ""
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return host
	}
	if port != "" {
		return net.JoinHostPort(ascii, port)
	}
	return ascii
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
