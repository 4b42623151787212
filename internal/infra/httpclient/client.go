package httpclient

import (
	"net"
	"net/http"
	"time"
)

type Client struct {
	c *http.Client
}

// New builds a client sized for many short-lived connections to distinct
// hosts. TLS verification and redirect handling stay at net/http defaults.
func New(timeout time.Duration, maxConns int) *Client {
	if maxConns <= 0 {
		maxConns = 100
	}

	trans := http.DefaultTransport.(*http.Transport).Clone()
	trans.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	trans.TLSHandshakeTimeout = timeout
	trans.ResponseHeaderTimeout = timeout
	trans.MaxIdleConns = maxConns
	trans.MaxIdleConnsPerHost = 2
	trans.IdleConnTimeout = 10 * time.Second

	return &Client{c: &http.Client{Transport: trans, Timeout: timeout}}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.c.Do(req)
}

func (c *Client) Timeout() time.Duration { return c.c.Timeout }
