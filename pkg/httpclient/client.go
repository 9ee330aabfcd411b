package httpclient

import (
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the subset of http.Client the services depend on. Callers hold
// this interface so tests can swap in a stub.
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

type stdClient struct {
	client *http.Client
}

// NewStandardClient returns a Client backed by net/http with a request
// timeout applied.
func NewStandardClient() Client {
	return &stdClient{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *stdClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.client.Post(url, contentType, body)
}

func (c *stdClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

func (c *stdClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
