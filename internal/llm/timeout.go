package llm

import (
	"context"
	"time"
)

// timeoutClient bounds every content and image request with a deadline.
// Chat sessions stream for as long as the user converses and carry no
// deadline.
type timeoutClient struct {
	inner   Client
	timeout time.Duration
}

// WithTimeout wraps a Client so each content and image call runs under a
// per-request deadline. A zero or negative timeout returns the client
// unchanged.
func WithTimeout(c Client, timeout time.Duration) Client {
	if timeout <= 0 {
		return c
	}
	return &timeoutClient{inner: c, timeout: timeout}
}

func (t *timeoutClient) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.GenerateContent(ctx, req)
}

func (t *timeoutClient) GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.GenerateImages(ctx, req)
}

func (t *timeoutClient) NewChat(ctx context.Context, system string) (ChatSession, error) {
	return t.inner.NewChat(ctx, system)
}

func (t *timeoutClient) ModelID() string {
	return t.inner.ModelID()
}
