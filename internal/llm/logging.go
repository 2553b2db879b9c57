package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/certforge/certforge/internal/store"
)

// LoggingClient is a decorator that records every model request as an event.
type LoggingClient struct {
	inner     Client
	eventRepo store.EventRepo
}

// WithLogging wraps a Client with event logging.
func WithLogging(c Client, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, eventRepo: repo}
}

func (l *LoggingClient) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResponse, error) {
	start := time.Now()

	resp, err := l.inner.GenerateContent(ctx, req)

	data := store.LLMRequestEventData{
		Kind:        "content",
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeContentRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Text)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.append(ctx, data)
	return resp, err
}

func (l *LoggingClient) GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error) {
	start := time.Now()

	images, err := l.inner.GenerateImages(ctx, req)

	data := store.LLMRequestEventData{
		Kind:        "image",
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: req.Prompt,
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.ResponseBody = fmt.Sprintf("%d image(s)", len(images))
	}

	l.append(ctx, data)
	return images, err
}

// NewChat is passed through unlogged; chat traffic is interactive and the
// session transcript lives in the screen, not the event log.
func (l *LoggingClient) NewChat(ctx context.Context, system string) (ChatSession, error) {
	return l.inner.NewChat(ctx, system)
}

func (l *LoggingClient) ModelID() string {
	return l.inner.ModelID()
}

// append logs the event but never fails the request over a logging error.
func (l *LoggingClient) append(ctx context.Context, data store.LLMRequestEventData) {
	if err := l.eventRepo.AppendLLMRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request event: %v\n", err)
	}
}

// serializeContentRequest builds a readable representation of a content call.
func serializeContentRequest(req ContentRequest) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n\n")

	if req.Grounding {
		b.WriteString("[grounding: web search]\n")
	}

	if req.Schema != nil {
		if schemaDef, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
