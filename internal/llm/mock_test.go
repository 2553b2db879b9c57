package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMockClient_ContentFIFO(t *testing.T) {
	m := NewMockClient()
	m.AddContentResponse(MockContentResponse{Text: json.RawMessage(`"first"`)})
	m.AddContentResponse(MockContentResponse{Text: json.RawMessage(`"second"`)})

	ctx := context.Background()

	resp, err := m.GenerateContent(ctx, ContentRequest{Prompt: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Text) != `"first"` {
		t.Fatalf("expected first response, got %s", resp.Text)
	}

	resp, err = m.GenerateContent(ctx, ContentRequest{Prompt: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Text) != `"second"` {
		t.Fatalf("expected second response, got %s", resp.Text)
	}

	if _, err := m.GenerateContent(ctx, ContentRequest{Prompt: "c"}); err == nil {
		t.Fatal("expected error when queue is empty")
	}

	if m.ContentCallCount() != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", m.ContentCallCount())
	}
	if m.ContentCalls[1].Prompt != "b" {
		t.Fatalf("expected second call prompt %q, got %q", "b", m.ContentCalls[1].Prompt)
	}
}

func TestMockClient_CannedError(t *testing.T) {
	m := NewMockClient()
	m.AddContentResponse(MockContentResponse{Err: &ErrRateLimit{}})

	_, err := m.GenerateContent(context.Background(), ContentRequest{})
	if !IsRateLimit(err) {
		t.Fatalf("expected rate limit error, got: %v", err)
	}
}

func TestMockClient_Images(t *testing.T) {
	m := NewMockClient()
	m.AddImageResponse(MockImageResponse{Images: [][]byte{[]byte("png-bytes")}})

	images, err := m.GenerateImages(context.Background(), ImageRequest{Prompt: "badge", Count: 1, AspectRatio: "1:1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 1 || string(images[0]) != "png-bytes" {
		t.Fatalf("unexpected images: %v", images)
	}
	if m.ImageCalls[0].AspectRatio != "1:1" {
		t.Fatalf("expected aspect ratio recorded, got %q", m.ImageCalls[0].AspectRatio)
	}
}

func TestMockClient_ChatStreaming(t *testing.T) {
	m := NewMockClient()
	m.AddChatReply("hello there")

	session, err := m.NewChat(context.Background(), "be helpful")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.ChatSystems) != 1 || m.ChatSystems[0] != "be helpful" {
		t.Fatalf("expected system instruction recorded, got %v", m.ChatSystems)
	}

	var got string
	var chunks int
	for delta, err := range session.Send(context.Background(), "hi") {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		got += delta
		chunks++
	}
	if got != "hello there" {
		t.Fatalf("expected accumulated reply %q, got %q", "hello there", got)
	}
	if chunks < 2 {
		t.Fatalf("expected reply streamed in chunks, got %d", chunks)
	}
	if len(m.ChatMessages) != 1 || m.ChatMessages[0] != "hi" {
		t.Fatalf("expected message recorded, got %v", m.ChatMessages)
	}
}
