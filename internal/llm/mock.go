package llm

import (
	"context"
	"encoding/json"
	"iter"
	"sync"
)

// MockContentResponse is a canned content response for the MockClient.
type MockContentResponse struct {
	Text    json.RawMessage
	Sources []GroundingSource
	Usage   Usage
	Err     error
}

// MockImageResponse is a canned image response for the MockClient.
type MockImageResponse struct {
	Images [][]byte
	Err    error
}

// MockClient is a deterministic Client for testing. Content and image
// responses are returned in FIFO order from separate queues, and every
// request is recorded.
type MockClient struct {
	mu           sync.Mutex
	contentQueue []MockContentResponse
	imageQueue   []MockImageResponse
	chatReplies  []string
	ContentCalls []ContentRequest
	ImageCalls   []ImageRequest
	ChatSystems  []string
	ChatMessages []string
	NewChatErr   error
}

// NewMockClient creates an empty MockClient. Queue responses with
// AddContentResponse and AddImageResponse.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// AddContentResponse appends a canned content response to the queue.
func (m *MockClient) AddContentResponse(resp MockContentResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contentQueue = append(m.contentQueue, resp)
}

// AddImageResponse appends a canned image response to the queue.
func (m *MockClient) AddImageResponse(resp MockImageResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imageQueue = append(m.imageQueue, resp)
}

// AddChatReply appends a scripted chat reply. Each Send on a mock chat
// session consumes one reply.
func (m *MockClient) AddChatReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatReplies = append(m.chatReplies, reply)
}

// GenerateContent returns the next canned content response, or ErrService
// if the queue is empty.
func (m *MockClient) GenerateContent(_ context.Context, req ContentRequest) (*ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ContentCalls = append(m.ContentCalls, req)

	if len(m.contentQueue) == 0 {
		return nil, &ErrService{Err: nil}
	}

	resp := m.contentQueue[0]
	m.contentQueue = m.contentQueue[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &ContentResponse{
		Text:    resp.Text,
		Sources: resp.Sources,
		Usage:   resp.Usage,
		Model:   "mock",
	}, nil
}

// GenerateImages returns the next canned image response, or ErrService if
// the queue is empty.
func (m *MockClient) GenerateImages(_ context.Context, req ImageRequest) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ImageCalls = append(m.ImageCalls, req)

	if len(m.imageQueue) == 0 {
		return nil, &ErrService{Err: nil}
	}

	resp := m.imageQueue[0]
	m.imageQueue = m.imageQueue[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	if len(resp.Images) == 0 {
		return nil, &ErrEmptyResult{Prompt: req.Prompt}
	}

	return resp.Images, nil
}

// NewChat returns a scripted chat session that replays queued replies.
func (m *MockClient) NewChat(_ context.Context, system string) (ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ChatSystems = append(m.ChatSystems, system)

	if m.NewChatErr != nil {
		return nil, m.NewChatErr
	}

	return &mockChat{client: m}, nil
}

// ModelID returns "mock".
func (m *MockClient) ModelID() string {
	return "mock"
}

// ContentCallCount returns the number of GenerateContent calls made.
func (m *MockClient) ContentCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ContentCalls)
}

// ImageCallCount returns the number of GenerateImages calls made.
func (m *MockClient) ImageCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ImageCalls)
}

type mockChat struct {
	client *MockClient
}

func (c *mockChat) Send(_ context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		c.client.mu.Lock()
		c.client.ChatMessages = append(c.client.ChatMessages, message)

		if len(c.client.chatReplies) == 0 {
			c.client.mu.Unlock()
			yield("", &ErrService{Err: nil})
			return
		}
		reply := c.client.chatReplies[0]
		c.client.chatReplies = c.client.chatReplies[1:]
		c.client.mu.Unlock()

		// Stream the reply in two chunks so consumers exercise their
		// accumulation path.
		mid := len(reply) / 2
		if mid > 0 {
			if !yield(reply[:mid], nil) {
				return
			}
		}
		yield(reply[mid:], nil)
	}
}
