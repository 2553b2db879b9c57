package llm

import (
	"context"
	"iter"
	"testing"
	"time"
)

// deadlineProbe records whether each call's context carried a deadline.
type deadlineProbe struct {
	contentDeadline time.Time
	contentHasDL    bool
	imageDeadline   time.Time
	imageHasDL      bool
	chatHasDL       bool
}

func (p *deadlineProbe) GenerateContent(ctx context.Context, _ ContentRequest) (*ContentResponse, error) {
	p.contentDeadline, p.contentHasDL = ctx.Deadline()
	return &ContentResponse{}, nil
}

func (p *deadlineProbe) GenerateImages(ctx context.Context, _ ImageRequest) ([][]byte, error) {
	p.imageDeadline, p.imageHasDL = ctx.Deadline()
	return [][]byte{[]byte("png")}, nil
}

func (p *deadlineProbe) NewChat(ctx context.Context, _ string) (ChatSession, error) {
	_, p.chatHasDL = ctx.Deadline()
	return probeChat{}, nil
}

func (p *deadlineProbe) ModelID() string { return "probe" }

type probeChat struct{}

func (probeChat) Send(context.Context, string) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

func TestWithTimeout_BoundsContentAndImageCalls(t *testing.T) {
	probe := &deadlineProbe{}
	c := WithTimeout(probe, 30*time.Second)

	before := time.Now()
	if _, err := c.GenerateContent(context.Background(), ContentRequest{Prompt: "p"}); err != nil {
		t.Fatalf("content: %v", err)
	}
	if _, err := c.GenerateImages(context.Background(), ImageRequest{Prompt: "p"}); err != nil {
		t.Fatalf("images: %v", err)
	}

	if !probe.contentHasDL {
		t.Fatal("content call must carry a deadline")
	}
	if !probe.imageHasDL {
		t.Fatal("image call must carry a deadline")
	}
	latest := before.Add(31 * time.Second)
	if probe.contentDeadline.After(latest) || probe.imageDeadline.After(latest) {
		t.Fatal("deadline must be within the configured timeout")
	}
}

func TestWithTimeout_KeepsTighterCallerDeadline(t *testing.T) {
	probe := &deadlineProbe{}
	c := WithTimeout(probe, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := c.GenerateContent(ctx, ContentRequest{Prompt: "p"}); err != nil {
		t.Fatalf("content: %v", err)
	}

	if probe.contentDeadline.After(time.Now().Add(2 * time.Second)) {
		t.Fatal("a tighter caller deadline must win")
	}
}

func TestWithTimeout_ChatIsUnbounded(t *testing.T) {
	probe := &deadlineProbe{}
	c := WithTimeout(probe, time.Second)

	if _, err := c.NewChat(context.Background(), "system"); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if probe.chatHasDL {
		t.Fatal("chat sessions must not carry a request deadline")
	}
}

func TestWithTimeout_ZeroIsPassthrough(t *testing.T) {
	probe := &deadlineProbe{}
	if c := WithTimeout(probe, 0); c != Client(probe) {
		t.Fatal("zero timeout must return the client unchanged")
	}
}
