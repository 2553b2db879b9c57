package chat

import (
	"time"

	"github.com/certforge/certforge/internal/tutor"
)

// deltaMsg is one streamed chunk of the tutor's reply.
type deltaMsg struct {
	Text string
}

// replyDoneMsg ends the current streamed reply.
type replyDoneMsg struct {
	Err error
}

// explainDoneMsg is sent when an on-demand explanation finishes.
type explainDoneMsg struct {
	Explanation *tutor.Explanation
	Err         error
}

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg time.Time
