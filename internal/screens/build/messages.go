package build

import (
	"time"

	"github.com/certforge/certforge/internal/builder"
)

// buildDoneMsg is sent when the pipeline finishes, successfully or not.
type buildDoneMsg struct {
	Result *builder.Result
	Err    error
}

// spinnerTickMsg drives the in-progress agent animation and picks up
// tracker changes made by pipeline goroutines.
type spinnerTickMsg time.Time
