package assets

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

// Service generates the visual assets for a certification: the credential
// badge and one concept diagram per module.
type Service struct {
	images llm.ImageGenerator
	config Config
}

// New creates an asset Service.
func New(images llm.ImageGenerator, cfg Config) *Service {
	return &Service{images: images, config: cfg}
}

// Result holds the generated assets. Diagrams is keyed by module number;
// modules whose diagram could not be produced are absent.
type Result struct {
	Badge    []byte
	Diagrams map[int][]byte
}

// Apply writes the diagrams onto their modules. Modules without a diagram
// are left untouched.
func (r *Result) Apply(cert *certification.Certification) {
	for i := range cert.Modules {
		if img, ok := r.Diagrams[cert.Modules[i].ModuleNumber]; ok {
			cert.Modules[i].DiagramImage = img
		}
	}
}

// ErrBadgeFailed indicates the credential badge could not be generated.
// Badge failure aborts enrichment; diagram failures do not.
type ErrBadgeFailed struct {
	Err error
}

func (e *ErrBadgeFailed) Error() string {
	return "failed to generate the certification badge"
}

func (e *ErrBadgeFailed) Unwrap() error { return e.Err }

// Enrich generates the badge and all module diagrams. The badge is produced
// concurrently with the diagrams; diagrams run strictly one module at a
// time to stay under the image API's rate limits. A module whose diagram
// cannot be generated is skipped, not fatal.
func (s *Service) Enrich(ctx context.Context, cert *certification.Certification) (*Result, error) {
	badgeCh := make(chan badgeResult, 1)
	go func() {
		badge, err := s.generateBadge(ctx, cert.Title)
		badgeCh <- badgeResult{badge: badge, err: err}
	}()

	diagrams := make(map[int][]byte, len(cert.Modules))
	for _, module := range cert.Modules {
		if err := ctx.Err(); err != nil {
			<-badgeCh
			return nil, err
		}
		img, err := s.generateDiagram(ctx, module)
		if err != nil {
			// Give up on this module's diagram and move on.
			continue
		}
		diagrams[module.ModuleNumber] = img
	}

	br := <-badgeCh
	if br.err != nil {
		return nil, &ErrBadgeFailed{Err: br.err}
	}

	return &Result{Badge: br.badge, Diagrams: diagrams}, nil
}

type badgeResult struct {
	badge []byte
	err   error
}

func (s *Service) generateBadge(ctx context.Context, title string) ([]byte, error) {
	ctx = llm.WithPurpose(ctx, "badge")

	images, err := s.images.GenerateImages(ctx, llm.ImageRequest{
		Prompt:      buildBadgePrompt(title),
		Count:       1,
		AspectRatio: "1:1",
	})
	if err != nil {
		return nil, err
	}
	return images[0], nil
}

// generateDiagram produces one module diagram, retrying rate-limit errors
// with exponential backoff. Any other error fails immediately.
func (s *Service) generateDiagram(ctx context.Context, module certification.Module) ([]byte, error) {
	ctx = llm.WithPurpose(ctx, "diagram")

	req := llm.ImageRequest{
		Prompt:      buildDiagramPrompt(module),
		Count:       1,
		AspectRatio: "16:9",
	}

	var lastErr error
	for attempt := range s.config.MaxAttempts {
		images, err := s.images.GenerateImages(ctx, req)
		if err == nil {
			return images[0], nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if !llm.IsRateLimit(err) {
			return nil, err
		}
		if attempt == s.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

// backoff computes the wait before the next attempt.
func (s *Service) backoff(attempt int, err error) time.Duration {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(s.config.InitialWait) * math.Pow(s.config.Multiplier, float64(attempt))
	if wait > float64(s.config.MaxWait) {
		wait = float64(s.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
