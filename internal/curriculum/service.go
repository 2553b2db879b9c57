package curriculum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

// SubStatusFunc receives live activity updates for the named agent. A nil
// function disables reporting.
type SubStatusFunc func(id agents.ID, subStatus string)

// Service generates a full certification curriculum in two stages: a
// grounded research call that produces verbose plain text, then a
// structuring call that converts it to schema-conforming JSON. The split
// exists because the upstream API cannot combine search grounding with
// constrained output.
type Service struct {
	generator llm.ContentGenerator
	config    Config
}

// New creates a curriculum Service.
func New(generator llm.ContentGenerator, cfg Config) *Service {
	return &Service{generator: generator, config: cfg}
}

// Generate produces a certification for the given build input. Citations
// collected during research are attached to the result; entries missing a
// title or URI are discarded.
func (s *Service) Generate(ctx context.Context, input certification.BuildInput, report SubStatusFunc) (*certification.Certification, error) {
	if report == nil {
		report = func(agents.ID, string) {}
	}

	research, citations, err := s.research(ctx, input, report)
	if err != nil {
		return nil, &ErrResearchFailed{Err: err}
	}

	cert, err := s.structure(ctx, research, input.Persona, report)
	if err != nil {
		return nil, &ErrStructuringFailed{Err: err}
	}

	cert.Citations = citations
	return cert, nil
}

func (s *Service) research(ctx context.Context, input certification.BuildInput, report SubStatusFunc) (string, []certification.Citation, error) {
	ctx = llm.WithPurpose(ctx, "curriculum-research")

	report(agents.MarketAnalysis, "Researching live web...")

	resp, err := s.generator.GenerateContent(ctx, llm.ContentRequest{
		Prompt:    buildResearchPrompt(input),
		Grounding: true,
		MaxTokens: s.config.ResearchMaxTokens,
	})
	if err != nil {
		return "", nil, err
	}

	report(agents.MarketAnalysis, "Compiling data...")

	if len(resp.Text) == 0 {
		return "", nil, fmt.Errorf("research stage returned empty content")
	}

	citations := filterCitations(resp.Sources)

	report(agents.MarketAnalysis, "")
	return string(resp.Text), citations, nil
}

func (s *Service) structure(ctx context.Context, research string, persona certification.TutorPersona, report SubStatusFunc) (*certification.Certification, error) {
	ctx = llm.WithPurpose(ctx, "curriculum-structuring")

	report(agents.CurriculumDesign, "Structuring content...")

	resp, err := s.generator.GenerateContent(ctx, llm.ContentRequest{
		Prompt:    buildStructuringPrompt(research, persona),
		Schema:    CertificationSchema,
		MaxTokens: s.config.StructuringMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var cert certification.Certification
	if err := json.Unmarshal(resp.Text, &cert); err != nil {
		return nil, fmt.Errorf("failed to parse structured curriculum: %w", err)
	}

	report(agents.CurriculumDesign, "")
	return &cert, nil
}

// filterCitations keeps only sources with both a title and a URI.
func filterCitations(sources []llm.GroundingSource) []certification.Citation {
	var out []certification.Citation
	for _, src := range sources {
		if src.Title == "" || src.URI == "" {
			continue
		}
		out = append(out, certification.Citation{Title: src.Title, URI: src.URI})
	}
	return out
}
