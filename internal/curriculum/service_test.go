package curriculum

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

func testInput() certification.BuildInput {
	return certification.BuildInput{
		Topic:   "Kubernetes Security",
		Details: "Focus on RBAC and network policies",
		Level:   certification.LevelExpert,
		Hours:   40,
		Persona: certification.PersonaWittyExpert,
	}
}

func validCertJSON() json.RawMessage {
	cert := certification.Certification{
		Title:              "Certified Kubernetes Security Specialist",
		TargetAudience:     "Platform engineers",
		TotalDurationHours: 40,
		Overview:           "A deep program.",
		Prerequisites:      []string{"Kubernetes basics"},
		Modules: []certification.Module{
			{
				ModuleNumber:  1,
				Title:         "RBAC",
				DurationHours: 8,
				Description:   "Roles and bindings.",
				LearningOutcomes: []certification.LearningOutcome{
					{Outcome: "Write Role manifests", Description: "Author least-privilege roles."},
				},
				Lab: certification.LabExercise{
					Title:       "Lock down a namespace",
					Task:        "Create roles",
					Deliverable: "YAML manifests",
					TutorTip:    "RBAC is just a guest list.",
				},
				TutorTip: "Think in verbs and nouns.",
			},
		},
		SampleQuiz: []certification.QuizQuestion{
			{Question: "What binds a Role to a user?", Options: []string{"RoleBinding", "Pod", "Service", "Secret"}, CorrectAnswer: "RoleBinding", Explanation: "RoleBindings grant roles."},
		},
		CapstoneProject: certification.CapstoneProject{
			Title:              "Harden a cluster",
			Description:        "End-to-end hardening.",
			EvaluationCriteria: []string{"RBAC correctness"},
			TutorTip:           "Start with the API server.",
		},
		IntroductoryVideoScenes: []certification.VideoConceptScene{
			{Scene: "Scene 1: Opening Title", Description: "Logo over cluster diagram."},
		},
	}
	raw, _ := json.Marshal(cert)
	return raw
}

func TestGenerate_TwoStages(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{
		Text: json.RawMessage("Detailed curriculum text about Kubernetes security."),
		Sources: []llm.GroundingSource{
			{Title: "CNCF Report", URI: "https://cncf.io/report"},
		},
	})
	m.AddContentResponse(llm.MockContentResponse{Text: validCertJSON()})

	svc := New(m, DefaultConfig())
	cert, err := svc.Generate(context.Background(), testInput(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.ContentCallCount() != 2 {
		t.Fatalf("expected 2 calls (research + structuring), got %d", m.ContentCallCount())
	}

	research := m.ContentCalls[0]
	if !research.Grounding {
		t.Fatal("research call must request grounding")
	}
	if research.Schema != nil {
		t.Fatal("research call must not constrain output to a schema")
	}
	if !strings.Contains(research.Prompt, "Kubernetes Security") {
		t.Fatal("research prompt must carry the topic")
	}
	if !strings.Contains(research.Prompt, "Do not output JSON yet") {
		t.Fatal("research prompt must forbid JSON output")
	}

	structuring := m.ContentCalls[1]
	if structuring.Grounding {
		t.Fatal("structuring call must not request grounding")
	}
	if structuring.Schema == nil || structuring.Schema.Name != "certification" {
		t.Fatal("structuring call must use the certification schema")
	}
	if !strings.Contains(structuring.Prompt, "Detailed curriculum text") {
		t.Fatal("structuring prompt must embed the research content")
	}
	if !strings.Contains(structuring.Prompt, "Do not add any new information") {
		t.Fatal("structuring prompt must forbid inventing content")
	}

	if cert.Title != "Certified Kubernetes Security Specialist" {
		t.Fatalf("unexpected title: %q", cert.Title)
	}
	if len(cert.Citations) != 1 || cert.Citations[0].URI != "https://cncf.io/report" {
		t.Fatalf("expected research citations attached, got %+v", cert.Citations)
	}
}

func TestGenerate_FiltersIncompleteCitations(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{
		Text: json.RawMessage("research text"),
		Sources: []llm.GroundingSource{
			{Title: "Complete", URI: "https://example.com/a"},
			{Title: "", URI: "https://example.com/b"},
			{Title: "No URI", URI: ""},
			{Title: "Also complete", URI: "https://example.com/c"},
		},
	})
	m.AddContentResponse(llm.MockContentResponse{Text: validCertJSON()})

	svc := New(m, DefaultConfig())
	cert, err := svc.Generate(context.Background(), testInput(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cert.Citations) != 2 {
		t.Fatalf("expected 2 complete citations, got %d: %+v", len(cert.Citations), cert.Citations)
	}
	if cert.Citations[0].Title != "Complete" || cert.Citations[1].Title != "Also complete" {
		t.Fatalf("citation order not preserved: %+v", cert.Citations)
	}
}

func TestGenerate_ResearchFailure(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Err: &llm.ErrService{Status: 500}})

	svc := New(m, DefaultConfig())
	_, err := svc.Generate(context.Background(), testInput(), nil)

	var resErr *ErrResearchFailed
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ErrResearchFailed, got: %v", err)
	}
	if m.ContentCallCount() != 1 {
		t.Fatalf("structuring must not run after research failure, got %d calls", m.ContentCallCount())
	}
}

func TestGenerate_StructuringFailure(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: json.RawMessage("research text")})
	m.AddContentResponse(llm.MockContentResponse{Err: &llm.ErrInvalidResponse{}})

	svc := New(m, DefaultConfig())
	_, err := svc.Generate(context.Background(), testInput(), nil)

	var structErr *ErrStructuringFailed
	if !errors.As(err, &structErr) {
		t.Fatalf("expected ErrStructuringFailed, got: %v", err)
	}
}

func TestGenerate_SubStatusSequence(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: json.RawMessage("research text")})
	m.AddContentResponse(llm.MockContentResponse{Text: validCertJSON()})

	type update struct {
		id   agents.ID
		text string
	}
	var updates []update

	svc := New(m, DefaultConfig())
	_, err := svc.Generate(context.Background(), testInput(), func(id agents.ID, text string) {
		updates = append(updates, update{id, text})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []update{
		{agents.MarketAnalysis, "Researching live web..."},
		{agents.MarketAnalysis, "Compiling data..."},
		{agents.MarketAnalysis, ""},
		{agents.CurriculumDesign, "Structuring content..."},
		{agents.CurriculumDesign, ""},
	}
	if len(updates) != len(want) {
		t.Fatalf("expected %d updates, got %d: %+v", len(want), len(updates), updates)
	}
	for i, w := range want {
		if updates[i] != w {
			t.Fatalf("update %d = %+v, want %+v", i, updates[i], w)
		}
	}
}

func TestBuildResearchPrompt_DefaultDetails(t *testing.T) {
	input := testInput()
	input.Details = ""
	prompt := buildResearchPrompt(input)
	if !strings.Contains(prompt, "No additional details provided.") {
		t.Fatal("empty details should fall back to placeholder")
	}
}
