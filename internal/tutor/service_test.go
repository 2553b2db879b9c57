package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	out := explanationOutput{
		ExplanationText:  "Terraform state maps resources to reality.",
		WhiteboardPrompt: "A box labeled state file with arrows to cloud resources",
		AudioScript:      "Hey there! Let's talk about state.",
	}
	raw, _ := json.Marshal(out)
	return raw
}

func testModule() certification.Module {
	return certification.Module{
		ModuleNumber: 1,
		Title:        "Terraform State",
		Description:  "How Terraform tracks infrastructure.",
	}
}

func TestExplain_FullPipeline(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: validExplanationJSON()})
	m.AddImageResponse(llm.MockImageResponse{Images: [][]byte{
		[]byte("f1"), []byte("f2"), []byte("f3"), []byte("f4"),
	}})

	svc := New(m, m, m)
	exp, err := svc.Explain(context.Background(), ModuleRequest{Module: testModule()}, certification.PersonaEncouragingCoach)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exp.Text != "Terraform state maps resources to reality." {
		t.Fatalf("unexpected text: %q", exp.Text)
	}
	if exp.NarrationScript == "" {
		t.Fatal("narration script missing")
	}
	if len(exp.WhiteboardFrames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(exp.WhiteboardFrames))
	}

	content := m.ContentCalls[0]
	if content.Schema == nil || content.Schema.Name != "dynamic-explanation" {
		t.Fatal("explanation call must use the dynamic-explanation schema")
	}
	if !strings.Contains(content.Prompt, "Encouraging Coach") {
		t.Fatal("prompt must carry the persona")
	}
	if !strings.Contains(content.Prompt, "Terraform State") {
		t.Fatal("prompt must carry the module context")
	}

	img := m.ImageCalls[0]
	if img.Count != 4 || img.AspectRatio != "16:9" {
		t.Fatalf("unexpected frame request: %+v", img)
	}
	if !strings.Contains(img.Prompt, "A box labeled state file") {
		t.Fatal("frame prompt must embed the model-authored whiteboard concept")
	}
	if !strings.Contains(img.Prompt, "build on each other") {
		t.Fatal("frame prompt must instruct a progressive sequence")
	}
}

func TestExplain_ImageFailureIsNotFatal(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: validExplanationJSON()})
	m.AddImageResponse(llm.MockImageResponse{Err: &llm.ErrService{Status: 500}})

	svc := New(m, m, m)
	exp, err := svc.Explain(context.Background(), ModuleRequest{Module: testModule()}, certification.PersonaFormalProfessor)
	if err != nil {
		t.Fatalf("image failure must not fail the explanation: %v", err)
	}
	if exp.Text == "" || exp.NarrationScript == "" {
		t.Fatal("text and narration must survive an image failure")
	}
	if len(exp.WhiteboardFrames) != 0 {
		t.Fatalf("expected no frames, got %d", len(exp.WhiteboardFrames))
	}
}

func TestExplain_TextFailure(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Err: &llm.ErrInvalidResponse{}})

	svc := New(m, m, m)
	_, err := svc.Explain(context.Background(), ModuleRequest{Module: testModule()}, certification.PersonaWittyExpert)

	var expErr *ErrExplanationFailed
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ErrExplanationFailed, got: %v", err)
	}
	if m.ImageCallCount() != 0 {
		t.Fatal("frame generation must not run after a text failure")
	}
}

func TestVideoConceptRequest_Context(t *testing.T) {
	req := VideoConceptRequest{
		Scenes: []certification.VideoConceptScene{
			{Scene: "Scene 1: Opening Title", Description: "Logo appears."},
			{Scene: "Scene 2: Overview", Description: "Course map."},
		},
	}
	ctx := req.Context()
	if !strings.Contains(ctx, "Introductory Video Concept") {
		t.Fatal("context must name the video concept")
	}
	if !strings.Contains(ctx, "Scene 1: Opening Title: Logo appears.") {
		t.Fatalf("context must join scenes: %q", ctx)
	}
}

func TestExplain_TopicRequest(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: validExplanationJSON()})
	m.AddImageResponse(llm.MockImageResponse{Images: [][]byte{[]byte("f1")}})

	svc := New(m, m, m)
	_, err := svc.Explain(context.Background(), TopicRequest{Topic: "how does drift detection work?"}, certification.PersonaEncouragingCoach)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The free-form question stands in for both title and description.
	prompt := m.ContentCalls[0].Prompt
	if strings.Count(prompt, "how does drift detection work?") != 2 {
		t.Fatalf("topic must fill title and description: %q", prompt)
	}
}

func TestNewChat_SystemInstruction(t *testing.T) {
	m := llm.NewMockClient()

	cert := &certification.Certification{
		Title:    "Certified Go Developer",
		Overview: "A thorough program.",
		Modules: []certification.Module{
			{
				ModuleNumber: 1,
				Title:        "Concurrency",
				Description:  "Goroutines and channels.",
				LearningOutcomes: []certification.LearningOutcome{
					{Outcome: "Use channels"},
					{Outcome: "Avoid data races"},
				},
			},
		},
	}

	svc := New(m, m, m)
	if _, err := svc.NewChat(context.Background(), cert, certification.PersonaWittyExpert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.ChatSystems) != 1 {
		t.Fatalf("expected 1 chat session, got %d", len(m.ChatSystems))
	}
	system := m.ChatSystems[0]
	for _, want := range []string{
		"Certified Go Developer",
		"Witty Expert",
		"A thorough program.",
		"Module 1: Concurrency",
		"Use channels, Avoid data races",
	} {
		if !strings.Contains(system, want) {
			t.Fatalf("system instruction missing %q", want)
		}
	}
}
