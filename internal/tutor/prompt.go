package tutor

import (
	"fmt"
	"strings"

	"github.com/certforge/certforge/internal/certification"
)

// whiteboardFrameCount is the fixed number of sequential frames per
// explanation.
const whiteboardFrameCount = 4

// buildExplanationPrompt constructs the structured-explanation prompt for
// the given request and persona.
func buildExplanationPrompt(req Request, persona certification.TutorPersona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI Tutor with the persona of a %q.\n", persona)
	b.WriteString("A student has asked for an explanation of the following learning content:\n")
	fmt.Fprintf(&b, "**Context:** %s\n\n", req.Context())

	b.WriteString("Your task is to generate a multi-modal response in a single JSON object.\n")
	b.WriteString("1. **explanationText**: Write a fresh, detailed explanation of the core concepts from the provided context. Do NOT just repeat the description. Synthesize and teach. Adhere strictly to your persona.\n")
	b.WriteString("2. **whiteboardPrompt**: Based on your explanation, create a concise prompt for an image generation model. This prompt should describe a simple, monochrome whiteboard-style diagram to visually illustrate your explanation.\n")
	b.WriteString("3. **audioScript**: Based on your explanation, write a natural-sounding, conversational script for a text-to-speech engine. It should feel like you are speaking directly to the student. Start with a friendly greeting.\n")

	return b.String()
}

// buildWhiteboardPrompt constructs the frame-sequence image prompt around
// the model-authored whiteboard concept.
func buildWhiteboardPrompt(concept string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a sequence of %d simple, clean, monochrome whiteboard-style diagram images that build on each other to illustrate a concept.\n", whiteboardFrameCount)
	b.WriteString("**Style:** Minimalist digital whiteboard. Black line art on a white or very light gray background. Use simple shapes, arrows, and icons.\n")
	b.WriteString("**Sequence:** Image 1 should be the initial state. Image 2 adds more detail. Image 3 adds more. Image 4 is the complete diagram. The images must be visually coherent as a sequence.\n")
	fmt.Fprintf(&b, "**Concept:** %s\n", concept)

	return b.String()
}

// buildChatSystemInstruction constructs the persona-bound system
// instruction embedding the certification content the tutor may discuss.
func buildChatSystemInstruction(cert *certification.Certification, persona certification.TutorPersona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert AI Tutor for the %q certification program.\n", cert.Title)
	b.WriteString("Your purpose is to help learners understand the course material.\n\n")

	fmt.Fprintf(&b, "**Your assigned persona is: %s.** You must strictly adhere to this personality in all your responses.\n", persona)
	b.WriteString("- If the persona is \"Encouraging Coach\", be positive, supportive, and use motivational language.\n")
	b.WriteString("- If the persona is \"Formal Professor\", be precise, structured, and maintain a formal, academic tone.\n")
	b.WriteString("- If the persona is \"Witty Expert\", be clever, insightful, and use humor or analogies to explain concepts.\n\n")

	b.WriteString("You must only answer questions related to the certification content outlined below. If asked about unrelated topics, politely decline in the style of your persona and steer the conversation back to the course.\n")
	b.WriteString("When asked for a visual explanation or diagram, confirm that you can provide one, but the actual image will be generated separately.\n\n")

	b.WriteString("**Certification Overview:**\n")
	b.WriteString(cert.Overview)
	b.WriteString("\n\n**Modules:**\n")
	for _, m := range cert.Modules {
		outcomes := make([]string, len(m.LearningOutcomes))
		for i, o := range m.LearningOutcomes {
			outcomes[i] = o.Outcome
		}
		fmt.Fprintf(&b, "- **Module %d: %s**\n", m.ModuleNumber, m.Title)
		fmt.Fprintf(&b, "  - Description: %s\n", m.Description)
		fmt.Fprintf(&b, "  - Key Learning Outcomes: %s\n", strings.Join(outcomes, ", "))
	}

	return b.String()
}
