package curriculum

import (
	"fmt"
	"strings"

	"github.com/certforge/certforge/internal/certification"
)

// buildResearchPrompt constructs the grounded research prompt. The research
// stage produces a verbose plain-text curriculum; it must not emit JSON.
func buildResearchPrompt(input certification.BuildInput) string {
	details := input.Details
	if details == "" {
		details = "No additional details provided."
	}

	var b strings.Builder

	b.WriteString("Act as a world-class AI training and certification architect with deep expertise in the requested topic.\n")
	b.WriteString("Your task is to generate an **exceptionally detailed, comprehensive, and lengthy** certification program curriculum based on the user's request.\n")
	b.WriteString("Leverage your search capabilities to gather the latest, most relevant, and authoritative information to build the content.\n")
	b.WriteString("The final output should be a structured curriculum document in plain text, ready to be converted into a structured format. Do not output JSON yet.\n\n")

	fmt.Fprintf(&b, "**Certification Topic:** %s\n", input.Topic)
	fmt.Fprintf(&b, "**Target Audience Level:** %s\n", input.Level)
	fmt.Fprintf(&b, "**Total Desired Length (hours):** %d\n", input.Hours)
	fmt.Fprintf(&b, "**Selected Tutor Persona:** %s\n", input.Persona)
	fmt.Fprintf(&b, "**Additional Details from User:** %s\n\n", details)

	b.WriteString("**Instructions:**\n")
	b.WriteString("1. **Deep Dive:** Research the topic thoroughly. Provide in-depth explanations for all concepts.\n")
	b.WriteString("2. **Structure:** Create a logical flow with an overview, prerequisites, and multiple detailed modules.\n")
	b.WriteString("3. **Module Content:** For each module, write a very detailed description, define specific learning outcomes with descriptions, and design a practical lab exercise.\n")
	b.WriteString("4. **Length and Detail:** Be verbose. The descriptions for the overview and each module should be multiple paragraphs long. The learning outcomes and lab tasks should be specific and clearly explained.\n")
	b.WriteString("5. **Assessments:** Create a relevant sample quiz and a comprehensive Capstone Project.\n")
	fmt.Fprintf(&b, "6. **Persona:** While this is the raw content generation phase, keep the **Tutor Persona (%s)** in mind for the tone of helpful tips.\n", input.Persona)

	return b.String()
}

// buildStructuringPrompt constructs the prompt for the second stage, which
// converts the research text into schema-conforming JSON without adding or
// summarizing content.
func buildStructuringPrompt(researchContent string, persona certification.TutorPersona) string {
	var b strings.Builder

	b.WriteString("Based on the following detailed curriculum content, your task is to convert it into a valid JSON object that strictly adheres to the provided schema.\n")
	b.WriteString("Do not add any new information, summarize, or change the meaning of the content. Your sole purpose is to structure the provided text accurately.\n")
	b.WriteString("Ensure all fields from the schema are populated based on the text.\n")
	fmt.Fprintf(&b, "All \"tutorTip\" fields must adopt the tone of the selected **Tutor Persona: %s**.\n\n", persona)

	b.WriteString("**Curriculum Content:**\n")
	b.WriteString("---\n")
	b.WriteString(researchContent)
	b.WriteString("\n---\n")

	return b.String()
}
