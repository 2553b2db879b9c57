package tutor

import "github.com/certforge/certforge/internal/llm"

// ExplanationSchema defines the JSON shape of a dynamic explanation
// response: exactly three fields, all required.
var ExplanationSchema = &llm.Schema{
	Name:        "dynamic-explanation",
	Description: "A multi-modal tutor explanation with text, an image prompt, and a narration script",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanationText": map[string]any{
				"type":        "string",
				"description": "A fresh, detailed explanation of the concept, adhering to the tutor's persona.",
			},
			"whiteboardPrompt": map[string]any{
				"type":        "string",
				"description": "A concise, descriptive prompt for an image generation model to create a monochrome whiteboard diagram that visually represents the explanationText.",
			},
			"audioScript": map[string]any{
				"type":        "string",
				"description": "A conversational, engaging script, based on the explanationText, for a text-to-speech engine. It should sound like a tutor speaking, not just reading text.",
			},
		},
		"required": []any{"explanationText", "whiteboardPrompt", "audioScript"},
	},
}
