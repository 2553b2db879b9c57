package curriculum

import "github.com/certforge/certforge/internal/llm"

// CertificationSchema defines the JSON schema the structuring call must
// produce. It mirrors the certification domain model field for field.
var CertificationSchema = &llm.Schema{
	Name:        "certification",
	Description: "A complete professional certification program curriculum",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "The official title of the certification.",
			},
			"targetAudience": map[string]any{
				"type":        "string",
				"description": "A description of the ideal candidate for this certification.",
			},
			"totalDurationHours": map[string]any{
				"type":        "number",
				"description": "The total estimated number of hours to complete the certification.",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "A detailed paragraph summarizing the certification's purpose and scope.",
			},
			"prerequisites": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "A list of required skills or knowledge before starting.",
			},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"moduleNumber":  map[string]any{"type": "integer"},
						"title":         map[string]any{"type": "string"},
						"durationHours": map[string]any{"type": "number"},
						"description":   map[string]any{"type": "string"},
						"learningOutcomes": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"outcome":     map[string]any{"type": "string"},
									"description": map[string]any{"type": "string"},
								},
								"required": []any{"outcome", "description"},
							},
						},
						"lab": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":       map[string]any{"type": "string"},
								"task":        map[string]any{"type": "string"},
								"deliverable": map[string]any{"type": "string"},
								"tutorTip": map[string]any{
									"type":        "string",
									"description": "A concise, helpful tip for the student regarding this specific lab exercise. The tone should match the selected Tutor Persona.",
								},
							},
							"required": []any{"title", "task", "deliverable", "tutorTip"},
						},
						"tutorTip": map[string]any{
							"type":        "string",
							"description": "A concise, helpful tip for the student about the overall module. The tone should match the selected Tutor Persona.",
						},
					},
					"required": []any{"moduleNumber", "title", "durationHours", "description", "learningOutcomes", "lab", "tutorTip"},
				},
			},
			"sampleQuiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":      map[string]any{"type": "string"},
						"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"correctAnswer": map[string]any{"type": "string"},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief explanation of why the correct answer is right.",
						},
					},
					"required": []any{"question", "options", "correctAnswer", "explanation"},
				},
			},
			"capstoneProject": map[string]any{
				"type":        "object",
				"description": "A final project to assess the student's comprehensive understanding and practical skills.",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"evaluationCriteria": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "List of criteria to grade the project.",
					},
					"tutorTip": map[string]any{
						"type":        "string",
						"description": "A final tip for the capstone project. The tone should match the selected Tutor Persona.",
					},
				},
				"required": []any{"title", "description", "evaluationCriteria", "tutorTip"},
			},
			"introductoryVideoConcept": map[string]any{
				"type":        "array",
				"description": "A short, scene-by-scene storyboard concept for an introductory video for the certification.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"scene": map[string]any{
							"type":        "string",
							"description": "e.g., 'Scene 1: Opening Title'",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "A description of the visuals and narration for this scene.",
						},
					},
					"required": []any{"scene", "description"},
				},
			},
		},
		"required": []any{"title", "targetAudience", "totalDurationHours", "overview", "prerequisites", "modules", "sampleQuiz", "capstoneProject", "introductoryVideoConcept"},
	},
}
