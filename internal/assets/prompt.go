package assets

import (
	"fmt"
	"strings"

	"github.com/certforge/certforge/internal/certification"
)

// buildBadgePrompt constructs the prompt for the 1:1 certification badge.
func buildBadgePrompt(certificationTitle string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a professional, modern, and visually appealing certification badge design for a program titled: %q.\n\n", certificationTitle)
	b.WriteString("**Design Requirements:**\n")
	b.WriteString("- Style: Clean, corporate, tech-focused. Use a sophisticated color palette (e.g., deep blues, silvers, purples, golds).\n")
	b.WriteString("- Shape: Circular or a modern shield shape.\n")
	b.WriteString("- Elements: Incorporate abstract geometric patterns or circuit board motifs subtly in the background. Include a central icon that abstractly represents the topic. The text should be clear and legible.\n")
	b.WriteString("- Text: Must include the certification title, but keep it concise if necessary for the design.\n")
	b.WriteString("- Do NOT include any placeholder text like \"Company Name\" or \"Recipient Name\".\n")
	b.WriteString("- Final Output: The image should feel like a prestigious digital credential.\n")

	return b.String()
}

// buildDiagramPrompt constructs the prompt for a 16:9 module concept diagram.
func buildDiagramPrompt(module certification.Module) string {
	var b strings.Builder

	b.WriteString("Create a professional, abstract, technical diagram representing the core concepts of a course module.\n\n")
	fmt.Fprintf(&b, "**Module Title:** %q\n", module.Title)
	fmt.Fprintf(&b, "**Module Description:** %q\n\n", module.Description)
	b.WriteString("**Design Requirements:**\n")
	b.WriteString("- Style: Minimalist, clean, tech-focused infographic.\n")
	b.WriteString("- Content: The diagram should visually abstract the key ideas from the module description, not just be a decorative image. Think flowcharts, interconnected nodes, or conceptual graphics.\n")
	b.WriteString("- Color Palette: Use a sophisticated and consistent palette of deep blues, purples, teals, and white.\n")
	b.WriteString("- Text: Do NOT include any readable text or labels on the image. The diagram should be purely visual.\n")
	b.WriteString("- Shape: The overall composition should be balanced and aesthetically pleasing.\n")

	return b.String()
}
