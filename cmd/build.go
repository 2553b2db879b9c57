package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <topic>",
	Short: "Build a certification without the TUI",
	Long:  "Runs the full generation pipeline headless and saves the result as the resumable session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := buildInputFromFlags(cmd, args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := newBuilder(cmd, st)
		if err != nil {
			return err
		}

		// Print each agent transition as the crew works.
		last := make(map[agents.ID]agents.Status)
		b.Tracker().OnChange(func() {
			for _, a := range b.Tracker().Snapshot() {
				if last[a.ID] == a.Status {
					continue
				}
				last[a.ID] = a.Status
				switch a.Status {
				case agents.StatusInProgress:
					fmt.Printf("  … %s\n", a.Name)
				case agents.StatusCompleted:
					fmt.Printf("  ✔ %s\n", a.Name)
				case agents.StatusError:
					fmt.Printf("  ✘ %s\n", a.Name)
				}
			}
		})

		fmt.Printf("Building certification for %q...\n", input.Topic)
		result, err := b.Build(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := writeArtifacts(out, result); err != nil {
				return fmt.Errorf("write artifacts: %w", err)
			}
			fmt.Printf("Artifacts written to %s\n", out)
		}

		cert := result.Certification
		fmt.Println()
		fmt.Println(cert.Title)
		fmt.Println(strings.Repeat("─", len(cert.Title)))
		fmt.Printf("Audience:  %s\n", cert.TargetAudience)
		fmt.Printf("Duration:  %.0f hours\n", cert.TotalDurationHours)
		fmt.Printf("Modules:   %d\n", len(cert.Modules))
		fmt.Printf("Quiz:      %d questions\n", len(cert.SampleQuiz))
		fmt.Printf("Badge:     %d bytes\n", len(result.Badge))
		fmt.Printf("Sources:   %d\n", len(cert.Citations))
		fmt.Println()
		fmt.Println("Saved. Run `certforge view` to inspect it, or `certforge` to open the tutor.")
		return nil
	},
}

// buildInputFromFlags validates the flags into a BuildInput.
func buildInputFromFlags(cmd *cobra.Command, topic string) (certification.BuildInput, error) {
	level, _ := cmd.Flags().GetString("level")
	hours, _ := cmd.Flags().GetInt("hours")
	persona, _ := cmd.Flags().GetString("persona")
	details, _ := cmd.Flags().GetString("details")

	input := certification.BuildInput{
		Topic:   strings.TrimSpace(topic),
		Details: details,
		Hours:   hours,
	}
	if input.Topic == "" {
		return input, fmt.Errorf("topic must not be empty")
	}
	if hours <= 0 {
		return input, fmt.Errorf("hours must be positive")
	}

	for _, l := range certification.Levels() {
		if strings.EqualFold(level, string(l)) {
			input.Level = l
		}
	}
	if input.Level == "" {
		return input, fmt.Errorf("unknown level %q (want one of: %s)", level, joinLevels())
	}

	for _, p := range certification.Personas() {
		if strings.EqualFold(persona, string(p)) {
			input.Persona = p
		}
	}
	if input.Persona == "" {
		return input, fmt.Errorf("unknown persona %q (want one of: %s)", persona, joinPersonas())
	}

	return input, nil
}

func joinLevels() string {
	parts := make([]string, 0, len(certification.Levels()))
	for _, l := range certification.Levels() {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ", ")
}

func joinPersonas() string {
	parts := make([]string, 0, len(certification.Personas()))
	for _, p := range certification.Personas() {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, ", ")
}

// writeArtifacts dumps the build output to a directory: the certification
// JSON, the badge, and one diagram per enriched module.
func writeArtifacts(dir string, result *builder.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(result.Certification, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "certification.json"), raw, 0o644); err != nil {
		return err
	}

	if len(result.Badge) > 0 {
		if err := os.WriteFile(filepath.Join(dir, "badge.png"), result.Badge, 0o644); err != nil {
			return err
		}
	}

	for _, mod := range result.Certification.Modules {
		if len(mod.DiagramImage) == 0 {
			continue
		}
		name := fmt.Sprintf("module-%d-diagram.png", mod.ModuleNumber)
		if err := os.WriteFile(filepath.Join(dir, name), mod.DiagramImage, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	buildCmd.Flags().String("level", "Intermediate", "Target audience level")
	buildCmd.Flags().Int("hours", 40, "Total duration in hours")
	buildCmd.Flags().String("persona", "Encouraging Coach", "Tutor persona")
	buildCmd.Flags().String("details", "", "Additional details for the research stage")
	buildCmd.Flags().String("out", "", "Directory to write certification.json, badge, and diagrams")
}
