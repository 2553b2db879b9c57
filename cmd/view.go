package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the saved certification",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		session, err := st.SessionRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if session == nil {
			fmt.Println("No saved certification. Run `certforge build <topic>` first.")
			return nil
		}

		cert := session.Certification

		if asJSON {
			out, err := json.MarshalIndent(cert, "", "  ")
			if err != nil {
				return fmt.Errorf("encode certification: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(cert.Title)
		fmt.Println(strings.Repeat("═", len(cert.Title)))
		fmt.Printf("Audience:  %s\n", cert.TargetAudience)
		fmt.Printf("Duration:  %.0f hours\n", cert.TotalDurationHours)
		fmt.Printf("Tutor:     %s\n", session.Persona)
		fmt.Println()
		fmt.Println(cert.Overview)

		if len(cert.Prerequisites) > 0 {
			fmt.Println()
			fmt.Println("Prerequisites:")
			for _, p := range cert.Prerequisites {
				fmt.Printf("  • %s\n", p)
			}
		}

		fmt.Println()
		fmt.Println("Modules:")
		for _, mod := range cert.Modules {
			diagram := ""
			if len(mod.DiagramImage) > 0 {
				diagram = "  [diagram]"
			}
			fmt.Printf("  %d. %s (%.1fh)%s\n", mod.ModuleNumber, mod.Title, mod.DurationHours, diagram)
		}

		fmt.Println()
		fmt.Printf("Capstone:  %s\n", cert.CapstoneProject.Title)
		fmt.Printf("Quiz:      %d questions\n", len(cert.SampleQuiz))
		if len(session.Badge) > 0 {
			fmt.Printf("Badge:     %d bytes (PNG)\n", len(session.Badge))
		}

		if len(cert.Citations) > 0 {
			fmt.Println()
			fmt.Println("Sources:")
			for _, c := range cert.Citations {
				fmt.Printf("  • %s\n    %s\n", c.Title, c.URI)
			}
		}

		return nil
	},
}

func init() {
	viewCmd.Flags().Bool("json", false, "Print the raw certification JSON")
}
