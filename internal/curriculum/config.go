package curriculum

// Config holds generation limits for the curriculum pipeline.
type Config struct {
	// ResearchMaxTokens caps the research stage output. Zero means
	// provider default; research output is intentionally verbose.
	ResearchMaxTokens int

	// StructuringMaxTokens caps the structuring stage output.
	StructuringMaxTokens int
}

// DefaultConfig returns generation limits suitable for full curricula.
func DefaultConfig() Config {
	return Config{
		ResearchMaxTokens:    0,
		StructuringMaxTokens: 0,
	}
}
