package llm

import "strings"

// ModelCost is the published per-token pricing for a model, in USD per
// million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the estimated USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1e6*c.InputPerMTok +
		float64(outputTokens)/1e6*c.OutputPerMTok
}

// modelCosts maps model ID prefixes to pricing. Prefix matching tolerates
// dated model suffixes. Image models are priced per image, not per token,
// and are intentionally absent.
var modelCosts = []struct {
	prefix string
	cost   ModelCost
}{
	{"gemini-2.5-pro", ModelCost{InputPerMTok: 1.25, OutputPerMTok: 10.00}},
	{"gemini-2.5-flash", ModelCost{InputPerMTok: 0.30, OutputPerMTok: 2.50}},
	{"claude-sonnet-4", ModelCost{InputPerMTok: 3.00, OutputPerMTok: 15.00}},
	{"claude-haiku-4-5", ModelCost{InputPerMTok: 1.00, OutputPerMTok: 5.00}},
	{"gpt-4o-mini", ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.60}},
	{"gpt-4o", ModelCost{InputPerMTok: 2.50, OutputPerMTok: 10.00}},
}

// LookupCost returns pricing for the given model ID, or nil when pricing is
// unknown.
func LookupCost(model string) *ModelCost {
	for _, mc := range modelCosts {
		if strings.HasPrefix(model, mc.prefix) {
			cost := mc.cost
			return &cost
		}
	}
	return nil
}
