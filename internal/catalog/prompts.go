package catalog

import (
	"fmt"
	"strings"
)

// Prompts returns the static prompt catalog.
func Prompts() []PromptDef {
	return []PromptDef{
		{
			Name:        "analyze_congress_activity",
			Description: "Guided analysis of congressional trading activity for a ticker",
			Args: []ArgDef{
				{Name: "ticker", Type: "string", Description: "Stock ticker symbol", Required: true},
			},
			Template: strings.TrimSpace(`
Analyze recent congressional trading activity for {{ticker}}.

1. Call get_congress_trading with ticker={{ticker}} and mode=summary to get
   an overview of transaction volume.
2. Pull the most recent detailed transactions (limit=25, fields=
   ["Representative","Transaction","Amount","TransactionDate","Party"]).
3. Compare against get_senate_trading and get_house_trading for the same
   ticker to separate chamber-specific patterns.
4. Summarize: net buying vs. selling, notable filers, clustering around
   dates, and any party skew. Flag transactions within 30 days of known
   catalysts.
`),
		},
		{
			Name:        "ticker_overview",
			Description: "Cross-dataset walkthrough of everything known about a ticker",
			Args: []ArgDef{
				{Name: "ticker", Type: "string", Description: "Stock ticker symbol", Required: true},
			},
			Template: strings.TrimSpace(`
Build a complete alternative-data overview for {{ticker}}.

Start with get_ticker_snapshot (sections=["all"]) for the aggregate view,
then drill into whichever datasets show activity: congressional trading,
lobbying, government contracts, retail sentiment, off-exchange volume and
patents. Use mode=summary on the first pass and request detailed data only
for the datasets worth expanding. Close with the three most significant
signals and what they imply.
`),
		},
		{
			Name:        "compare_political_exposure",
			Description: "Compare political exposure (beta, lobbying, contracts) across tickers",
			Args: []ArgDef{
				{Name: "tickers", Type: "string", Description: "Comma-separated list of ticker symbols", Required: true},
			},
			Template: strings.TrimSpace(`
Compare the political exposure of these tickers: {{tickers}}.

For each ticker, gather get_political_beta, get_lobbying (mode=summary)
and get_gov_contracts (mode=summary). Then rank the tickers by: political
beta magnitude, lobbying spend trend, and government-contract revenue
dependence. Present the comparison as a table and call out which ticker is
most sensitive to an election-driven policy shift.
`),
		},
	}
}

// Render substitutes the prompt's arguments into its template. Required
// arguments must be present and non-empty; placeholders of the form
// {{name}} with no supplied value are an error rather than being passed
// through silently.
func (p PromptDef) Render(args map[string]string) (string, error) {
	text := p.Template
	for _, arg := range p.Args {
		value := strings.TrimSpace(args[arg.Name])
		if value == "" {
			if arg.Required {
				return "", fmt.Errorf("prompt %s: %w: %s", p.Name, ErrMissingArg, arg.Name)
			}
			continue
		}
		text = strings.ReplaceAll(text, "{{"+arg.Name+"}}", value)
	}
	if idx := strings.Index(text, "{{"); idx >= 0 {
		return "", fmt.Errorf("prompt %s has unresolved placeholder near %q", p.Name, text[idx:min(idx+20, len(text))])
	}
	return text, nil
}
