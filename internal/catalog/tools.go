package catalog

import (
	"net/http"

	"marketlens/internal/shape"
)

// CommonArgs are the shaping options every tool accepts in addition to its
// own filter arguments.
func CommonArgs() []ArgDef {
	return []ArgDef{
		{Name: "mode", Type: "string", Description: "Response density: compact (single JSON string), summary (structure overview), or detailed (full data)"},
		{Name: "format", Type: "string", Description: "Output format: json, table (Markdown) or csv"},
		{Name: "fields", Type: "array", Description: "Only include these fields in each result row"},
		{Name: "page", Type: "number", Description: "1-based page number"},
		{Name: "page_size", Type: "number", Description: "Number of items per page (default 50)"},
		{Name: "limit", Type: "number", Description: "Hard cap on the number of items considered before pagination"},
	}
}

// dateRangeArgs are shared by the historical endpoints.
func dateRangeArgs() []ArgDef {
	return []ArgDef{
		{Name: "date_from", Type: "string", Description: "Earliest date to include (YYYY-MM-DD)"},
		{Name: "date_to", Type: "string", Description: "Latest date to include (YYYY-MM-DD)"},
	}
}

// Tools returns the full tool catalog in its documented order. The slice
// and its entries are constructed fresh on each call; the registry built
// from it is the immutable process-wide copy.
func Tools() []ToolDef {
	return []ToolDef{
		{
			Name:           "get_congress_trading",
			Description:    "Stock transactions reported by members of the US Congress for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/congresstrading/{ticker}",
			RequiresTicker: true,
			Args: append(dateRangeArgs(),
				ArgDef{Name: "representative", Type: "string", Description: "Filter by representative name"},
				ArgDef{Name: "transaction_type", Type: "string", Description: "Filter by transaction type (Purchase or Sale)"},
			),
			Defaults:      shape.Defaults{Limit: 100},
			DefaultFields: []string{"Representative", "Transaction", "Amount", "TransactionDate", "Party"},
		},
		{
			Name:        "get_recent_congress_trading",
			Description: "Most recent congressional stock transactions across all tickers",
			Method:      http.MethodGet,
			Path:        "/beta/live/congresstrading",
			Args: []ArgDef{
				{Name: "representative", Type: "string", Description: "Filter by representative name"},
			},
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Ticker", "Representative", "Transaction", "Amount", "TransactionDate"},
		},
		{
			Name:           "get_senate_trading",
			Description:    "Stock transactions reported by US Senators for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/senatetrading/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 100},
			DefaultFields:  []string{"Senator", "Transaction", "Amount", "Date"},
		},
		{
			Name:           "get_house_trading",
			Description:    "Stock transactions reported by US House members for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/housetrading/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 100},
			DefaultFields:  []string{"Representative", "Transaction", "Amount", "Date"},
		},
		{
			Name:           "get_insider_trading",
			Description:    "SEC Form 4 insider transactions for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/insiders/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 100},
			DefaultFields:  []string{"Name", "AcquiredDisposed", "Shares", "PricePerShare", "Date"},
		},
		{
			Name:           "get_lobbying",
			Description:    "Corporate lobbying disclosures for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/lobbying/{ticker}",
			RequiresTicker: true,
			Args: append(dateRangeArgs(),
				ArgDef{Name: "min_amount", Type: "number", Description: "Only include filings at or above this amount in USD"},
			),
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Client", "Amount", "Issue", "Date"},
		},
		{
			Name:        "get_recent_lobbying",
			Description: "Most recent lobbying disclosures across all tickers",
			Method:      http.MethodGet,
			Path:        "/beta/live/lobbying",
			Args: []ArgDef{
				{Name: "query", Type: "string", Description: "Free-text search over issue descriptions"},
			},
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Ticker", "Client", "Amount", "Issue", "Date"},
		},
		{
			Name:           "get_gov_contracts",
			Description:    "US federal contract awards for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/govcontractsall/{ticker}",
			RequiresTicker: true,
			Args: append(dateRangeArgs(),
				ArgDef{Name: "agency", Type: "string", Description: "Filter by awarding agency"},
			),
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Agency", "Amount", "Description", "Date"},
		},
		{
			Name:        "get_recent_gov_contracts",
			Description: "Most recent federal contract awards across all tickers",
			Method:      http.MethodGet,
			Path:        "/beta/live/govcontractsall",
			Defaults:    shape.Defaults{Limit: 50},
			DefaultFields: []string{
				"Ticker", "Agency", "Amount", "Date",
			},
		},
		{
			Name:           "get_wsb_sentiment",
			Description:    "Daily r/wallstreetbets mention counts and sentiment for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/wallstreetbets/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 90},
			DefaultFields:  []string{"Date", "Mentions", "Rank", "Sentiment"},
		},
		{
			Name:          "get_recent_wsb_sentiment",
			Description:   "Yesterday's most-discussed tickers on r/wallstreetbets",
			Method:        http.MethodGet,
			Path:          "/beta/live/wallstreetbets",
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Ticker", "Mentions", "Rank", "Sentiment"},
		},
		{
			Name:           "get_off_exchange",
			Description:    "Off-exchange (dark pool) short volume for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/offexchange/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 90},
			DefaultFields:  []string{"Date", "OTC_Short", "OTC_Total", "DPI"},
		},
		{
			Name:           "get_patents",
			Description:    "Patent applications and grants associated with a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/allpatents/{ticker}",
			RequiresTicker: true,
			Args: append(dateRangeArgs(),
				ArgDef{Name: "query", Type: "string", Description: "Free-text search over patent titles and abstracts"},
			),
			Defaults:      shape.Defaults{Limit: 25, Mode: shape.ModeSummary},
			DefaultFields: []string{"Title", "Date", "IPC"},
		},
		{
			Name:           "get_political_beta",
			Description:    "Sensitivity of a ticker's returns to election probability shifts",
			Method:         http.MethodGet,
			Path:           "/beta/historical/politicalbeta/{ticker}",
			RequiresTicker: true,
			Defaults:       shape.Defaults{Limit: 50},
			DefaultFields:  []string{"Date", "PoliticalBeta"},
		},
		{
			Name:           "get_app_ratings",
			Description:    "Daily mobile app store rating counts for a ticker's apps",
			Method:         http.MethodGet,
			Path:           "/beta/historical/appratings/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 90},
			DefaultFields:  []string{"Date", "App", "Rating", "Count"},
		},
		{
			Name:           "get_google_trends",
			Description:    "Google search interest over time for a ticker's brands",
			Method:         http.MethodGet,
			Path:           "/beta/historical/googletrends/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 90},
			DefaultFields:  []string{"Date", "Value"},
		},
		{
			Name:           "get_wikipedia_views",
			Description:    "Daily Wikipedia page views for a ticker's company page",
			Method:         http.MethodGet,
			Path:           "/beta/historical/wikipedia/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 90},
			DefaultFields:  []string{"Date", "Views"},
		},
		{
			Name:           "get_corporate_flights",
			Description:    "Corporate jet flight activity for a ticker",
			Method:         http.MethodGet,
			Path:           "/beta/historical/flights/{ticker}",
			RequiresTicker: true,
			Args:           dateRangeArgs(),
			Defaults:       shape.Defaults{Limit: 50},
			DefaultFields:  []string{"Date", "Origin", "Destination", "Flights"},
		},
		{
			Name:           "get_etf_holdings",
			Description:    "ETFs holding a ticker, with weights and share counts",
			Method:         http.MethodGet,
			Path:           "/beta/etfholdings/{ticker}",
			RequiresTicker: true,
			Defaults:       shape.Defaults{Limit: 100},
			DefaultFields:  []string{"ETF", "Weight", "Shares", "Date"},
		},
		{
			Name:        "get_sec13f_changes",
			Description: "Largest recent institutional 13F position changes",
			Method:      http.MethodGet,
			Path:        "/beta/live/sec13fchanges",
			Args: []ArgDef{
				{Name: "fund", Type: "string", Description: "Filter by fund name"},
			},
			Defaults:      shape.Defaults{Limit: 50},
			DefaultFields: []string{"Ticker", "Fund", "Change", "Value", "Date"},
		},
		{
			Name:           "get_ticker_snapshot",
			Description:    "Aggregate snapshot of all datasets for a ticker, prunable to named sections",
			Method:         http.MethodGet,
			Path:           "/beta/snapshot/{ticker}",
			RequiresTicker: true,
			HasSections:    true,
			Args: []ArgDef{
				{Name: "sections", Type: "array", Description: "Sections to include: basic, trading, congress, sentiment, contracts, or all"},
			},
			Defaults: shape.Defaults{},
		},
	}
}
