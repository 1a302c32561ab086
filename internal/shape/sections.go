package shape

// SectionAll is the sentinel section name that disables section filtering.
const SectionAll = "all"

// SectionMap maps the named capability groups of the aggregate ticker
// snapshot to the snapshot keys each group exposes. It is a process-wide
// constant; the snapshot tool is the only endpoint that uses it.
var SectionMap = map[string][]string{
	"basic": {
		"ticker",
		"company_name",
		"sector",
		"industry",
		"market_cap",
		"shares_outstanding",
	},
	"trading": {
		"price",
		"volume",
		"off_exchange_short_volume",
		"off_exchange_short_ratio",
		"political_beta",
	},
	"congress": {
		"congress_trading",
		"senate_trading",
		"house_trading",
		"recent_congress_trades",
	},
	"sentiment": {
		"wsb_sentiment",
		"wsb_mentions",
		"wsb_rank",
		"twitter_followers",
		"wikipedia_views",
	},
	"contracts": {
		"gov_contracts",
		"gov_contracts_total",
		"lobbying",
		"recent_lobbying",
	},
}

// SectionNames returns the known section names in a fixed, documented order.
func SectionNames() []string {
	return []string{"basic", "trading", "congress", "sentiment", "contracts"}
}

// SelectSections prunes a ticker snapshot object down to the union of keys
// belonging to the named sections, preserving the object's own key order.
//
// An empty section list, or one containing the "all" sentinel, returns the
// object unchanged. Unknown section names contribute no keys and are not an
// error. If none of the requested sections match any key present on the
// object, the original object is returned unchanged: a caller-requested
// filter must never silently produce an empty response.
//
// Non-object data passes through unmodified; the snapshot endpoint returns
// a single flat object, not an array.
func SelectSections(data any, sectionNames []string) any {
	if len(sectionNames) == 0 {
		return data
	}
	for _, name := range sectionNames {
		if name == SectionAll {
			return data
		}
	}

	obj := asObject(data)
	if obj == nil {
		return data
	}

	wanted := make(map[string]bool)
	for _, name := range sectionNames {
		for _, key := range SectionMap[name] {
			wanted[key] = true
		}
	}

	selected := NewObject()
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if wanted[pair.Key] {
			selected.Set(pair.Key, pair.Value)
		}
	}

	if selected.Len() == 0 {
		return data
	}
	return selected
}
