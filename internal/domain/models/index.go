package models

// Index is the system's own stable name for a tracked market index,
// independent of any provider ticker.
type Index string

const (
	IndexSP500    Index = "sp500"
	IndexNasdaq   Index = "nasdaq"
	IndexDowJones Index = "dow_jones"
	IndexVIX      Index = "vix"
	IndexUS10Y    Index = "us10y"
)

// IndexSymbolMap maps each tracked Index to the provider's native ticker.
// Static; ticker values are unique per index.
var IndexSymbolMap = map[Index]string{
	IndexSP500:    "^GSPC",
	IndexNasdaq:   "^IXIC",
	IndexDowJones: "^DJI",
	IndexVIX:      "^VIX",
	IndexUS10Y:    "^TNX",
}

// IndexSymbols returns the provider tickers of all tracked indices.
func IndexSymbols() []string {
	out := make([]string, 0, len(IndexSymbolMap))
	for _, s := range IndexSymbolMap {
		out = append(out, s)
	}
	return out
}

// IndexBySymbol resolves a provider ticker back to its Index.
func IndexBySymbol(symbol string) (Index, bool) {
	for idx, s := range IndexSymbolMap {
		if s == symbol {
			return idx, true
		}
	}
	return "", false
}
