package member

//go:generate go tool stringer -type=StrategyEnum -output=strategy_string.go

type StrategyEnum int

const (
	StrategyCompiled StrategyEnum = iota // index-resolved accessors, the production default
	StrategyReflect                      // by-name resolution on every call, correctness reference

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// providers holds one shared cached provider per strategy, indexed by enum
// value. Both strategies are behaviorally identical; only the per-call cost
// differs.
var providers = [StrategyTotal]Provider{
	StrategyCompiled: NewCached(CompiledProvider{}),
	StrategyReflect:  NewCached(ReflectProvider{}),
}

// ForStrategy returns the shared cached provider for a strategy. Out-of-range
// values fall back to the compiled default.
func ForStrategy(s StrategyEnum) Provider {
	if s < 0 || int(s) >= StrategyTotal {
		s = StrategyCompiled
	}

	return providers[s]
}
