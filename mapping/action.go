// Package mapping holds the declarative model of an object-graph
// transformation: the closed set of mapping actions, the persistent
// configuration builder, the value resolver capability and the compiled,
// executable type map.
package mapping

// Args bundles the state visible to computes, resolvers and hooks during one
// mapping call. Source and Dest are always pointers to the configured types.
type Args struct {
	Source any
	Dest   any
	Ctx    *Context
}

// ComputeFunc produces a value for one destination member.
type ComputeFunc func(args Args) (any, error)

// HookFunc runs against the whole object pair for side effects only.
type HookFunc func(args Args) error

// ResolverFactory produces the resolver right before it is used, so resolvers
// referenced only by type can be instantiated through the call's Instantiator.
type ResolverFactory func(args Args) (Resolver, error)

// Action is one unit of mapping work. The implementation set is closed; the
// type map dispatches exhaustively on the concrete variants.
type Action interface {
	Kind() KindEnum
	// Target is the destination member this action claims, or "" for hooks.
	Target() string
}

// directAction copies the same-name member from source to destination.
// Member existence and type compatibility are checked at execution time.
type directAction struct {
	name string
}

func (a directAction) Kind() KindEnum { return KindDirect }
func (a directAction) Target() string { return a.name }

type inlineAction struct {
	target  string
	compute ComputeFunc
}

func (a inlineAction) Kind() KindEnum { return KindInline }
func (a inlineAction) Target() string { return a.target }

type resolverAction struct {
	target  string
	factory ResolverFactory
}

func (a resolverAction) Kind() KindEnum { return KindResolver }
func (a resolverAction) Target() string { return a.target }

// noopAction claims its target but never writes. It removes the member from
// remaining-member auto-mapping and from completeness-check failures.
type noopAction struct {
	target string
}

func (a noopAction) Kind() KindEnum { return KindNoop }
func (a noopAction) Target() string { return a.target }

type hookAction struct {
	phase PhaseEnum
	fn    HookFunc
}

func (a hookAction) Kind() KindEnum { return KindHook }
func (a hookAction) Target() string { return "" }
