package mapping

//go:generate go tool stringer -type=KindEnum -output=kind_string.go
//go:generate go tool stringer -type=PhaseEnum -output=phase_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindDirect
	KindInline
	KindResolver
	KindNoop
	KindHook

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

type PhaseEnum int

const (
	_ PhaseEnum = iota

	PhaseBefore
	PhaseAfter

	// PhaseTotal is a constant that represents the total number of phases defined
	PhaseTotal = int(iota)
)
