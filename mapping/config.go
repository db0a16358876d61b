package mapping

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"object-mapper/member"
)

var (
	ErrUnmappedProperty = errors.New("destination member is not covered by the configuration")
	ErrInvalidSelector  = errors.New("selector does not name an exported destination member")
)

// Config is an immutable mapping configuration for one (source, destination)
// type pair. Every builder method returns a new value, so a partially built
// configuration can be branched into variants and shared across goroutines
// without synchronization.
//
// Selector contract violations and invalid resolver types are recorded in the
// configuration as it is built; the first one surfaces from TypeMap or
// AssertAllMapped, before any data flows.
type Config[S any, D any] struct {
	actions  []Action
	targeted map[string]struct{}
	strategy member.StrategyEnum
	err      error
}

// NewConfig creates an empty configuration for the S -> D pair.
func NewConfig[S any, D any]() Config[S, D] {
	return Config[S, D]{}
}

// Add appends an action and claims its target. Duplicate targets are not
// rejected: both actions stay in the sequence and execute in declared order,
// so the later write wins.
func (c Config[S, D]) Add(action Action) Config[S, D] {
	next := c.clone()
	next.actions = append(next.actions, action)
	if target := action.Target(); target != "" {
		next.targeted[target] = struct{}{}
	}

	return next
}

// Ignore marks a destination member as intentionally unmapped.
func (c Config[S, D]) Ignore(name string) Config[S, D] {
	if _, err := c.selector(name); err != nil {
		return c.fail(err)
	}

	return c.Add(noopAction{target: name})
}

// Map populates a destination member from an inline compute over the full
// mapping state.
func (c Config[S, D]) Map(name string, compute func(src *S, dst *D, ctx *Context) (any, error)) Config[S, D] {
	if _, err := c.selector(name); err != nil {
		return c.fail(err)
	}

	return c.Add(inlineAction{target: name, compute: func(args Args) (any, error) {
		return compute(args.Source.(*S), args.Dest.(*D), args.Ctx)
	}})
}

// MapFrom populates a destination member from a pure projection of the source.
func (c Config[S, D]) MapFrom(name string, project func(src *S) any) Config[S, D] {
	if _, err := c.selector(name); err != nil {
		return c.fail(err)
	}

	return c.Add(inlineAction{target: name, compute: func(args Args) (any, error) {
		return project(args.Source.(*S)), nil
	}})
}

// Use populates a destination member through an already constructed resolver.
// The resolver's declared result type must be assignable to the member.
func (c Config[S, D]) Use(name string, resolver Resolver) Config[S, D] {
	field, err := c.selector(name)
	if err != nil {
		return c.fail(err)
	}

	if resolver == nil {
		return c.fail(fmt.Errorf("%w: nil resolver for member %s", ErrTypeIsNotResolver, name))
	}

	if err := checkResult(field, resolver.ResultType()); err != nil {
		return c.fail(err)
	}

	return c.Add(resolverAction{target: name, factory: func(Args) (Resolver, error) {
		return resolver, nil
	}})
}

// UseFactory populates a destination member through a resolver built per
// call. The factory's result type is unknown until execution, so only the
// written value is checked, by the accessor.
func (c Config[S, D]) UseFactory(name string, factory ResolverFactory) Config[S, D] {
	if _, err := c.selector(name); err != nil {
		return c.fail(err)
	}

	return c.Add(resolverAction{target: name, factory: factory})
}

// UseType populates a destination member through a resolver referenced only
// by its type, instantiated at execution time via the call's Instantiator.
// The type must satisfy Resolver and declare a result assignable to the
// member; both are checked here, at configuration time.
func (c Config[S, D]) UseType(name string, rtype reflect.Type) Config[S, D] {
	field, err := c.selector(name)
	if err != nil {
		return c.fail(err)
	}

	concrete, err := ParseResolverType(rtype)
	if err != nil {
		return c.fail(err)
	}

	if err := checkResult(field, probeResultType(concrete)); err != nil {
		return c.fail(err)
	}

	return c.Add(resolverAction{target: name, factory: func(args Args) (Resolver, error) {
		instance, err := args.Ctx.Create(concrete)
		if err != nil {
			return nil, err
		}

		resolver, ok := instance.(Resolver)
		if !ok {
			return nil, fmt.Errorf("%w: instantiator produced %T for %s", ErrTypeIsNotResolver, instance, concrete)
		}

		return resolver, nil
	}})
}

// Before registers a whole-object hook that runs ahead of all member actions.
func (c Config[S, D]) Before(fn func(src *S, dst *D, ctx *Context) error) Config[S, D] {
	return c.Add(hookAction{phase: PhaseBefore, fn: wrapHook(fn)})
}

// After registers a whole-object hook that runs once all member actions are done.
func (c Config[S, D]) After(fn func(src *S, dst *D, ctx *Context) error) Config[S, D] {
	return c.Add(hookAction{phase: PhaseAfter, fn: wrapHook(fn)})
}

func wrapHook[S, D any](fn func(src *S, dst *D, ctx *Context) error) HookFunc {
	return func(args Args) error {
		return fn(args.Source.(*S), args.Dest.(*D), args.Ctx)
	}
}

// MapRemaining appends a same-name direct copy for every destination member
// not yet targeted, in declaration order. Intended as a final catch-all call.
func (c Config[S, D]) MapRemaining() Config[S, D] {
	dst, err := c.destType()
	if err != nil {
		return c.fail(err)
	}

	next := c
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Field(i)
		if !field.IsExported() {
			continue
		}

		if _, ok := next.targeted[field.Name]; ok {
			continue
		}

		next = next.Add(directAction{name: field.Name})
	}

	return next
}

// AssertAllMapped is a pass-through completeness gate: it fails on the first
// destination member, in declaration order, that no action has claimed.
func (c Config[S, D]) AssertAllMapped() (Config[S, D], error) {
	if c.err != nil {
		return c, c.err
	}

	dst, err := c.destType()
	if err != nil {
		return c, err
	}

	src := reflect.TypeFor[S]()
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Field(i)
		if !field.IsExported() {
			continue
		}

		if _, ok := c.targeted[field.Name]; !ok {
			return c, fmt.Errorf("%w: %s in %s -> %s", ErrUnmappedProperty, field.Name, src, dst)
		}
	}

	return c, nil
}

// Strategy selects the member accessor strategy for the compiled type map.
// The default is the compiled strategy.
func (c Config[S, D]) Strategy(s member.StrategyEnum) Config[S, D] {
	next := c.clone()
	next.strategy = s
	return next
}

// TypeMap compiles the configuration into its executable form. Any contract
// violation recorded while building surfaces here instead.
func (c Config[S, D]) TypeMap() (*TypeMap, error) {
	if c.err != nil {
		return nil, c.err
	}

	return &TypeMap{
		src:      reflect.TypeFor[S](),
		dst:      reflect.TypeFor[D](),
		actions:  slices.Clone(c.actions),
		provider: member.ForStrategy(c.strategy),
	}, nil
}

// Targeted reports whether a destination member is already spoken for.
func (c Config[S, D]) Targeted(name string) bool {
	_, ok := c.targeted[name]
	return ok
}

// Actions returns a snapshot of the action sequence in execution order.
func (c Config[S, D]) Actions() []Action {
	return slices.Clone(c.actions)
}

// clone is the copy-on-write step behind every builder method.
func (c Config[S, D]) clone() Config[S, D] {
	c.actions = slices.Clip(slices.Clone(c.actions))
	if c.targeted == nil {
		c.targeted = make(map[string]struct{})
	} else {
		c.targeted = maps.Clone(c.targeted)
	}

	return c
}

// fail records the first contract violation; later ones are dropped.
func (c Config[S, D]) fail(err error) Config[S, D] {
	next := c.clone()
	if next.err == nil {
		next.err = err
	}

	return next
}

// destType resolves the destination type parameter, rejecting non-structs.
func (c Config[S, D]) destType() (reflect.Type, error) {
	dst := reflect.TypeFor[D]()
	if dst.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: destination %s is not a struct", ErrInvalidSelector, dst)
	}

	return dst, nil
}

// selector resolves a member name against the destination type. Only
// exported, non-promoted members are valid targets.
func (c Config[S, D]) selector(name string) (reflect.StructField, error) {
	dst, err := c.destType()
	if err != nil {
		return reflect.StructField{}, err
	}

	field, ok := dst.FieldByName(name)
	if !ok || !field.IsExported() || len(field.Index) != 1 {
		return reflect.StructField{}, fmt.Errorf("%w: %s has no member %q", ErrInvalidSelector, dst, name)
	}

	return field, nil
}

// checkResult verifies a declared resolver result type against the target member.
func checkResult(field reflect.StructField, result reflect.Type) error {
	if result == nil || !result.AssignableTo(field.Type) {
		return fmt.Errorf("%w: result type %v is not assignable to member %s %s",
			ErrTypeIsNotResolver, result, field.Name, field.Type)
	}

	return nil
}
