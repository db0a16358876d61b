package mapping

import (
	"fmt"
	"reflect"

	"object-mapper/member"
)

// TypeMap is the compiled, executable form of a configuration for one
// (source, destination) type pair. It owns a snapshot of the ordered action
// sequence and is immutable once built.
type TypeMap struct {
	src, dst reflect.Type
	actions  []Action
	provider member.Provider
}

// Source returns the source struct type of the pair.
func (tm *TypeMap) Source() reflect.Type { return tm.src }

// Dest returns the destination struct type of the pair.
func (tm *TypeMap) Dest() reflect.Type { return tm.dst }

// Execute runs the action sequence against one (source, destination) pair.
// Both instances must be pointers to the configured types. Hooks bracket the
// member pass: all before hooks run first, then member actions in declared
// order, then all after hooks, regardless of where the hooks were declared
// relative to member actions.
func (tm *TypeMap) Execute(src, dst any, ctx *Context) error {
	args := Args{Source: src, Dest: dst, Ctx: ctx}

	if err := tm.runHooks(args, PhaseBefore); err != nil {
		return err
	}

	for _, act := range tm.actions {
		if err := tm.runMember(act, args); err != nil {
			return err
		}
	}

	return tm.runHooks(args, PhaseAfter)
}

func (tm *TypeMap) runMember(act Action, args Args) error {
	switch a := act.(type) {
	default:
		return fmt.Errorf("unexpected mapping action variant %s", act.Kind())

	case noopAction, hookAction:
		// noop claims its target without writing; hooks run in the bracket passes
		return nil

	case directAction:
		return tm.copyMember(args.Source, args.Dest, a.name)

	case inlineAction:
		value, err := a.compute(args)
		if err != nil {
			return fmt.Errorf("compute for member %s: %w", a.target, err)
		}

		return tm.write(args.Dest, a.target, value)

	case resolverAction:
		resolver, err := a.factory(args)
		if err != nil {
			return fmt.Errorf("resolver for member %s: %w", a.target, err)
		}

		value, err := resolver.Resolve(args)
		if err != nil {
			return fmt.Errorf("resolver for member %s: %w", a.target, err)
		}

		return tm.write(args.Dest, a.target, value)
	}
}

func (tm *TypeMap) runHooks(args Args, phase PhaseEnum) error {
	for _, act := range tm.actions {
		hook, ok := act.(hookAction)
		if !ok || hook.phase != phase {
			continue
		}

		if err := hook.fn(args); err != nil {
			return fmt.Errorf("%s hook: %w", phase, err)
		}
	}

	return nil
}

func (tm *TypeMap) copyMember(src, dst any, name string) error {
	if direct, ok := tm.provider.(member.DirectProvider); ok {
		copier, err := direct.Copier(tm.src, tm.dst, name)
		if err != nil {
			return err
		}

		return copier(src, dst)
	}

	get, err := tm.provider.Getter(tm.src, name)
	if err != nil {
		return err
	}

	value, err := get(src)
	if err != nil {
		return err
	}

	return tm.write(dst, name, value)
}

func (tm *TypeMap) write(dst any, name string, value any) error {
	set, err := tm.provider.Setter(tm.dst, name)
	if err != nil {
		return err
	}

	return set(dst, value)
}
