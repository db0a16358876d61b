package mapping

import "reflect"

// Instantiator creates instances of requested types. It is supplied by the
// embedding application and may be a plain constructor call or a full
// dependency-injection resolution. Given a pointer type it must return a
// pointer to a fresh value; given a non-pointer type, a zero value of it.
type Instantiator interface {
	Create(rtype reflect.Type) (any, error)
}

// Runtime is the part of the mapper runtime visible to nested mapping calls
// made from computes, resolvers and hooks.
type Runtime interface {
	MapTo(src any, dst reflect.Type) (any, error)
}

// Context carries the ambient state of one top-level mapping call. It is
// created per call, immutable for its duration, and discarded after.
type Context struct {
	instantiator Instantiator
	runtime      Runtime
}

// NewContext binds an instantiator and an optional runtime back-reference.
func NewContext(inst Instantiator, rt Runtime) *Context {
	if inst == nil {
		panic("mapping context requires an instantiator")
	}

	return &Context{instantiator: inst, runtime: rt}
}

func (c *Context) Instantiator() Instantiator { return c.instantiator }

// Runtime returns the mapper runtime backing this call, or nil when the type
// map is executed standalone.
func (c *Context) Runtime() Runtime { return c.runtime }

// Create instantiates a type through the call's instantiator.
func (c *Context) Create(rtype reflect.Type) (any, error) {
	return c.instantiator.Create(rtype)
}
