package member

import (
	"reflect"
	"sync"
)

type accessKey struct {
	rtype reflect.Type
	name  string
	write bool
}

type copyKey struct {
	src, dst reflect.Type
	name     string
}

// Cached wraps a provider with build-once-publish-immutable accessor caches.
// Two goroutines racing to build the same accessor both end up observing a
// usable one; the losing build is wasted work, not a correctness hazard.
// Lookup errors are not cached: misconfiguration is fail-fast anyway.
type Cached struct {
	inner     Provider
	accessors sync.Map // accessKey -> Getter | Setter
	copiers   sync.Map // copyKey -> Copier
}

var (
	_ Provider       = (*Cached)(nil)
	_ DirectProvider = (*Cached)(nil)
)

func NewCached(inner Provider) *Cached {
	if inner == nil {
		panic("cached accessor provider requires an inner provider")
	}

	return &Cached{inner: inner}
}

func (c *Cached) Getter(rtype reflect.Type, name string) (Getter, error) {
	key := accessKey{rtype: rtype, name: name}
	if hit, ok := c.accessors.Load(key); ok {
		return hit.(Getter), nil
	}

	built, err := c.inner.Getter(rtype, name)
	if err != nil {
		return nil, err
	}

	won, _ := c.accessors.LoadOrStore(key, built)
	return won.(Getter), nil
}

func (c *Cached) Setter(rtype reflect.Type, name string) (Setter, error) {
	key := accessKey{rtype: rtype, name: name, write: true}
	if hit, ok := c.accessors.Load(key); ok {
		return hit.(Setter), nil
	}

	built, err := c.inner.Setter(rtype, name)
	if err != nil {
		return nil, err
	}

	won, _ := c.accessors.LoadOrStore(key, built)
	return won.(Setter), nil
}

// Copier caches fused copies when the inner provider supports them. Providers
// without DirectProvider make Cached report no support either, so callers can
// probe with a type assertion on the provider they were handed.
func (c *Cached) Copier(srcType, dstType reflect.Type, name string) (Copier, error) {
	direct, ok := c.inner.(DirectProvider)
	if !ok {
		get, err := c.Getter(srcType, name)
		if err != nil {
			return nil, err
		}

		set, err := c.Setter(dstType, name)
		if err != nil {
			return nil, err
		}

		return func(src, dst any) error {
			value, err := get(src)
			if err != nil {
				return err
			}
			return set(dst, value)
		}, nil
	}

	key := copyKey{src: srcType, dst: dstType, name: name}
	if hit, ok := c.copiers.Load(key); ok {
		return hit.(Copier), nil
	}

	built, err := direct.Copier(srcType, dstType, name)
	if err != nil {
		return nil, err
	}

	won, _ := c.copiers.LoadOrStore(key, built)
	return won.(Copier), nil
}
