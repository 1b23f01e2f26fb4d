package jsbind

import (
	"maps"
	"slices"

	"github.com/dop251/goja"
)

// hostObject backs a goja dynamic object with a hostcanvas Property probe.
// Lookups try the fixed members, then values the script assigned, then the
// probe. Anything else reads as undefined.
type hostObject struct {
	b       *Binding
	probe   func(name string) any
	members map[string]goja.Value
	setters map[string]func(goja.Value)
	expando map[string]goja.Value
}

func (b *Binding) newHostObject(probe func(name string) any) *hostObject {
	return &hostObject{
		b:       b,
		probe:   probe,
		members: make(map[string]goja.Value),
		setters: make(map[string]func(goja.Value)),
		expando: make(map[string]goja.Value),
	}
}

func (h *hostObject) method(name string, fn func(goja.FunctionCall) goja.Value) {
	h.members[name] = h.b.vm.ToValue(fn)
}

func (h *hostObject) Get(key string) goja.Value {
	if v, ok := h.members[key]; ok {
		return v
	}
	if v, ok := h.expando[key]; ok {
		return v
	}
	if h.probe != nil {
		return h.b.toJS(h.probe(key))
	}
	return nil
}

func (h *hostObject) Set(key string, val goja.Value) bool {
	if set, ok := h.setters[key]; ok {
		set(val)
		return true
	}
	h.expando[key] = val
	return true
}

func (h *hostObject) Has(key string) bool {
	return h.Get(key) != nil
}

func (h *hostObject) Delete(key string) bool {
	delete(h.expando, key)
	return true
}

func (h *hostObject) Keys() []string {
	keys := slices.Collect(maps.Keys(h.members))
	keys = append(keys, slices.Collect(maps.Keys(h.expando))...)
	slices.Sort(keys)
	return slices.Compact(keys)
}

var _ goja.DynamicObject = (*hostObject)(nil)
