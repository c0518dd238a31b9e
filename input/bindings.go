package input

import "log"

// Binding maps an action name to a key code.
type Binding struct {
	Name string
	Code int
}

// Bindings is an insertion-ordered table unique by name. The first
// registration of a name wins; later ones are ignored.
type Bindings struct {
	list  []Binding
	index map[string]int

	warned map[string]bool
}

// Bind registers name iff it has never been bound and reports whether it did.
func (b *Bindings) Bind(name string, code int) bool {
	if _, ok := b.index[name]; ok {
		return false
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[name] = len(b.list)
	b.list = append(b.list, Binding{Name: name, Code: code})
	return true
}

// Lookup returns the code bound to name, or Unbound.
func (b *Bindings) Lookup(name string) int {
	if i, ok := b.index[name]; ok {
		return b.list[i].Code
	}
	if !b.warned[name] {
		if b.warned == nil {
			b.warned = make(map[string]bool)
		}
		b.warned[name] = true
		log.Printf("input: no key bound to %q", name)
	}
	return Unbound
}

// Names returns the bound names matching code, in binding order.
func (b *Bindings) Names(code int) []string {
	var out []string
	for _, binding := range b.list {
		if binding.Code == code {
			out = append(out, binding.Name)
		}
	}
	return out
}

// List returns a copy of the table in binding order.
func (b *Bindings) List() []Binding {
	return append([]Binding(nil), b.list...)
}

func (b *Bindings) Len() int {
	return len(b.list)
}
