package textfsm

// bindings hold the record in progress of a single parse session.
// Slots are indexed like Template.values.
type bindings struct {
	defs   []*ValueDefinition
	scalar []string
	list   [][]string
	filled []bool
}

func newBindings(defs []*ValueDefinition) *bindings {
	return &bindings{
		defs:   defs,
		scalar: make([]string, len(defs)),
		list:   make([][]string, len(defs)),
		filled: make([]bool, len(defs)),
	}
}

func (b *bindings) assign(i int, val string) {
	if b.defs[i].Has(List) {
		b.list[i] = append(b.list[i], val)
	} else {
		b.scalar[i] = val
	}
	b.filled[i] = true
}

func (b *bindings) reset(i int) {
	b.scalar[i] = ""
	b.list[i] = nil
	b.filled[i] = false
}

// clear resets all values except those with option Filldown.
func (b *bindings) clear() {
	for i, v := range b.defs {
		if !v.Has(Filldown) {
			b.reset(i)
		}
	}
}

// clearAll resets all values.
func (b *bindings) clearAll() {
	for i := range b.defs {
		b.reset(i)
	}
}

// snapshot returns current bindings as new record.
// Returns false if some Required value isn't filled or
// if no value is filled at all.
func (b *bindings) snapshot() (Record, bool) {
	seen := false
	for i, v := range b.defs {
		if b.filled[i] {
			seen = true
		} else if v.Has(Required) {
			return nil, false
		}
	}
	if !seen {
		return nil, false
	}
	rec := make(Record, len(b.defs))
	for i, v := range b.defs {
		if v.Has(List) {
			l := make([]string, len(b.list[i]))
			copy(l, b.list[i])
			rec[v.Name] = l
		} else {
			rec[v.Name] = b.scalar[i]
		}
	}
	return rec, true
}
