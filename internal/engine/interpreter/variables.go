package interpreter

import (
	"go.trai.ch/kmak/internal/core/domain"
)

// DefineResult describes what Define did with a variable.
type DefineResult int

const (
	// Added means the name was new.
	Added DefineResult = iota
	// Replaced means an existing value was overwritten.
	Replaced
	// Kept means the name is pinned and the new value was discarded.
	Kept
)

// VariableTable is the flat, global name to value mapping of a script.
// Names keep the order of their first definition.
type VariableTable struct {
	vars   []domain.Variable
	index  map[string]int
	pinned map[string]struct{}
	limit  int
}

// NewVariableTable creates an empty table. A limit of zero means unlimited.
func NewVariableTable(limit int) *VariableTable {
	return &VariableTable{
		index:  make(map[string]int),
		pinned: make(map[string]struct{}),
		limit:  limit,
	}
}

// Define sets name to value. Redefining a name overwrites its value unless
// the name was pinned.
func (t *VariableTable) Define(name, value string) (DefineResult, error) {
	if i, ok := t.index[name]; ok {
		if _, pinned := t.pinned[name]; pinned {
			return Kept, nil
		}
		t.vars[i].Value = value
		return Replaced, nil
	}

	if t.limit > 0 && len(t.vars) >= t.limit {
		return Added, domain.Tag(domain.ErrTooManyVariables, "limit", t.limit)
	}

	t.index[name] = len(t.vars)
	t.vars = append(t.vars, domain.Variable{Name: name, Value: value})
	return Added, nil
}

// Pin defines name and prevents later definitions from changing it.
func (t *VariableTable) Pin(name, value string) error {
	delete(t.pinned, name)
	if _, err := t.Define(name, value); err != nil {
		return err
	}
	t.pinned[name] = struct{}{}
	return nil
}

// Lookup returns the current value of name.
func (t *VariableTable) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.vars[i].Value, true
}

// Len returns the number of defined variables.
func (t *VariableTable) Len() int {
	return len(t.vars)
}

// All returns a copy of the variables in definition order.
func (t *VariableTable) All() []domain.Variable {
	out := make([]domain.Variable, len(t.vars))
	copy(out, t.vars)
	return out
}
