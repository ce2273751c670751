package engine

import "fmt"

// Registry maps validator type identifiers to implementations. It is an
// explicit value constructed once and passed to Processors; there is no
// process-wide registry.
type Registry struct {
	validators map[string]Validator
}

// NewRegistry returns a registry with every built-in scalar validator
// installed. Choice and fuzzy-choice validators are per-column and are
// resolved through ForColumn instead.
func NewRegistry() *Registry {
	r := &Registry{validators: make(map[string]Validator)}
	r.Register(integerValidator{})
	r.Register(floatValidator{})
	r.Register(dateValidator{})
	r.Register(nitValidator{})
	r.Register(stringValidator{})
	r.Register(emailValidator{})
	r.Register(phoneValidator{})
	r.Register(booleanValidator{})
	return r
}

// Register adds a validator to the registry.
// Panics if one with the same type id is already registered.
func (r *Registry) Register(v Validator) {
	if _, exists := r.validators[v.Type()]; exists {
		panic(fmt.Sprintf("validator already registered: %s", v.Type()))
	}
	r.validators[v.Type()] = v
}

// Lookup returns the validator for a type id.
// Returns false if not found.
func (r *Registry) Lookup(typeID string) (Validator, bool) {
	v, ok := r.validators[typeID]
	return v, ok
}

// ForColumn resolves the validator for one canonical column of a Spec. The
// configurable types (choice, fuzzy_choice, percentage) are built from the
// Spec's per-column data; everything else comes from the registry.
func (r *Registry) ForColumn(spec *Spec, column string) (Validator, error) {
	typeID := spec.Type(column)
	switch typeID {
	case TypeChoice:
		cs, ok := spec.Choices[column]
		if !ok {
			return nil, fmt.Errorf("column %s: choice type without value universe", column)
		}
		return choiceValidator{values: cs.Values}, nil
	case TypeFuzzyChoice:
		cs, ok := spec.Choices[column]
		if !ok {
			return nil, fmt.Errorf("column %s: fuzzy_choice type without value universe", column)
		}
		return fuzzyChoiceValidator{matcher: NewFuzzyMatcher(cs)}, nil
	case TypePercentage:
		bounds, ok := spec.Ranges[column]
		if !ok {
			bounds = DefaultPercentRange
		}
		return percentageValidator{bounds: bounds}, nil
	}
	v, ok := r.validators[typeID]
	if !ok {
		return nil, fmt.Errorf("column %s: unknown validator type %q", column, typeID)
	}
	return v, nil
}
