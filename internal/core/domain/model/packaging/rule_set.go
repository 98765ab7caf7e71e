package packaging

import (
	"maps"
	"slices"

	"shipdesk/internal/core/domain/model/kernel"
)

// RuleSet maps an exact quantity to the parcel saved for one product.
type RuleSet struct {
	rules map[kernel.Quantity]kernel.Parcel
}

func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[kernel.Quantity]kernel.Parcel)}
}

// Put overwrites any rule at quantity.
func (s *RuleSet) Put(quantity kernel.Quantity, parcel kernel.Parcel) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if err := parcel.Validate(); err != nil {
		return err
	}
	if s.rules == nil {
		s.rules = make(map[kernel.Quantity]kernel.Parcel)
	}
	s.rules[quantity] = parcel
	return nil
}

func (s *RuleSet) Lookup(quantity kernel.Quantity) (kernel.Parcel, bool) {
	if s == nil {
		return kernel.Parcel{}, false
	}
	p, ok := s.rules[quantity]
	return p, ok
}

// Quantities returns the saved keys in ascending order.
func (s *RuleSet) Quantities() []kernel.Quantity {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.rules))
}

func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

func (s *RuleSet) Clone() *RuleSet {
	if s == nil {
		return NewRuleSet()
	}
	return &RuleSet{rules: maps.Clone(s.rules)}
}

// RuleStore holds the rule sets of every product on an order. It is loaded
// once per session and updated in place when a rule is saved.
type RuleStore struct {
	sets map[kernel.ProductID]*RuleSet
}

func NewRuleStore() *RuleStore {
	return &RuleStore{sets: make(map[kernel.ProductID]*RuleSet)}
}

// Load replaces the rule set of a product.
func (s *RuleStore) Load(productID kernel.ProductID, set *RuleSet) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if s.sets == nil {
		s.sets = make(map[kernel.ProductID]*RuleSet)
	}
	s.sets[productID] = set.Clone()
	return nil
}

func (s *RuleStore) Put(productID kernel.ProductID, quantity kernel.Quantity, parcel kernel.Parcel) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if s.sets == nil {
		s.sets = make(map[kernel.ProductID]*RuleSet)
	}
	set, ok := s.sets[productID]
	if !ok {
		set = NewRuleSet()
		s.sets[productID] = set
	}
	return set.Put(quantity, parcel)
}

func (s *RuleStore) Lookup(productID kernel.ProductID, quantity kernel.Quantity) (kernel.Parcel, bool) {
	if s == nil {
		return kernel.Parcel{}, false
	}
	return s.sets[productID].Lookup(quantity)
}

// RuleSet returns a copy of the product's rules; unknown products yield an
// empty set.
func (s *RuleStore) RuleSet(productID kernel.ProductID) *RuleSet {
	if s == nil {
		return NewRuleSet()
	}
	return s.sets[productID].Clone()
}

// Products returns the loaded product ids in ascending order.
func (s *RuleStore) Products() []kernel.ProductID {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.sets))
}

func (s *RuleStore) Clone() *RuleStore {
	out := NewRuleStore()
	if s == nil {
		return out
	}
	for id, set := range s.sets {
		out.sets[id] = set.Clone()
	}
	return out
}
