package rule

import (
	"fmt"

	uuid "github.com/gofrs/uuid"
)

// A PropertyRule is a Rule backed by a property map, holding one value per
// named property. Properties may be rewritten in place, so a PropertyRule
// held by an index must only be changed through the Update of a
// LookupProvider, which unindexes it first.
type PropertyRule struct {
	id         uuid.UUID
	name       string
	properties map[string]interface{}
}

// CreatePropertyRule produces a PropertyRule with the given name and
// properties. The property map is copied, and the rule is assigned a unique
// identifier.
func CreatePropertyRule(name string, properties map[string]interface{}) (*PropertyRule, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	copied := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		copied[k] = v
	}
	return &PropertyRule{id: id, name: name, properties: copied}, nil
}

// ID returns the unique identifier assigned to this PropertyRule at creation
func (r *PropertyRule) ID() uuid.UUID {
	return r.id
}

// Name returns the name of this PropertyRule. Names are labels, and are not
// required to be unique.
func (r *PropertyRule) Name() string {
	return r.name
}

// ValueAt returns the value this PropertyRule holds for the given dimension,
// or nil if it holds none
func (r *PropertyRule) ValueAt(dimension string) interface{} {
	return r.properties[dimension]
}

// SetValue rewrites the value this PropertyRule holds for the given dimension
func (r *PropertyRule) SetValue(dimension string, value interface{}) {
	r.properties[dimension] = value
}

// String returns a string representation of this PropertyRule
func (r *PropertyRule) String() string {
	return fmt.Sprintf("%s(%s)", r.name, r.id)
}
