package textsearch

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Weight classes. A listing name is indexed as A, its description as B.
const (
	WeightA = 1.0
	WeightB = 0.4
)

// Position counts how often a lexeme occurs in each weight class.
type Position struct {
	A int `json:"a,omitempty"`
	B int `json:"b,omitempty"`
}

// Vector is the search index entry of one listing.
type Vector map[string]Position

// Build computes the vector for a listing name and description.
func Build(name, description string) Vector {
	v := Vector{}
	for _, lx := range Lexemes(name) {
		p := v[lx]
		p.A++
		v[lx] = p
	}
	for _, lx := range Lexemes(description) {
		p := v[lx]
		p.B++
		v[lx] = p
	}
	return v
}

// ContainsAll reports whether every lexeme is present in v.
func (v Vector) ContainsAll(lexemes []string) bool {
	if len(lexemes) == 0 {
		return false
	}
	for _, lx := range lexemes {
		if _, ok := v[lx]; !ok {
			return false
		}
	}
	return true
}

// Value stores the vector as a JSON document.
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (v *Vector) Scan(src interface{}) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*v = Vector{}
		return nil
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return fmt.Errorf("textsearch: cannot scan %T into Vector", src)
	}
	out := Vector{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*v = out
	return nil
}
