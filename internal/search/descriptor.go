// Package search resolves query parameters into customer or merchant record
// lookups using a fixed, ordered field-priority table per entity type.
package search

import (
	"strconv"
	"time"
)

// Parser converts the raw query-string value for a field into the value the
// database is queried with.
type Parser func(raw string) (interface{}, error)

// Field is one searchable field: the parameter name (which is also the
// column name) and its parser. Fields are evaluated in declaration order and
// the first one present in the parameters wins.
type Field struct {
	Name  string
	Parse Parser
}

// Descriptor configures the resolver for one entity type. Adding or removing
// a searchable field is an edit to the Fields table.
//
// RandomFallback preserves a quirk of single-customer search: a non-empty
// parameter set with no recognized field returns a random existing record
// instead of no match. It is off for every other entity.
type Descriptor struct {
	Entity         string
	Fields         []Field
	RandomFallback bool
}

// Customers is the search descriptor for the customers table
var Customers = Descriptor{
	Entity:         "customer",
	RandomFallback: true,
	Fields: []Field{
		{Name: "id", Parse: ParseID},
		{Name: "first_name", Parse: ParseText},
		{Name: "last_name", Parse: ParseText},
		{Name: "created_at", Parse: ParseTimestamp},
		{Name: "updated_at", Parse: ParseTimestamp},
	},
}

// Merchants is the search descriptor for the merchants table
var Merchants = Descriptor{
	Entity: "merchant",
	Fields: []Field{
		{Name: "id", Parse: ParseID},
		{Name: "name", Parse: ParseText},
		{Name: "created_at", Parse: ParseTimestamp},
		{Name: "updated_at", Parse: ParseTimestamp},
	},
}

// ParseID parses an identifier parameter as a base-10 integer
func ParseID(raw string) (interface{}, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// ParseText passes a text parameter through unchanged; matching is exact,
// no wildcard or partial match.
func ParseText(raw string) (interface{}, error) {
	return raw, nil
}

// timestampLayouts are tried in order. ISO-8601 with and without a zone,
// plus the "2012-03-27 14:53:59 UTC" form timestamps render to by default.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a created_at/updated_at parameter; matching is by
// exact timestamp equality.
func ParseTimestamp(raw string) (interface{}, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return nil, lastErr
}
