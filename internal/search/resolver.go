package search

import (
	"errors"
	"fmt"
	"net/url"

	"gorm.io/gorm"
)

var (
	// ErrInvalidParameter marks a recognized field whose value failed to parse
	ErrInvalidParameter = errors.New("invalid search parameter")

	// ErrNoMatch marks a single-record search that found nothing
	ErrNoMatch = errors.New("no matching record")
)

// condition is a resolved (column, value) equality match
type condition struct {
	column string
	value  interface{}
}

// resolve picks the first field of the descriptor present in params. All
// later parameters are ignored once one field matches. A nil condition with
// a nil error means no recognized field was supplied.
func (d Descriptor) resolve(params url.Values) (*condition, error) {
	for _, f := range d.Fields {
		if !params.Has(f.Name) {
			continue
		}
		raw := params.Get(f.Name)
		value, err := f.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParameter, f.Name, raw)
		}
		return &condition{column: f.Name, value: value}, nil
	}
	return nil, nil
}

// FindOne resolves params to a single record of type T, or ErrNoMatch.
//
// When no recognized field is present but params are non-empty, descriptors
// with RandomFallback return a random existing record instead. An empty
// parameter set never falls back.
func FindOne[T any](db *gorm.DB, d Descriptor, params url.Values) (*T, error) {
	cond, err := d.resolve(params)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		if len(params) > 0 && d.RandomFallback {
			return RandomRecord[T](db)
		}
		return nil, ErrNoMatch
	}

	var record T
	result := db.Where(cond.column+" = ?", cond.value).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNoMatch
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// FindAll resolves params to every record of type T whose field equals the
// supplied value. No random fallback: an unresolved parameter set yields an
// empty slice, never an error.
func FindAll[T any](db *gorm.DB, d Descriptor, params url.Values) ([]T, error) {
	cond, err := d.resolve(params)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0)
	if cond == nil {
		return records, nil
	}
	if result := db.Where(cond.column+" = ?", cond.value).Find(&records); result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
