package search

import (
	"math/rand"

	"gorm.io/gorm"
)

// RandomRecord returns a uniformly random existing record of type T, or
// ErrNoMatch when the table is empty.
//
// This is the fallback policy behind Descriptor.RandomFallback and the
// /random endpoint. It lives apart from the resolver so the fallback quirk
// can be dropped without touching field resolution.
func RandomRecord[T any](db *gorm.DB) (*T, error) {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoMatch
	}

	var record T
	if err := db.Offset(rand.Intn(int(count))).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
