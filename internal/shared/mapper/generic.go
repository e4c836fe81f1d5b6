// Package mapper provides generic slice-mapping helpers for the persistence
// mappers.
package mapper

import "fmt"

// MapSliceErr applies a fallible mapFunc to each element, identifying the
// failing element by the ID extracted with idFunc.
func MapSliceErr[T any, R any](items []T, mapFunc func(T) (R, error), idFunc func(T) uint) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map element with id %d: %w", idFunc(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
