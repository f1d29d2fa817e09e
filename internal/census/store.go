package census

import "fmt"

// Insert adds rec under key. A key that is already present is rejected with
// ErrDuplicateKey and the existing record is kept.
func (c Collection) Insert(key string, rec Record) error {
	if _, exists := c[key]; exists {
		return newError(ErrDuplicateKey, fmt.Sprintf("%q", key))
	}
	c[key] = rec
	return nil
}
