// Package common holds small helpers shared across client layers.
package common

// WipeByteArray zeroes a sensitive buffer (passwords, keys) once it is no
// longer needed. Safe to call on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
