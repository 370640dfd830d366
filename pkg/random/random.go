// Package random generates throwaway identifiers for test resources.
package random

import (
	"math/rand"
	"os"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// String returns a string of exactly n characters drawn uniformly from the
// alphanumeric alphabet. The random source is process-local and not
// cryptographically secure; the output is for uniqueness, not secrecy.
func String(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// UnusedEnvVar returns a random name of length n that does not currently
// name a set environment variable, so tests can mint variables without
// clobbering real ones.
func UnusedEnvVar(n int) string {
	for {
		name := String(n)
		if _, ok := os.LookupEnv(name); !ok {
			return name
		}
	}
}
