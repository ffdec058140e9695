package core

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// VertexSupplier derives a vertex identifier from its zero-based mint ordinal.
// Deterministic suppliers must return the same string for the same ordinal;
// UUIDSupplier is the one non-deterministic scheme shipped here.
// Panics in implementations indicate programmer error in configuration.
type VertexSupplier func(ordinal int) string

// DecimalSupplier returns the decimal string of ordinal, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in ordinal, O(1) extra space.
// Never panics.
func DecimalSupplier(ordinal int) string {
	return strconv.Itoa(ordinal)
}

// SymbolSupplier returns the uppercase Latin letter for ordinal in [0..25],
// e.g. 0→"A", 25→"Z".
// Complexity: O(1) time, O(1) space.
// Panics if ordinal < 0 or ordinal > 25.
func SymbolSupplier(ordinal int) string {
	if ordinal < 0 || ordinal > 25 {
		panic(fmt.Sprintf("SymbolSupplier: ordinal must be in [0,25], got %d", ordinal))
	}
	// convert the computed letter-code to a rune, then to string
	return string('A' + rune(ordinal))
}

// HexSupplier returns the lowercase hexadecimal representation of ordinal,
// e.g. 0→"0", 10→"a", 255→"ff".
// Complexity: O(d) time where d = hex digit count, O(1) space.
// Panics if ordinal < 0.
func HexSupplier(ordinal int) string {
	if ordinal < 0 {
		panic(fmt.Sprintf("HexSupplier: ordinal must be ≥ 0, got %d", ordinal))
	}

	return strconv.FormatInt(int64(ordinal), 16)
}

// PrefixSupplier returns prefix + decimal ordinal, e.g. "v0", "v1", ...
// Complexity: O(d) where d is the number of decimal digits in ordinal.
// Panics if ordinal < 0.
func PrefixSupplier(prefix string) VertexSupplier {
	return func(ordinal int) string {
		if ordinal < 0 {
			panic(fmt.Sprintf("PrefixSupplier: ordinal must be ≥ 0, got %d", ordinal))
		}
		return prefix + strconv.Itoa(ordinal)
	}
}

// UUIDSupplier returns a fresh random UUID string for every call and ignores
// the ordinal. Minted IDs are unique but not reproducible across runs.
// Complexity: O(1).
// Never panics.
func UUIDSupplier(_ int) string {
	return uuid.NewString()
}
