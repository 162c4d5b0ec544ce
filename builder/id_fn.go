// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// id_fn.go: vertex naming schemes for generated networks.
//
// Every IDFn must be pure: the same idx always yields the same name, and
// distinct indices yield distinct names. Panics signal programmer error.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex name from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics outside that range; use ExcelColumnIDFn for larger networks.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// AlphanumericIDFn returns idx in base 36 ("0".."z","10",…). Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns idx in lowercase hexadecimal. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns an IDFn producing prefix + decimal index,
// e.g. SymbolNumberIDFn("city")(3) → "city3".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb names vertices prefix0, prefix1, …
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithDefaultIDs names vertices 0, 1, …
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs names vertices A..Z.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names vertices A, B, …, Z, AA, AB, …
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs names vertices in hexadecimal.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs names vertices in base 36.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }
