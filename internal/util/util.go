// Package util provides small helpers shared across chesscore that are not
// in the standard library.
package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer is a locale-aware number formatter used by the priority map
// when it prints its size and usage.
var Printer = message.NewPrinter(language.English)

// Min returns the smaller of the given integers.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// IsDigit checks if the char is a digit 0-9.
func IsDigit(l byte) bool {
	return l >= '0' && l <= '9'
}
