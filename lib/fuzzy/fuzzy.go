// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package fuzzy finds the closest match for a mistyped name.
//
// Both the CLI (unknown subcommands and flags) and keyword converters
// (unknown enumerated values) report "did you mean" hints computed
// here, so every layer agrees on what counts as a near miss.
package fuzzy

import "strings"

// DefaultThreshold is the largest edit distance still reported as a
// suggestion. Three edits catch transpositions, dropped characters,
// and extra characters without suggesting unrelated words.
const DefaultThreshold = 3

// Closest returns the candidate with the smallest edit distance to
// input, provided that distance is at most threshold. Ties go to the
// earliest candidate. Returns "" when nothing is close enough.
func Closest(input string, candidates []string, threshold int) string {
	bestName := ""
	bestDistance := threshold + 1

	for _, candidate := range candidates {
		distance := Levenshtein(input, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}

	return bestName
}

// ClosestFold is Closest with both sides lower-cased before comparison.
// The returned candidate keeps its original spelling.
func ClosestFold(input string, candidates []string, threshold int) string {
	lowered := strings.ToLower(input)
	bestName := ""
	bestDistance := threshold + 1

	for _, candidate := range candidates {
		distance := Levenshtein(lowered, strings.ToLower(candidate))
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}

	return bestName
}

// Levenshtein computes the Levenshtein edit distance between two strings.
// This is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to change one string into the other.
// Distances are counted in bytes.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep only one row of the distance matrix.
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, insertion, substitution)
		}

		previous, current = current, previous
	}

	return previous[len(a)]
}
