/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName converts names of the form "LAST, FIRST" or all-caps
// registration entries into "First Last" title case.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	if idx := strings.Index(name, ","); idx != -1 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		name = first + " " + last
	}

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}

	return strings.Join(words, " ")
}

// titleWord uppercases the first letter and lowercases the remainder,
// preserving interior capitals after apostrophes and hyphens (O'Brien,
// Smith-Jones).
func titleWord(w string) string {
	var sb strings.Builder
	upperNext := true
	for _, r := range w {
		if upperNext {
			sb.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		} else {
			sb.WriteString(strings.ToLower(string(r)))
		}
		if r == '\'' || r == '-' {
			upperNext = true
		}
	}
	return sb.String()
}

// ScoreToString renders a chess score using the unicode half symbol,
// e.g. 0.5 -> "½", 2.5 -> "2½", 3.0 -> "3".
func ScoreToString(score float64) string {
	whole := int(score)
	frac := score - float64(whole)

	var sb strings.Builder
	if whole != 0 || frac < 0.25 {
		sb.WriteString(strconv.Itoa(whole))
	}
	if frac >= 0.25 {
		sb.WriteString("½")
	}

	return sb.String()
}
