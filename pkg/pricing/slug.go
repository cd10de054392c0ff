// Package pricing holds the normalization helpers shared by every vendor
// adapter: URL slugs, price and count parsing, condition label tables and
// lowest-price aggregation.
package pricing

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// Slug lowercases s, strips everything outside [a-z0-9], whitespace and
// hyphens, then collapses whitespace runs into single hyphens.
//
//	Slug("Jace, the Mind Sculptor") == "jace-the-mind-sculptor"
//	Slug("Commander Legends: Battle for Baldur's Gate") == "commander-legends-battle-for-baldurs-gate"
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	return slugWhitespace.ReplaceAllString(s, "-")
}

// FrontFace returns the front face of a double-faced card name.
func FrontFace(name string) string {
	front, _, _ := strings.Cut(name, " // ")
	return strings.TrimSpace(front)
}
