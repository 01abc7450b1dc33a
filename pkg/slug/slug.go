// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns user-supplied names into ASCII file-name fragments.
//
// Uploaded photos keep a readable trace of their original name
// ("Ýük maşyny 1.JPG" becomes "yuk-masyny-1") without carrying spaces or
// non-ASCII characters into object keys.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLength bounds the slug so object keys stay short.
const maxLength = 60

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// special covers letters that do not decompose into a base letter plus mark.
var special = strings.NewReplacer("ı", "i", "ß", "ss", "ø", "o", "đ", "d", "ł", "l")

// From returns the slug of s, or "" when nothing ASCII survives.
func From(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		result = strings.ToLower(s)
	}

	result = special.Replace(result)
	result = strings.Trim(separators.ReplaceAllString(result, "-"), "-")

	if len(result) > maxLength {
		result = strings.TrimRight(result[:maxLength], "-")
	}
	return result
}
