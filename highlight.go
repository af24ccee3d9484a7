package main

// Syntax highlighting engine. One left-to-right scan per row assigns a
// highlight class to every rune, driven entirely by the file type's
// HighlightOptions. The only state that survives a row boundary is whether the
// row ends inside a multi-line comment; strings, character literals and
// single-line comments always terminate at the end of the row.

import "unicode"

// Highlight is the semantic class assigned to a single rune for display.
type Highlight byte

const (
	HighlightNone Highlight = iota
	HighlightNumber
	HighlightString
	HighlightCharacter
	HighlightComment
	HighlightMultiComment
	HighlightPrimaryKeyword
	HighlightSecondaryKeyword
	HighlightMatch // reserved for emphasized spans in the message area
)

// isWordRune reports whether r can be part of an identifier. Keyword and
// number boundaries are defined relative to this.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordBoundaryAt reports whether position i sits at a word boundary, meaning
// it is the row start or the preceding rune cannot be part of an identifier.
func wordBoundaryAt(chars []rune, i int) bool {
	return i == 0 || !isWordRune(chars[i-1])
}

// matchAt reports whether the runes of s appear in chars starting at i.
func matchAt(chars []rune, i int, s string) bool {
	for _, r := range s {
		if i >= len(chars) || chars[i] != r {
			return false
		}
		i++
	}
	return len(s) > 0
}

// matchKeywordAt reports whether kw appears at i followed by a word boundary.
// The boundary before i is the caller's responsibility.
func matchKeywordAt(chars []rune, i int, kw string) bool {
	if !matchAt(chars, i, kw) {
		return false
	}
	end := i + len([]rune(kw))
	return end == len(chars) || !isWordRune(chars[end])
}

// HighlightRow classifies every rune of a row. inComment is the multi-line
// comment state inherited from the previous row; the returned bool is the
// state this row ends in, to be fed to the next row. The function is pure:
// identical input always produces identical output.
//
// Multi-line comments do not nest; the first closing delimiter ends the
// comment regardless of any opening delimiters inside it.
func HighlightRow(chars []rune, opts *HighlightOptions, inComment bool) ([]Highlight, bool) {
	hl := make([]Highlight, len(chars))
	if opts == nil {
		return hl, false
	}
	if !opts.Comments || opts.MultiLineClose == "" {
		inComment = false
	}

	closeLen := len([]rune(opts.MultiLineClose))
	var inString rune // the delimiter that opened the current string/char literal

	i := 0
	for i < len(chars) {
		c := chars[i]

		if inComment {
			hl[i] = HighlightMultiComment
			if matchAt(chars, i, opts.MultiLineClose) {
				for j := 0; j < closeLen; j++ {
					hl[i+j] = HighlightMultiComment
				}
				i += closeLen
				inComment = false
				continue
			}
			i++
			continue
		}

		if inString != 0 {
			class := HighlightString
			if inString == '\'' {
				class = HighlightCharacter
			}
			hl[i] = class
			if c == '\\' && i+1 < len(chars) {
				hl[i+1] = class
				i += 2
				continue
			}
			if c == inString {
				inString = 0
			}
			i++
			continue
		}

		if opts.Comments && opts.SingleLineComment != "" && matchAt(chars, i, opts.SingleLineComment) {
			for j := i; j < len(chars); j++ {
				hl[j] = HighlightComment
			}
			return hl, false
		}

		if opts.Comments && opts.MultiLineOpen != "" && matchAt(chars, i, opts.MultiLineOpen) {
			openLen := len([]rune(opts.MultiLineOpen))
			for j := 0; j < openLen; j++ {
				hl[i+j] = HighlightMultiComment
			}
			i += openLen
			inComment = true
			continue
		}

		if opts.Strings && c == '"' {
			inString = c
			hl[i] = HighlightString
			i++
			continue
		}

		if opts.Characters && c == '\'' {
			inString = c
			hl[i] = HighlightCharacter
			i++
			continue
		}

		if opts.Numbers {
			if (unicode.IsDigit(c) && (wordBoundaryAt(chars, i) || hl[i-1] == HighlightNumber)) ||
				(c == '.' && i > 0 && hl[i-1] == HighlightNumber) {
				hl[i] = HighlightNumber
				i++
				continue
			}
		}

		if isWordRune(c) && wordBoundaryAt(chars, i) {
			if n := highlightKeywordAt(chars, hl, i, opts); n > 0 {
				i += n
				continue
			}
		}

		i++
	}

	return hl, inComment
}

// highlightKeywordAt tries the primary keyword set and then the secondary set
// at position i. On a match it classifies the whole word and returns its
// length in runes; otherwise it returns 0.
func highlightKeywordAt(chars []rune, hl []Highlight, i int, opts *HighlightOptions) int {
	for _, kw := range opts.PrimaryKeywords {
		if matchKeywordAt(chars, i, kw) {
			n := len([]rune(kw))
			for j := 0; j < n; j++ {
				hl[i+j] = HighlightPrimaryKeyword
			}
			return n
		}
	}
	for _, kw := range opts.SecondaryKeywords {
		if matchKeywordAt(chars, i, kw) {
			n := len([]rune(kw))
			for j := 0; j < n; j++ {
				hl[i+j] = HighlightSecondaryKeyword
			}
			return n
		}
	}
	return 0
}
