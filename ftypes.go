package main

// Supported file types, their extensions, and the per-language highlight
// configuration the syntax engine is parameterized with. The keyword tables
// are pre-generated word lists and are read-only at runtime.

import "path/filepath"

// HighlightOptions controls which highlight categories a language enables and
// carries its keyword sets and comment delimiters.
type HighlightOptions struct {
	Numbers           bool     // Highlight numeric literals.
	Strings           bool     // Highlight double-quoted strings.
	Characters        bool     // Highlight single-quoted character literals.
	Comments          bool     // Highlight comments.
	SingleLineComment string   // Prefix that starts a comment running to end of row.
	MultiLineOpen     string   // Delimiter opening a multi-line comment.
	MultiLineClose    string   // Delimiter closing a multi-line comment.
	PrimaryKeywords   []string // Language keywords.
	SecondaryKeywords []string // Built-in type names and similar.
}

// FileType represents the configuration for a specific programming language.
type FileType struct {
	Name       string   // Display name of the file type.
	Extensions []string // File extensions (e.g., .go, .rs).
	Highlight  HighlightOptions
}

// fileTypes is a global list of all supported languages in the editor. The last
// entry is the inert default used when no extension matches.
var fileTypes = []*FileType{
	{
		Name:       "golang",
		Extensions: []string{".go"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			Comments:          true,
			SingleLineComment: "//",
			MultiLineOpen:     "/*",
			MultiLineClose:    "*/",
			PrimaryKeywords: []string{
				"break", "default", "func", "interface", "select",
				"case", "defer", "go", "map", "struct",
				"chan", "else", "goto", "package", "switch",
				"const", "fallthrough", "if", "range", "type",
				"continue", "for", "import", "return", "var",
			},
			SecondaryKeywords: []string{
				"bool", "string", "int", "int8", "int16", "int32", "int64",
				"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
				"byte", "rune", "float32", "float64", "complex64", "complex128",
			},
		},
	},
	{
		Name:       "rust",
		Extensions: []string{".rs"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			Comments:          true,
			SingleLineComment: "//",
			MultiLineOpen:     "/*",
			MultiLineClose:    "*/",
			PrimaryKeywords: []string{
				"as", "break", "const", "continue", "crate", "else", "enum",
				"extern", "false", "fn", "for", "if", "impl", "in", "let",
				"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
				"self", "Self", "static", "struct", "super", "trait", "true",
				"type", "unsafe", "use", "where", "while", "dyn", "abstract",
				"become", "box", "do", "final", "macro", "override", "priv",
				"typeof", "unsized", "virtual", "yield", "async", "await", "try",
			},
			SecondaryKeywords: []string{
				"bool", "char", "i8", "i16", "i32", "i64", "isize",
				"u8", "u16", "u32", "u64", "usize", "f32", "f64",
			},
		},
	},
	{
		Name:       "python3",
		Extensions: []string{".py"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			Comments:          true,
			SingleLineComment: "#",
			PrimaryKeywords: []string{
				"class", "def", "else", "for", "if", "global", "while",
				"return", "pass", "import", "try", "except", "finally",
				"async", "await", "elif", "raise", "with",
			},
			SecondaryKeywords: []string{
				"True", "False", "None", "and", "as", "assert", "break",
				"continue", "del", "from", "in", "is", "lambda", "nonlocal",
				"not", "or", "yield",
			},
		},
	},
	{
		Name:       "no filetype",
		Extensions: []string{},
	},
}

// getFileType detects the file type based on the filename or extension. It
// always succeeds; unknown extensions get the inert default profile.
func getFileType(filename string) *FileType {
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)
	for _, ft := range fileTypes {
		for _, e := range ft.Extensions {
			if e == ext || e == base {
				return ft
			}
		}
	}
	return fileTypes[len(fileTypes)-1]
}
