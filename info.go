package main

// Provides a way to view all supported file types, their extensions and which
// highlight categories each one enables.

import (
	"fmt"
	"strings"
)

// PrintInfo prints a summary table of all supported languages and their
// highlight configuration.
func PrintInfo() {
	fmt.Printf("%-14s %-16s %-28s %s\n", "Name", "Extensions", "Categories", "Keywords")
	fmt.Println(strings.Repeat("-", 80))

	for _, ft := range fileTypes {
		var categories []string
		if ft.Highlight.Numbers {
			categories = append(categories, "numbers")
		}
		if ft.Highlight.Strings {
			categories = append(categories, "strings")
		}
		if ft.Highlight.Characters {
			categories = append(categories, "chars")
		}
		if ft.Highlight.Comments {
			categories = append(categories, "comments")
		}
		catStr := strings.Join(categories, ",")
		if catStr == "" {
			catStr = "none"
		}

		keywords := len(ft.Highlight.PrimaryKeywords) + len(ft.Highlight.SecondaryKeywords)
		fmt.Printf("%-14s %-16s %-28s %d\n", ft.Name, strings.Join(ft.Extensions, " "), catStr, keywords)
	}
}
