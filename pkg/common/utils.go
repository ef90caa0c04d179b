package common

import (
	"strings"
)

// parseAllele accepts upper case letters only.
func parseAllele(ch rune) (Allele, bool) {
	var i = strings.IndexRune(alleleLetters, ch)
	if i < 0 {
		return 0, false
	}
	return Allele(i), true
}

func getLines(text string) []string {
	var result []string
	var lines = strings.Split(text, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}
