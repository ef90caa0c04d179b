package common

import (
	"fmt"
	"strings"
)

const NoSolution = "Unable to solve"

// FormatReport renders the four parents, the wanted child and its
// probability, or NoSolution.
func FormatReport(r BreedResult) string {
	if !r.Found {
		return NoSolution
	}
	var sb = &strings.Builder{}
	for _, parent := range r.Parents {
		fmt.Fprintf(sb, "  %v\n", parent)
	}
	fmt.Fprintf(sb, "= %v %.2f%%", r.Child, r.Probability())
	return sb.String()
}
