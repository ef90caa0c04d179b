package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var errProfileSum = errors.New("number of genes in target does not add to 6")

// ParseGenome parses a 6 letter genome such as "GGYHWX". Letters are case-insensitive.
func ParseGenome(s string) (Genome, error) {
	var upper = cases.Upper(language.Und).String(strings.TrimSpace(s))
	if utf8.RuneCountInString(upper) != GenomeSize {
		return Genome{}, fmt.Errorf("invalid genome %q", s)
	}
	var g Genome
	var i = 0
	for _, ch := range upper {
		var a, ok = parseAllele(ch)
		if !ok {
			return Genome{}, fmt.Errorf("invalid genome %q", s)
		}
		g[i] = a
		i++
	}
	return g, nil
}

func MustParseGenome(s string) Genome {
	var g, err = ParseGenome(s)
	if err != nil {
		panic(err)
	}
	return g
}

// NewProfile builds a target from per-allele counts, which must sum to 6.
func NewProfile(g, y, h, w, x int) (Profile, error) {
	var p = Profile{g, y, h, w, x}
	for a, n := range p {
		if n < 0 {
			return Profile{}, fmt.Errorf("negative count %v for gene %v", n, Allele(a))
		}
	}
	if p.Sum() != GenomeSize {
		return Profile{}, errProfileSum
	}
	return p, nil
}

// ParseProfile accepts either five counts ("3 0 0 3 0") or a letter
// string whose order does not matter ("GWGWGW").
func ParseProfile(s string) (Profile, error) {
	var fields = strings.Fields(s)
	switch len(fields) {
	case AlleleNB:
		var counts [AlleleNB]int
		for i, field := range fields {
			var n, err = strconv.Atoi(field)
			if err != nil {
				return Profile{}, fmt.Errorf("parse target count %q: %w", field, err)
			}
			counts[i] = n
		}
		return NewProfile(counts[0], counts[1], counts[2], counts[3], counts[4])
	case 1:
		var g, err = ParseGenome(fields[0])
		if err != nil {
			return Profile{}, fmt.Errorf("parse target: %w", err)
		}
		return g.Counts(), nil
	}
	return Profile{}, fmt.Errorf("invalid target %q", s)
}

// ParsePool reads one genome per line. Blank lines and lines starting
// with "//" are ignored, repeated genomes are dropped.
func ParsePool(text string) (*Pool, error) {
	var pool = NewPool()
	for _, line := range getLines(text) {
		var g, err = ParseGenome(line)
		if err != nil {
			return nil, err
		}
		pool.Add(g)
	}
	return pool, nil
}
