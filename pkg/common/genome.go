package common

import (
	"math/bits"
	"strings"
)

const alleleLetters = "GYHWX"

func (a Allele) String() string {
	if a < G || a > X {
		return "?"
	}
	return alleleLetters[a : a+1]
}

// Recessive reports whether a belongs to the recessive class (W, X).
func (a Allele) Recessive() bool {
	return a == W || a == X
}

func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(GenomeSize)
	for _, a := range g {
		sb.WriteString(a.String())
	}
	return sb.String()
}

// Counts returns how many times each allele occurs in g.
func (g Genome) Counts() Profile {
	var result Profile
	for _, a := range g {
		result[a]++
	}
	return result
}

// Matches reports whether g carries exactly the alleles of the profile,
// in any order.
func (p Profile) Matches(g Genome) bool {
	return g.Counts() == p
}

func (p Profile) Sum() int {
	var sum = 0
	for _, n := range p {
		sum += n
	}
	return sum
}

// String renders the profile as a sorted genome, e.g. "GGGWWW".
func (p Profile) String() string {
	var sb strings.Builder
	for a := G; a <= X; a++ {
		for i := 0; i < p[a]; i++ {
			sb.WriteString(a.String())
		}
	}
	return sb.String()
}

func NewAlleleSet(alleles ...Allele) AlleleSet {
	var s AlleleSet
	for _, a := range alleles {
		s = s.With(a)
	}
	return s
}

func (s AlleleSet) With(a Allele) AlleleSet {
	return s | 1<<uint(a)
}

func (s AlleleSet) Contains(a Allele) bool {
	return s&(1<<uint(a)) != 0
}

func (s AlleleSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// Alleles lists the members from X down to G, the order in which tied
// alleles are expanded.
func (s AlleleSet) Alleles() []Allele {
	var result = make([]Allele, 0, s.Count())
	for a := X; a >= G; a-- {
		if s.Contains(a) {
			result = append(result, a)
		}
	}
	return result
}

func (s AlleleSet) String() string {
	var sb strings.Builder
	for _, a := range s.Alleles() {
		sb.WriteString(a.String())
	}
	return sb.String()
}

// Probability returns the chance of one specific child, in percent.
func (r BreedResult) Probability() float64 {
	if !r.Found || r.Outcomes == 0 {
		return 0
	}
	return 100 / float64(r.Outcomes)
}
