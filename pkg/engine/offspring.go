package engine

import (
	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

// expansion order of every possible allele set
var setAlleles [1 << AlleleNB][]Allele

func init() {
	for s := range setAlleles {
		setAlleles[s] = AlleleSet(s).Alleles()
	}
}

// offspring describes every child a combination of parents can produce.
type offspring struct {
	loci  [GenomeSize]AlleleSet
	count int
}

func newOffspring(parents *[Parents]Genome) offspring {
	var o = offspring{count: 1}
	for locus := 0; locus < GenomeSize; locus++ {
		var set = scoreLocus([Parents]Allele{
			parents[0][locus],
			parents[1][locus],
			parents[2][locus],
			parents[3][locus],
		})
		o.loci[locus] = set
		o.count *= set.Count()
	}
	return o
}

// Count is the number of equally likely children.
func (o *offspring) Count() int {
	return o.count
}

// Visit calls f for every child, locus 0 varying slowest, until f returns false.
func (o *offspring) Visit(f func(child Genome) bool) {
	var choices [GenomeSize][]Allele
	var index [GenomeSize]int
	var child Genome
	for locus := range o.loci {
		choices[locus] = setAlleles[o.loci[locus]]
		child[locus] = choices[locus][0]
	}
	for {
		if !f(child) {
			return
		}
		var locus = GenomeSize - 1
		for ; locus >= 0; locus-- {
			index[locus]++
			if index[locus] < len(choices[locus]) {
				child[locus] = choices[locus][index[locus]]
				break
			}
			index[locus] = 0
			child[locus] = choices[locus][0]
		}
		if locus < 0 {
			return
		}
	}
}

// FirstMatch returns the first visited child that matches target.
func (o *offspring) FirstMatch(target Profile) (Genome, bool) {
	var result Genome
	var found = false
	o.Visit(func(child Genome) bool {
		if target.Matches(child) {
			result = child
			found = true
		}
		return !found
	})
	return result, found
}

// Children lists every child in visit order.
func (o *offspring) Children() []Genome {
	var result = make([]Genome, 0, o.count)
	o.Visit(func(child Genome) bool {
		result = append(result, child)
		return true
	})
	return result
}
