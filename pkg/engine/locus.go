package engine

import (
	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

// Recessive genes weigh more, so fewer copies are needed to win a locus.
const (
	dominantWeight  = 6
	recessiveWeight = 8
)

type locusTally [AlleleNB]int

func alleleWeight(a Allele) int {
	if a.Recessive() {
		return recessiveWeight
	}
	return dominantWeight
}

// scoreLocus returns every allele that can appear at a locus whose
// parents carry the given alleles: all alleles sharing the top tally.
func scoreLocus(alleles [Parents]Allele) AlleleSet {
	var tally locusTally
	for _, a := range alleles {
		tally[a] += alleleWeight(a)
	}
	return tally.leaders()
}

func (t *locusTally) leaders() AlleleSet {
	var best = 0
	for _, v := range t {
		if v > best {
			best = v
		}
	}
	var result AlleleSet
	for a, v := range t {
		if v == best {
			result = result.With(Allele(a))
		}
	}
	return result
}
