package common

import "time"

type Allele int

const (
	G Allele = iota
	Y
	H
	W
	X
)

const (
	AlleleNB   = 5
	GenomeSize = 6
	Parents    = 4
)

// MaxOutcomes is the largest possible offspring count of one combination (5^6).
const MaxOutcomes = 15625

// Genome is one organism, one allele per locus.
type Genome [GenomeSize]Allele

// Profile is the wanted number of each allele, in G, Y, H, W, X order.
type Profile [AlleleNB]int

// AlleleSet is a bit set of alleles, bit i for Allele(i).
type AlleleSet uint8

type Pool struct {
	genomes []Genome
	index   map[Genome]int
}

// BreedResult is the outcome of a breeding search.
// Found is false when no combination can produce the target.
type BreedResult struct {
	Found    bool
	Parents  [Parents]Genome
	Child    Genome
	Outcomes int
}

// LimitsType bounds a search. Zero values mean no limit.
type LimitsType struct {
	SearchTime int // milliseconds
	Tuples     int64
}

type SearchParams struct {
	Target   Profile
	Pool     *Pool
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Result BreedResult
	Tuples int64
	Pruned int64
	Time   time.Duration
	Err    error
}
