package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

func TestScoreLocus(t *testing.T) {
	var tests = []struct {
		alleles [Parents]Allele
		want    AlleleSet
	}{
		{[Parents]Allele{G, G, G, G}, NewAlleleSet(G)},
		{[Parents]Allele{G, G, W, W}, NewAlleleSet(W)},
		{[Parents]Allele{G, G, G, W}, NewAlleleSet(G)},
		{[Parents]Allele{G, Y, H, W}, NewAlleleSet(W)},
		{[Parents]Allele{G, G, W, X}, NewAlleleSet(G)},
		{[Parents]Allele{G, Y, W, X}, NewAlleleSet(W, X)},
		{[Parents]Allele{G, G, Y, Y}, NewAlleleSet(G, Y)},
		{[Parents]Allele{G, Y, H, H}, NewAlleleSet(H)},
		{[Parents]Allele{W, X, W, X}, NewAlleleSet(W, X)},
	}
	for _, test := range tests {
		var got = scoreLocus(test.alleles)
		if got != test.want {
			t.Error(test.alleles, got, test.want)
		}
	}
}

func TestScoreLocusAllCombinations(t *testing.T) {
	for code := 0; code < AlleleNB*AlleleNB*AlleleNB*AlleleNB; code++ {
		var alleles [Parents]Allele
		var c = code
		for i := range alleles {
			alleles[i] = Allele(c % AlleleNB)
			c /= AlleleNB
		}
		var sums [AlleleNB]int
		var top = 0
		for _, a := range alleles {
			if a == W || a == X {
				sums[a] += 8
			} else {
				sums[a] += 6
			}
			if sums[a] > top {
				top = sums[a]
			}
		}
		var got = scoreLocus(alleles)
		if got.Count() == 0 {
			t.Fatal("empty locus", alleles)
		}
		for a := G; a <= X; a++ {
			if got.Contains(a) != (sums[a] == top) {
				t.Error(alleles, a, got, sums)
			}
		}
	}
}

func TestOffspringCount(t *testing.T) {
	var r = rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		var parents [Parents]Genome
		for i := range parents {
			parents[i] = randomGenome(r)
		}
		var o = newOffspring(&parents)
		var product = 1
		for locus := 0; locus < GenomeSize; locus++ {
			product *= scoreLocus([Parents]Allele{
				parents[0][locus], parents[1][locus], parents[2][locus], parents[3][locus],
			}).Count()
		}
		if o.Count() != product {
			t.Fatal(parents, o.Count(), product)
		}
		if o.Count() < 1 || o.Count() > MaxOutcomes {
			t.Fatal(parents, o.Count())
		}
		var children = o.Children()
		if len(children) != o.Count() {
			t.Fatal(parents, len(children), o.Count())
		}
		for _, child := range children {
			for locus, a := range child {
				if !o.loci[locus].Contains(a) {
					t.Fatal(parents, child)
				}
			}
		}
	}
}

func TestOffspringVisitOrder(t *testing.T) {
	var parents = [Parents]Genome{
		MustParseGenome("GGGGGG"),
		MustParseGenome("GGGGGG"),
		MustParseGenome("YYYYYY"),
		MustParseGenome("YYYYYY"),
	}
	var children = Offspring(parents)
	if len(children) != 64 {
		t.Fatal(len(children))
	}
	var want = []string{"YYYYYY", "YYYYYG", "YYYYGY", "YYYYGG"}
	for i, w := range want {
		if children[i].String() != w {
			t.Error(i, children[i], w)
		}
	}
	if children[63].String() != "GGGGGG" {
		t.Error(children[63])
	}
}

func TestOffspringVisitStops(t *testing.T) {
	var parents = [Parents]Genome{
		MustParseGenome("GYHWXG"),
		MustParseGenome("YGWXHY"),
		MustParseGenome("HWXGYH"),
		MustParseGenome("WXGYGW"),
	}
	var o = newOffspring(&parents)
	var visited = 0
	o.Visit(func(child Genome) bool {
		visited++
		return visited < 3
	})
	if o.Count() >= 3 && visited != 3 {
		t.Error(visited)
	}
}

func TestSearchScenarios(t *testing.T) {
	var tests = []struct {
		name     string
		target   string
		pool     []string
		found    bool
		parents  [Parents]string
		child    string
		outcomes int
	}{
		{
			name:     "single genome",
			target:   "6 0 0 0 0",
			pool:     []string{"GGGGGG"},
			found:    true,
			parents:  [Parents]string{"GGGGGG", "GGGGGG", "GGGGGG", "GGGGGG"},
			child:    "GGGGGG",
			outcomes: 1,
		},
		{
			name:   "missing gene",
			target: "0 0 0 6 0",
			pool:   []string{"GGGGGG"},
		},
		{
			name:   "uniform parents never mix",
			target: "3 0 0 3 0",
			pool:   []string{"GGGGGG", "WWWWWW"},
		},
		{
			name:     "tie at every locus",
			target:   "3 3 0 0 0",
			pool:     []string{"GGGGGG", "YYYYYY"},
			found:    true,
			parents:  [Parents]string{"GGGGGG", "GGGGGG", "YYYYYY", "YYYYYY"},
			child:    "YYYGGG",
			outcomes: 64,
		},
		{
			name:   "empty pool",
			target: "6 0 0 0 0",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var target, err = ParseProfile(test.target)
			if err != nil {
				t.Fatal(err)
			}
			var pool = NewPool()
			for _, s := range test.pool {
				pool.Add(MustParseGenome(s))
			}
			for _, threads := range []int{1, 3} {
				var options = NewOptions()
				options.Threads = threads
				var si = NewEngine(options).Search(context.Background(), SearchParams{Target: target, Pool: pool})
				if si.Err != nil {
					t.Fatal(si.Err)
				}
				var r = si.Result
				if r.Found != test.found {
					t.Fatalf("threads %v: found %v, want %v", threads, r.Found, test.found)
				}
				if !r.Found {
					continue
				}
				for i, p := range test.parents {
					if r.Parents[i].String() != p {
						t.Errorf("threads %v: parent %v = %v, want %v", threads, i, r.Parents[i], p)
					}
				}
				if r.Child.String() != test.child || r.Outcomes != test.outcomes {
					t.Errorf("threads %v: child %v outcomes %v, want %v %v", threads, r.Child, r.Outcomes, test.child, test.outcomes)
				}
			}
		})
	}
}

func TestSearchStopsOnSingleOutcome(t *testing.T) {
	var pool = NewPool(
		MustParseGenome("GGGWWW"),
		MustParseGenome("YYYYYY"),
		MustParseGenome("HHHHHH"),
	)
	var target = MustParseGenome("WGWGWG").Counts()
	var si = NewEngine(NewOptions()).Search(context.Background(), SearchParams{Target: target, Pool: pool})
	if !si.Result.Found || si.Result.Outcomes != 1 {
		t.Fatal(si.Result)
	}
	if si.Result.Probability() != 100 {
		t.Error(si.Result.Probability())
	}
	if si.Tuples != 1 {
		t.Error("search continued after an optimal result", si.Tuples)
	}
}

func TestSearchImprovesStrictly(t *testing.T) {
	var r = rand.New(rand.NewSource(7))
	for iter := 0; iter < 20; iter++ {
		var pool, target = randomProblem(r, 5)
		var options = NewOptions()
		options.ProgressMinTuples = 0
		var outcomes []int
		var si = NewEngine(options).Search(context.Background(), SearchParams{
			Target: target,
			Pool:   pool,
			Progress: func(si SearchInfo) {
				outcomes = append(outcomes, si.Result.Outcomes)
			},
		})
		for i := 1; i < len(outcomes); i++ {
			if outcomes[i] >= outcomes[i-1] {
				t.Fatal("not a strict improvement", outcomes)
			}
		}
		if len(outcomes) != 0 && si.Result.Outcomes != outcomes[len(outcomes)-1] {
			t.Error(si.Result.Outcomes, outcomes)
		}
		if len(outcomes) == 0 && si.Result.Found {
			t.Error("result without progress", si.Result)
		}
	}
}

func TestParallelSearchMatchesSequential(t *testing.T) {
	var r = rand.New(rand.NewSource(42))
	for iter := 0; iter < 30; iter++ {
		var pool, target = randomProblem(r, 2+r.Intn(6))
		var sequential = NewEngine(NewOptions()).Search(context.Background(),
			SearchParams{Target: target, Pool: pool})

		var options = NewOptions()
		options.Threads = 4
		var parallel = NewEngine(options).Search(context.Background(),
			SearchParams{Target: target, Pool: pool})

		if sequential.Result != parallel.Result {
			t.Fatalf("pool %v target %v: sequential %+v parallel %+v",
				pool.Genomes(), target, sequential.Result, parallel.Result)
		}
	}
}

func TestMultisetSearchKeepsOutcomes(t *testing.T) {
	var r = rand.New(rand.NewSource(3))
	for iter := 0; iter < 30; iter++ {
		var pool, target = randomProblem(r, 2+r.Intn(6))
		var ordered = NewEngine(NewOptions()).Search(context.Background(),
			SearchParams{Target: target, Pool: pool})

		var options = NewOptions()
		options.Multiset = true
		var multiset = NewEngine(options).Search(context.Background(),
			SearchParams{Target: target, Pool: pool})

		if ordered.Result.Found != multiset.Result.Found ||
			ordered.Result.Outcomes != multiset.Result.Outcomes {
			t.Fatalf("pool %v target %v: ordered %+v multiset %+v",
				pool.Genomes(), target, ordered.Result, multiset.Result)
		}
		if multiset.Tuples > ordered.Tuples {
			t.Error(multiset.Tuples, ordered.Tuples)
		}
	}
}

func TestSearchTupleLimit(t *testing.T) {
	var r = rand.New(rand.NewSource(11))
	var pool = NewPool()
	for pool.Len() < 12 {
		var g Genome
		for i := range g {
			g[i] = Allele(r.Intn(3))
		}
		pool.Add(g)
	}
	var target = Profile{0, 0, 0, 0, 6}
	var si = NewEngine(NewOptions()).Search(context.Background(), SearchParams{
		Target: target,
		Pool:   pool,
		Limits: LimitsType{Tuples: 100},
	})
	if !errors.Is(si.Err, errTupleLimit) {
		t.Fatal(si.Err)
	}
	if si.Tuples >= int64(pool.Len()*pool.Len()*pool.Len()*pool.Len()) {
		t.Error(si.Tuples)
	}
}

func TestSearchTimeLimit(t *testing.T) {
	var r = rand.New(rand.NewSource(17))
	var pool = NewPool()
	for pool.Len() < 40 {
		var g Genome
		for i := range g {
			g[i] = Allele(r.Intn(3))
		}
		pool.Add(g)
	}
	var si = NewEngine(NewOptions()).Search(context.Background(), SearchParams{
		Target: Profile{0, 0, 0, 0, 6},
		Pool:   pool,
		Limits: LimitsType{SearchTime: 20},
	})
	if !errors.Is(si.Err, context.DeadlineExceeded) {
		t.Fatal(si.Err)
	}
	if si.Result.Found {
		t.Error(si.Result)
	}
	if si.Tuples >= int64(pool.Len()*pool.Len()*pool.Len()*pool.Len()) {
		t.Error(si.Tuples)
	}
}

func TestSearchCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var pool = NewPool(MustParseGenome("GGGGGG"))
	var si = NewEngine(NewOptions()).Search(ctx, SearchParams{Target: Profile{6, 0, 0, 0, 0}, Pool: pool})
	if !errors.Is(si.Err, context.Canceled) {
		t.Fatal(si.Err)
	}
	if si.Result.Found {
		t.Error(si.Result)
	}
}

func randomGenome(r *rand.Rand) Genome {
	var g Genome
	for i := range g {
		g[i] = Allele(r.Intn(AlleleNB))
	}
	return g
}

// randomProblem builds a pool whose members mostly come from a few
// alleles, so that many targets are reachable.
func randomProblem(r *rand.Rand, size int) (*Pool, Profile) {
	var alleles = []Allele{G, Y, W, H, X}[:2+r.Intn(2)]
	var pool = NewPool()
	for pool.Len() < size {
		var g Genome
		for i := range g {
			g[i] = alleles[r.Intn(len(alleles))]
		}
		pool.Add(g)
	}
	var target = pool.At(r.Intn(pool.Len()))
	r.Shuffle(GenomeSize, func(i, j int) {
		target[i], target[j] = target[j], target[i]
	})
	if r.Intn(3) == 0 {
		target[r.Intn(GenomeSize)] = alleles[r.Intn(len(alleles))]
	}
	return pool, target.Counts()
}
