package pool

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/ChizhovVadim/GeneSolver/pkg/common"
)

// Random returns a pool of size distinct random genomes.
func Random(r *rand.Rand, size int) *common.Pool {
	if size > common.MaxOutcomes {
		size = common.MaxOutcomes
	}
	var result = common.NewPool()
	for result.Len() < size {
		var g common.Genome
		for i := range g {
			g[i] = common.Allele(r.Intn(common.AlleleNB))
		}
		result.Add(g)
	}
	return result
}

func SaveFile(path string, pool *common.Pool) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var w = bufio.NewWriter(file)
	for _, g := range pool.Genomes() {
		if _, err = fmt.Fprintln(w, g); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return file.Close()
}
