package common

// NewPool returns a pool holding the distinct genomes in first-seen order.
func NewPool(genomes ...Genome) *Pool {
	var p = &Pool{index: make(map[Genome]int)}
	for _, g := range genomes {
		p.Add(g)
	}
	return p
}

// Add appends g unless the pool already holds it. It reports whether g was added.
func (p *Pool) Add(g Genome) bool {
	if p.index == nil {
		p.index = make(map[Genome]int)
	}
	if p.Contains(g) {
		return false
	}
	p.index[g] = len(p.genomes)
	p.genomes = append(p.genomes, g)
	return true
}

// Merge adds every genome of other, keeping other's order.
func (p *Pool) Merge(other *Pool) int {
	var added = 0
	for _, g := range other.genomes {
		if p.Add(g) {
			added++
		}
	}
	return added
}

func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.genomes)
}

func (p *Pool) At(i int) Genome {
	return p.genomes[i]
}

func (p *Pool) Contains(g Genome) bool {
	var _, found = p.index[g]
	return found
}

// Genomes returns the pool members in order. The slice must not be modified.
func (p *Pool) Genomes() []Genome {
	if p == nil {
		return nil
	}
	return p.genomes
}

func (p *Pool) Clear() {
	p.genomes = nil
	p.index = make(map[Genome]int)
}
