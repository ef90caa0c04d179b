package engine

type Options struct {
	Threads           int
	Multiset          bool
	ProgressMinTuples int
}

func NewOptions() Options {
	return Options{
		Threads:           1,
		Multiset:          false,
		ProgressMinTuples: 100_000,
	}
}
