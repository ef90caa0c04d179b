package pool

import (
	"context"
	"fmt"
	"os"

	"github.com/ChizhovVadim/GeneSolver/pkg/common"

	"golang.org/x/sync/errgroup"
)

// LoadFiles reads plant files concurrently and merges them, in argument
// order, into one pool.
func LoadFiles(ctx context.Context, paths []string) (*common.Pool, error) {
	var pools = make([]*common.Pool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			var pool, err = loadFile(ctx, path)
			if err != nil {
				return err
			}
			pools[i] = pool
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result = common.NewPool()
	for _, pool := range pools {
		result.Merge(pool)
	}
	return result, nil
}

func loadFile(ctx context.Context, path string) (*common.Pool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var content, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pool, err := common.ParsePool(string(content))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return pool, nil
}
