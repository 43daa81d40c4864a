package driver

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ClassifyFiles classifies every path concurrently, bounded by the CPU
// count. Results come back in argument order. The first load error aborts
// the batch.
func ClassifyFiles(paths []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			res, err := ClassifyFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
