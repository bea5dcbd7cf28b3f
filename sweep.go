package mmc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sweep computes the steady-state metrics for every server count from 1 to
// maxServers with the given arrival rate and service time. Results are
// indexed by server count minus one.
//
// Compute is pure, so the counts are evaluated concurrently; the only
// possible errors are invalid inputs and a canceled context.
func Sweep(ctx context.Context, arrivalRate, serviceTime float64, maxServers int) ([]*Result, error) {
	if maxServers < 1 || maxServers > MaxServers {
		return nil, ErrInvalidServerCount
	}

	results := make([]*Result, maxServers)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for servers := 1; servers <= maxServers; servers++ {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := Compute(arrivalRate, serviceTime, servers)
			if err != nil {
				return err
			}

			results[servers-1] = res

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
