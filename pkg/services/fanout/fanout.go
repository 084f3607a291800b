package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Mode string

const (
	Sequential Mode = "sequential"
	Concurrent Mode = "concurrent"
)

// Resolver decides how per-item detail lookups are issued.
// Limit bounds the number of in-flight lookups in concurrent mode; zero means unbounded.
type Resolver struct {
	Mode  Mode
	Limit int
}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Sequential:
		return Sequential, nil
	case Concurrent:
		return Concurrent, nil
	default:
		return "", fmt.Errorf("unknown fan-out mode %q", s)
	}
}

// Resolve calls fn once per key and returns the results in key order regardless of mode.
// The first error cancels the remaining lookups.
func Resolve[K, D any](ctx context.Context, r Resolver, keys []K, fn func(context.Context, K) (D, error)) ([]D, error) {
	results := make([]D, len(keys))

	if r.Mode != Concurrent {
		for i, key := range keys {
			d, err := fn(ctx, key)
			if err != nil {
				return nil, err
			}
			results[i] = d
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.Limit > 0 {
		g.SetLimit(r.Limit)
	}
	for i, key := range keys {
		g.Go(func() error {
			d, err := fn(gctx, key)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
