package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/dense"
)

// Map returns fn(vs[i]) for every vector. The first error cancels the
// remaining work and is returned without partial results.
func Map(ctx context.Context, vs []vecmath.Vector, fn func(vecmath.Vector) (vecmath.Vector, error), optFns ...Option) ([]vecmath.Vector, error) {
	o := applyOptions(optFns)

	out := make([]vecmath.Vector, len(vs))
	err := run(ctx, "map", len(vs), o, func(i int) error {
		v, err := fn(vs[i])
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Apply returns vs[i].Apply(fn) for every vector.
// fn is called from several goroutines and must be pure.
func Apply(ctx context.Context, vs []vecmath.Vector, fn vecmath.Func, optFns ...Option) ([]vecmath.Vector, error) {
	return Map(ctx, vs, func(v vecmath.Vector) (vecmath.Vector, error) {
		return v.Apply(fn), nil
	}, optFns...)
}

// Dot returns query.Dot(vs[i]) for every vector.
// Sparse vectors in vs are visited through their non-zero cells only.
func Dot(ctx context.Context, query vecmath.Vector, vs []vecmath.Vector, optFns ...Option) ([]float64, error) {
	o := applyOptions(optFns)

	if err := checkDimensions(query.Dimension(), vs); err != nil {
		o.record(ctx, "dot", len(vs), 0, err)
		return nil, err
	}

	out := make([]float64, len(vs))
	err := run(ctx, "dot", len(vs), o, func(i int) error {
		out[i] = query.Dot(vs[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Centroid returns the element-wise mean of vs as a dense vector.
func Centroid(ctx context.Context, vs []vecmath.Vector, optFns ...Option) (vecmath.Vector, error) {
	o := applyOptions(optFns)

	if len(vs) == 0 {
		o.record(ctx, "centroid", 0, 0, vecmath.ErrEmptyBatch)
		return nil, vecmath.ErrEmptyBatch
	}
	dim := vs[0].Dimension()
	if err := checkDimensions(dim, vs); err != nil {
		o.record(ctx, "centroid", len(vs), 0, err)
		return nil, err
	}

	// One partial sum per chunk; chunks never share an accumulator.
	chunk := (len(vs) + o.concurrency - 1) / o.concurrency
	parts := make([]vecmath.Vector, (len(vs)+chunk-1)/chunk)

	err := run(ctx, "centroid", len(parts), o, func(p int) error {
		var acc vecmath.Vector = dense.Zeros(dim)
		for _, v := range vs[p*chunk : min((p+1)*chunk, len(vs))] {
			acc = acc.Add(v)
		}
		parts[p] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	sum := parts[0]
	for _, p := range parts[1:] {
		sum = sum.Add(p)
	}
	return sum.DivideScalar(float64(len(vs)))
}

func checkDimensions(dim int, vs []vecmath.Vector) error {
	for _, v := range vs {
		if d := v.Dimension(); d != dim {
			return vecmath.NewErrDimensionMismatch(dim, d, nil)
		}
	}
	return nil
}

// run calls work for every index in [0, n) with bounded concurrency.
func run(ctx context.Context, op string, n int, o *options, work func(i int) error) (err error) {
	start := time.Now()
	defer func() {
		o.record(ctx, op, n, time.Since(start), err)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return work(i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// record reports one batch outcome to the configured metrics and logger.
// Validation failures are recorded with a zero duration.
func (o *options) record(ctx context.Context, op string, n int, d time.Duration, err error) {
	o.metrics.RecordBatch(op, n, d, err)
	o.logger.LogBatch(ctx, op, n, err)
}
