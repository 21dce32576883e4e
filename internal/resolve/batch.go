package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/sqltype"
)

// DefaultConcurrency bounds ResolveAll when no limit is given.
const DefaultConcurrency = 8

// Result is the outcome of resolving one specification.
type Result struct {
	Spec *ast.DataTypeSpec
	Type sqltype.Descriptor
	Err  error
}

// ResolveAll resolves specs concurrently, at most limit at a time. Results
// are in input order and carry per-specification errors; the returned error
// is non-nil only when ctx is done before every specification was resolved.
func ResolveAll(ctx context.Context, specs []*ast.DataTypeSpec, env Env, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	env = env.withDefaults()

	results := make([]Result, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			desc, err := Resolve(spec, env)
			results[i] = Result{Spec: spec, Type: desc, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
