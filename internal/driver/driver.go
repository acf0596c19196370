package driver

import (
	"context"
	"crypto/sha256"
	"runtime"

	"golang.org/x/sync/errgroup"

	"maplint/internal/diag"
	"maplint/internal/hir"
	"maplint/internal/lint"
	"maplint/internal/project"
	"maplint/internal/source"
	"maplint/internal/types"
)

// Options tunes a lint run.
type Options struct {
	// Jobs caps worker goroutines; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the output bag; 0 means the default of 100.
	MaxDiagnostics int
	// Disabled suppresses the listed codes in the output.
	Disabled map[diag.Code]bool
	// Cache, when non-nil, short-circuits repeated runs on unchanged input.
	Cache *DiskCache
}

const defaultMaxDiagnostics = 100

// Unit is everything one lint run operates on: the lowered functions plus
// the side tables they reference.
type Unit struct {
	Files      *source.FileSet
	Types      *types.Interner
	Expansions *source.ExpansionIndex
	Program    *hir.Program
	// FileIDs lists the source files the program was lowered from, in a
	// stable order. Required for caching; optional otherwise.
	FileIDs []source.FileID
}

const cacheSeed = "maplint/lint-results"

// cacheKey folds the schema seed with every input file hash. A changed
// file, added file or reordered file set all produce a different key.
func (u Unit) cacheKey() (project.Digest, bool) {
	if u.Files == nil || len(u.FileIDs) == 0 {
		return project.Digest{}, false
	}
	seed := project.Digest(sha256.Sum256([]byte(cacheSeed)))
	deps := make([]project.Digest, 0, len(u.FileIDs))
	for _, id := range u.FileIDs {
		f := u.Files.Get(id)
		if f == nil {
			return project.Digest{}, false
		}
		deps = append(deps, project.Digest(f.Hash))
	}
	return project.Combine(seed, deps...), true
}

// LintUnit runs every rule over every function of the unit, in parallel,
// and returns the merged, sorted diagnostics. Results are deterministic
// regardless of Jobs: each function gets its own bag and bags merge in
// function order.
func LintUnit(ctx context.Context, unit Unit, opts Options) (*diag.Bag, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}

	key, keyOK := unit.cacheKey()
	if opts.Cache != nil && keyOK {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			if items, ok := payload.decode(); ok {
				out := diag.NewBag(maxDiag)
				for _, d := range items {
					if opts.Disabled[d.Code] {
						continue
					}
					out.Add(d)
				}
				return out, nil
			}
		}
	}

	var funcs []hir.Func
	if unit.Program != nil {
		funcs = unit.Program.Funcs
	}

	merged := diag.NewBag(maxDiag)
	if len(funcs) > 0 {
		jobs := opts.Jobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		// One slot per function; no locking, indexes are disjoint.
		results := make([]*diag.Bag, len(funcs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(funcs)))
		for i := range funcs {
			i := i
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				bag := diag.NewBag(maxDiag)
				rules := lint.All(lint.Context{
					Types:      unit.Types,
					Files:      unit.Files,
					Expansions: unit.Expansions,
					Reporter:   diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
				})
				hir.WalkStmts(funcs[i].Body, func(stmt *hir.Stmt) {
					for _, rule := range rules {
						rule.CheckStmt(stmt)
					}
				})
				results[i] = bag
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return merged, err
		}

		for _, bag := range results {
			merged.Merge(bag)
		}
	}
	merged.Sort()
	merged.Dedup()

	if opts.Cache != nil && keyOK {
		// Best effort: a failed write only costs the next run a recompute,
		// but surface it so --format json consumers can notice.
		if err := opts.Cache.Put(key, encodeDiagnostics(merged.Items())); err != nil {
			merged.Add(diag.New(diag.SevInfo, diag.IOCacheError, source.Span{},
				"failed to write lint cache: "+err.Error()))
		}
	}

	if len(opts.Disabled) == 0 {
		return merged, nil
	}
	out := diag.NewBag(maxDiag)
	for _, d := range merged.Items() {
		if opts.Disabled[d.Code] {
			continue
		}
		out.Add(d)
	}
	return out, nil
}
