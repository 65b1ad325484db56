package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"edlgen/internal/diag"
	"edlgen/internal/emitplan"
	"edlgen/internal/genpipeline"
	"edlgen/internal/ir"
	"edlgen/internal/parser"
	"edlgen/internal/planstore"
)

// GenerateOptions carries the flags that influence planning (and therefore
// the plan-cache digest), plus where to persist the cache and where to
// publish progress events.
type GenerateOptions struct {
	CacheDir          string
	Namespace         string
	ErrorHandling     string
	VirtualTrustLayer string
	Sink              genpipeline.Sink
}

func (o GenerateOptions) sink() genpipeline.Sink {
	if o.Sink == nil {
		return genpipeline.NopSink{}
	}
	return o.Sink
}

func (o GenerateOptions) flagParts() []string {
	return []string{o.Namespace, o.ErrorHandling, o.VirtualTrustLayer}
}

// GenerateResult is the outcome of generating one .edl file. A read failure
// sets only IOErr and a parse failure sets only ParseErr; otherwise Plan is
// populated, and a failed cache write also sets IOErr alongside it.
type GenerateResult struct {
	Path     string
	Edl      *ir.Edl
	Plan     *emitplan.ModulePlan
	CacheHit bool
	ParseErr *diag.Error
	IOErr    error
}

// GenerateFile runs lex/parse/plan (or a cache hit) for a single file,
// publishing genpipeline events as it goes. It never returns a Go error —
// failures are carried in the result so a multi-file caller can keep going.
func GenerateFile(path string, opts GenerateOptions) *GenerateResult {
	sink := opts.sink()
	result := &GenerateResult{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		result.IOErr = err
		sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageLex, Status: genpipeline.StatusError, Err: err})
		return result
	}

	var store *planstore.Store
	var digest planstore.Digest
	if opts.CacheDir != "" {
		store = planstore.New(opts.CacheDir)
		digest = planstore.ComputeDigest(src, opts.flagParts()...)
		if cachedEdl, ok, loadErr := store.LoadEdl(digest); loadErr == nil && ok {
			if cachedPlan, ok2, loadErr2 := store.LoadPlan(digest); loadErr2 == nil && ok2 {
				result.Edl = cachedEdl
				result.Plan = cachedPlan
				result.CacheHit = true
				sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageCacheHit, Status: genpipeline.StatusDone})
				return result
			}
		}
	}

	sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageLex, Status: genpipeline.StatusWorking})
	sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageParse, Status: genpipeline.StatusWorking})

	edl, parseErr := parser.Parse(path)
	if parseErr != nil {
		diagErr, _ := parseErr.(*diag.Error)
		result.ParseErr = diagErr
		sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageParse, Status: genpipeline.StatusError, Err: parseErr})
		return result
	}

	sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StagePlan, Status: genpipeline.StatusWorking})
	plan := emitplan.Plan(edl)
	result.Edl = edl
	result.Plan = plan

	sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageWrite, Status: genpipeline.StatusWorking})
	if store != nil {
		if err := store.SaveEdl(digest, edl); err != nil {
			result.IOErr = err
			sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageWrite, Status: genpipeline.StatusError, Err: err})
			return result
		}
		if err := store.SavePlan(digest, plan); err != nil {
			result.IOErr = err
			sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageWrite, Status: genpipeline.StatusError, Err: err})
			return result
		}
	}
	sink.OnEvent(genpipeline.Event{File: path, Stage: genpipeline.StageWrite, Status: genpipeline.StatusDone})
	return result
}

// GenerateAll runs GenerateFile for every path concurrently, bounded by
// GOMAXPROCS via errgroup. One file's fatal error never aborts its
// siblings — results are returned index-aligned with paths regardless of
// how many failed.
func GenerateAll(ctx context.Context, paths []string, opts GenerateOptions) []*GenerateResult {
	results := make([]*GenerateResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	jobs := runtime.GOMAXPROCS(0)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = GenerateFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
