package fetcher

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/invoxy/spec-mesh/config"
	"github.com/invoxy/spec-mesh/internal/naming"
	"github.com/invoxy/spec-mesh/merger"
)

const (
	defaultConcurrency      = 4
	defaultPerSourceTimeout = 15 * time.Second
)

// SourceError records one failed source retrieval. A failed source never
// aborts the batch; callers decide whether partial results are acceptable.
type SourceError struct {
	// Name is the configured service name, or its generated fallback.
	Name string
	// URL is the schema URL that failed.
	URL string
	// Err is the underlying error.
	Err error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("source '%s' (%s): %v", e.Name, e.URL, e.Err)
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// FetchAll retrieves every enabled source's schema concurrently and returns
// the sources ready for merging, plus one SourceError per source that could
// not be retrieved or decoded. The worker pool is bounded by Concurrency and
// each fetch by PerSourceTimeout; a failure in one source does not cancel
// the others.
//
// Returned sources preserve the configuration order regardless of fetch
// completion order.
func (f *Fetcher) FetchAll(ctx context.Context, sources []config.Source) ([]merger.Source, []SourceError) {
	type slot struct {
		src merger.Source
		err *SourceError
		ok  bool
	}

	slots := make([]slot, len(sources))

	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	timeout := f.PerSourceTimeout
	if timeout <= 0 {
		timeout = defaultPerSourceTimeout
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, cfg := range sources {
		if !cfg.IsEnabled() {
			f.log().Debug("skipping disabled source", "name", cfg.Name, "url", cfg.URL)
			continue
		}

		name := cfg.Name
		if name == "" {
			name = naming.FallbackName()
			f.log().Warn("source has no name, generated fallback", "name", name, "url", cfg.URL)
		}

		if cfg.Schema == "" {
			slots[i] = slot{err: &SourceError{
				Name: name,
				URL:  cfg.URL,
				Err:  fmt.Errorf("source has no schema URL"),
			}}
			continue
		}

		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			result, err := f.Fetch(fetchCtx, cfg.Schema)
			if err != nil {
				f.log().Error("failed to fetch source", "name", name, "url", cfg.Schema, "error", err)
				slots[i] = slot{err: &SourceError{Name: name, URL: cfg.Schema, Err: err}}
				return nil
			}

			slots[i] = slot{
				src: merger.Source{
					Name:     name,
					URL:      cfg.URL,
					Document: result.Document,
					Enabled:  true,
				},
				ok: true,
			}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	fetched := make([]merger.Source, 0, len(sources))
	var errs []SourceError
	for _, s := range slots {
		switch {
		case s.ok:
			fetched = append(fetched, s.src)
		case s.err != nil:
			errs = append(errs, *s.err)
		}
	}
	return fetched, errs
}
