package statement

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/nestegg/internal/common"
	"golang.org/x/sync/errgroup"
)

// Fetcher returns the raw bytes of a named statement.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// LocalFetcher reads statements from the local filesystem.
type LocalFetcher struct{}

// Fetch implements Fetcher.
func (LocalFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // paths are supplied by the user
}

// RoutingFetcher sends gs:// names to Remote and everything else to Local.
type RoutingFetcher struct {
	Local  Fetcher
	Remote Fetcher
}

// Fetch implements Fetcher.
func (f RoutingFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if strings.HasPrefix(name, "gs://") {
		if f.Remote == nil {
			return nil, fmt.Errorf("%w: no object storage configured for %s", common.ErrMissingConfig, name)
		}
		return f.Remote.Fetch(ctx, name)
	}
	if f.Local == nil {
		return LocalFetcher{}.Fetch(ctx, name)
	}
	return f.Local.Fetch(ctx, name)
}

// Loader reads a batch of statements concurrently.
type Loader struct {
	fetcher     Fetcher
	onLoaded    func(name string)
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConcurrency caps the number of simultaneous reads.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithProgress registers a callback invoked after each statement is read.
// It may be called from several goroutines at once.
func WithProgress(fn func(name string)) LoaderOption {
	return func(l *Loader) {
		l.onLoaded = fn
	}
}

// NewLoader creates a loader backed by fetcher.
func NewLoader(fetcher Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:     fetcher,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every named statement. Reads run in parallel but the result keeps
// the caller's order; the first failure cancels the rest and fails the batch.
func (l *Loader) Load(ctx context.Context, names []string) ([]File, error) {
	if len(names) == 0 {
		return nil, common.ErrNoSources
	}

	files := make([]File, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, name := range names {
		g.Go(func() error {
			data, err := l.fetcher.Fetch(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			files[i] = File{Name: name, Data: data}
			if l.onLoaded != nil {
				l.onLoaded(name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
