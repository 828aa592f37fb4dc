package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
)

// Load outcomes reported to the observer.
const (
	ResultFresh       = "fresh"
	ResultCached      = "cached"
	ResultUnavailable = "unavailable"
	ResultPartial     = "partial"
)

// Loader caches the catalog of one Source, keyed by the source fingerprint.
type Loader struct {
	source  Source
	logger  logging.Logger
	observe func(result string)

	mu          sync.Mutex
	fingerprint string
	cached      *Catalog
}

type LoaderOption func(*Loader)

// WithObserver registers fn to be called with the outcome of every Load.
func WithObserver(fn func(result string)) LoaderOption {
	return func(l *Loader) { l.observe = fn }
}

func NewLoader(source Source, logger logging.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		source:  source,
		logger:  logger.With("module", "catalog", "source", source.Name()),
		observe: func(string) {},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the current catalog. It always returns a usable catalog: when
// the source cannot be read the catalog is empty, when reading fails midway it
// is partial. In both cases the returned error wraps common.ErrConfigUnavailable
// and is a diagnostic for the caller, not a reason to stop.
//
// Only complete reads are cached; a failed or partial read is retried on the
// next call.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	fp, err := l.source.Fingerprint(ctx)
	if err != nil {
		return l.unavailable(ctx, err)
	}

	l.mu.Lock()
	if l.cached != nil && l.fingerprint == fp {
		c := l.cached
		l.mu.Unlock()
		l.observe(ResultCached)
		return c, nil
	}
	l.mu.Unlock()

	rc, err := l.source.Open(ctx)
	if err != nil {
		return l.unavailable(ctx, err)
	}
	defer rc.Close()

	c, err := Parse(rc)
	if err != nil {
		l.logger.Warn(ctx, "catalog read incomplete, serving partial data", "error", err.Error())
		l.observe(ResultPartial)
		return c, fmt.Errorf("%w: %s: %w", common.ErrConfigUnavailable, l.source.Name(), err)
	}

	l.mu.Lock()
	l.cached = c
	l.fingerprint = fp
	l.mu.Unlock()

	l.logger.Info(ctx, "catalog loaded",
		"users", c.UserCount(),
		"designations", len(c.designations),
		"trades", len(c.trades),
		"grievance_types", len(c.grievanceTypes),
	)
	l.observe(ResultFresh)
	return c, nil
}

// Invalidate drops the cached catalog so the next Load reads the source again.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.fingerprint = ""
	l.mu.Unlock()
}

func (l *Loader) unavailable(ctx context.Context, cause error) (*Catalog, error) {
	l.logger.Warn(ctx, "catalog unavailable, serving empty catalog", "error", cause.Error())
	l.observe(ResultUnavailable)
	return Empty(), fmt.Errorf("%w: %s: %w", common.ErrConfigUnavailable, l.source.Name(), cause)
}
