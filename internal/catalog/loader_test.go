package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	results []string
}

func (r *recorder) observe(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.results...)
}

func writeCatalog(t *testing.T, path, body string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestLoader_FreshLoadThenCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	writeCatalog(t, path, "USER_LIST\nABC123,Jane Doe\n", time.Now())

	rec := &recorder{}
	l := NewLoader(NewFileSource(path), logging.NewNop(), WithObserver(rec.observe))

	first, err := l.Load(context.Background())
	require.NoError(t, err)
	second, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{ResultFresh, ResultCached}, rec.all())

	name, ok := second.Lookup("abc123")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
}

func TestLoader_ReflectsUpdatedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	base := time.Now().Add(-time.Hour)
	writeCatalog(t, path, "TRADES\nFitter\n", base)

	l := NewLoader(NewFileSource(path), logging.NewNop())

	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fitter"}, c.Trades())

	writeCatalog(t, path, "TRADES\nWelder\nTurner\n", base.Add(time.Minute))

	c, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Welder", "Turner"}, c.Trades())
}

func TestLoader_MissingSourceYieldsEmptyCatalog(t *testing.T) {
	rec := &recorder{}
	l := NewLoader(NewFileSource(filepath.Join(t.TempDir(), "absent.txt")), logging.NewNop(), WithObserver(rec.observe))

	c, err := l.Load(context.Background())
	require.ErrorIs(t, err, common.ErrConfigUnavailable)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotNil(t, c)

	for section, list := range c.Lists() {
		assert.NotNil(t, list, section)
		assert.Empty(t, list, section)
	}
	assert.Equal(t, 0, c.UserCount())
	assert.Equal(t, []string{ResultUnavailable}, rec.all())
}

func TestLoader_SourceAppearsLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	l := NewLoader(NewFileSource(path), logging.NewNop())

	_, err := l.Load(context.Background())
	require.Error(t, err)

	writeCatalog(t, path, "TRADES\nFitter\n", time.Now())

	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fitter"}, c.Trades())
}

func TestLoader_DirectoryIsUnavailable(t *testing.T) {
	l := NewLoader(NewFileSource(t.TempDir()), logging.NewNop())

	c, err := l.Load(context.Background())
	require.ErrorIs(t, err, common.ErrConfigUnavailable)
	assert.Equal(t, 0, c.UserCount())
}

type fakeSource struct {
	fp      string
	fpErr   error
	body    func() io.Reader
	openErr error
	opens   int
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) Fingerprint(context.Context) (string, error) {
	return f.fp, f.fpErr
}
func (f *fakeSource) Open(context.Context) (io.ReadCloser, error) {
	f.opens++
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(f.body()), nil
}

func TestLoader_PartialReadNotCached(t *testing.T) {
	boom := errors.New("connection reset")
	src := &fakeSource{
		fp: "v1",
		body: func() io.Reader {
			return io.MultiReader(strings.NewReader("TRADES\nFitter\n"), iotest.ErrReader(boom))
		},
	}
	rec := &recorder{}
	l := NewLoader(src, logging.NewNop(), WithObserver(rec.observe))

	c, err := l.Load(context.Background())
	require.ErrorIs(t, err, common.ErrConfigUnavailable)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"Fitter"}, c.Trades())

	_, _ = l.Load(context.Background())
	assert.Equal(t, 2, src.opens)
	assert.Equal(t, []string{ResultPartial, ResultPartial}, rec.all())
}

func TestLoader_OpenErrorYieldsEmpty(t *testing.T) {
	src := &fakeSource{fp: "v1", openErr: errors.New("denied")}
	l := NewLoader(src, logging.NewNop())

	c, err := l.Load(context.Background())
	require.ErrorIs(t, err, common.ErrConfigUnavailable)
	assert.Empty(t, c.Trades())
}

func TestLoader_Invalidate(t *testing.T) {
	src := &fakeSource{fp: "v1", body: func() io.Reader { return strings.NewReader("TRADES\nFitter\n") }}
	l := NewLoader(src, logging.NewNop())

	_, err := l.Load(context.Background())
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.opens)

	l.Invalidate()
	_, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.opens)
}

func TestLoader_ConcurrentLoads(t *testing.T) {
	src := &syncSource{body: "DESIGNATIONS\nClerk\n"}
	l := NewLoader(src, logging.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := l.Load(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, []string{"Clerk"}, c.Designations())
		}()
	}
	wg.Wait()
}

type syncSource struct {
	body string
}

func (s *syncSource) Name() string                                { return "sync" }
func (s *syncSource) Fingerprint(context.Context) (string, error) { return "1", nil }
func (s *syncSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.body)), nil
}
