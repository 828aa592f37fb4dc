package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Login("ok")
	m.Login("ok")
	m.Login("denied")
	m.Submission("invalid")
	m.CatalogLoad("cached")
	m.DocumentDegraded()
	m.ObserveSubmission(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues("denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogLoads.WithLabelValues("cached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsDegraded))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.Login("ok")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Logins.WithLabelValues("ok")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Submission("ok")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rr.Code)

	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `grievdesk_submissions_total{result="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
