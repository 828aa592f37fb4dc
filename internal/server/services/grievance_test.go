package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/document"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssembler struct {
	doc   *document.Document
	err   error
	calls int
}

func (f *fakeAssembler) Assemble(context.Context, *models.GrievanceRecord) (*document.Document, error) {
	f.calls++
	return f.doc, f.err
}

func newGrievanceService(a DocumentAssembler, rec Recorder) *GrievanceService {
	s := NewGrievanceService(a, logging.NewNop(), rec)
	s.now = func() time.Time { return fixed }
	return s
}

func TestSubmit_Success(t *testing.T) {
	rec := newCountingRecorder()
	a := &fakeAssembler{doc: &document.Document{Data: []byte("%PDF-1.3")}}
	s := newGrievanceService(a, rec)

	sub, err := s.Submit(context.Background(), authed, validForm())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), sub.Document)
	assert.Equal(t, "Jane Doe", sub.Record.RegisteringUser)
	assert.True(t, strings.HasPrefix(sub.FileName, "grievance-09-03-2026-"))
	assert.False(t, sub.Degraded)
	assert.Equal(t, 1, rec.submissions[ResultOK])
	assert.Equal(t, 0, rec.degraded)
}

func TestSubmit_DegradedIsStillSuccess(t *testing.T) {
	rec := newCountingRecorder()
	s := newGrievanceService(&fakeAssembler{doc: &document.Document{Data: []byte("x"), Degraded: true}}, rec)

	sub, err := s.Submit(context.Background(), authed, validForm())
	require.NoError(t, err)
	assert.True(t, sub.Degraded)
	assert.Equal(t, 1, rec.degraded)
	assert.Equal(t, 1, rec.submissions[ResultOK])
}

func TestSubmit_ValidationStopsBeforeAssembly(t *testing.T) {
	rec := newCountingRecorder()
	a := &fakeAssembler{}
	s := newGrievanceService(a, rec)

	f := validForm()
	f[models.FieldEmployeeName] = ""
	_, err := s.Submit(context.Background(), authed, f)
	assert.ErrorIs(t, err, common.ErrMissingName)
	assert.Equal(t, 0, a.calls)
	assert.Equal(t, 1, rec.submissions[ResultInvalid])

	_, err = s.Submit(context.Background(), models.Session{}, validForm())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, 1, rec.submissions[ResultUnauthorized])
}

func TestSubmit_AssemblyFailure(t *testing.T) {
	rec := newCountingRecorder()
	s := newGrievanceService(&fakeAssembler{err: errors.New("boom")}, rec)

	sub, err := s.Submit(context.Background(), authed, validForm())
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, common.ErrAssemblyFailure)
	assert.Equal(t, 1, rec.submissions[ResultError])

	// the same session can resubmit
	s.assembler = &fakeAssembler{doc: &document.Document{Data: []byte("ok")}}
	_, err = s.Submit(context.Background(), authed, validForm())
	assert.NoError(t, err)
}

func TestEndToEnd_LoadVerifySubmit(t *testing.T) {
	ctx := context.Background()
	loader := catalog.NewLoader(textSource("USER_LIST\nABC123,Jane Doe\n"), logging.NewNop())

	identity := NewIdentityService(loader, []byte("k"), time.Minute, logging.NewNop(), nil)
	actor, err := identity.Verify(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", actor.Name)

	session := models.Session{}.Authenticate(actor)
	asm := document.NewAssembler("Acme", document.ProbeFont(""), logging.NewNop(), document.WithCompression(false))
	svc := newGrievanceService(asm, nil)

	sub, err := svc.Submit(ctx, session, models.Form{
		models.FieldIdentifierCode:  "QWERTY",
		models.FieldEmployeeName:    "John Smith",
		models.FieldGrievanceDetail: "Pay delay",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sub.Document)

	body := string(sub.Document)
	for _, want := range []string{"John Smith", "QWERTY", "Pay delay", "Registered by: Jane Doe"} {
		assert.Contains(t, body, want)
	}
}

type textSource string

func (s textSource) Name() string { return "inline" }

func (s textSource) Fingerprint(context.Context) (string, error) { return string(s), nil }

func (s textSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}
