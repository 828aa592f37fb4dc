package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/document"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
)

// DocumentAssembler renders a validated record. *document.Assembler
// implements it.
type DocumentAssembler interface {
	Assemble(ctx context.Context, rec *models.GrievanceRecord) (*document.Document, error)
}

// Submission is the result of a successful Submit.
type Submission struct {
	Record   *models.GrievanceRecord
	Document []byte
	FileName string
	// Degraded reports that the fallback font was used.
	Degraded bool
}

type GrievanceService struct {
	assembler DocumentAssembler
	logger    logging.Logger
	recorder  Recorder
	now       func() time.Time
}

func NewGrievanceService(assembler DocumentAssembler, logger logging.Logger, recorder Recorder) *GrievanceService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &GrievanceService{
		assembler: assembler,
		logger:    logger.With("module", "grievance"),
		recorder:  recorder,
		now:       time.Now,
	}
}

// Submit validates form and assembles the document. Nothing is stored.
func (s *GrievanceService) Submit(ctx context.Context, session models.Session, form models.Form) (*Submission, error) {
	defer s.recorder.ObserveSubmission(time.Now())

	rec, err := Validate(form, session, s.now())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			s.recorder.Submission(ResultUnauthorized)
		case errors.Is(err, common.ErrValidation):
			s.recorder.Submission(ResultInvalid)
		default:
			s.recorder.Submission(ResultError)
		}
		return nil, err
	}

	doc, err := s.assembler.Assemble(ctx, rec)
	if err != nil {
		s.recorder.Submission(ResultError)
		s.logger.Error(ctx, "assembling document", "record", rec.ID.String(), "error", err)
		if !errors.Is(err, common.ErrAssemblyFailure) {
			err = errors.Join(common.ErrAssemblyFailure, err)
		}
		return nil, err
	}

	if doc.Degraded {
		s.recorder.DocumentDegraded()
		s.logger.Warn(ctx, common.ErrRenderDegraded.Error(), "record", rec.ID.String())
	}
	s.recorder.Submission(ResultOK)
	s.logger.Info(ctx, "grievance registered", "record", rec.ID.String(), "actor", rec.RegisteringUser)

	return &Submission{
		Record:   rec,
		Document: doc.Data,
		FileName: document.FileName(rec),
		Degraded: doc.Degraded,
	}, nil
}
