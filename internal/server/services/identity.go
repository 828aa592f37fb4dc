package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/auth"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
)

// CatalogProvider returns the current reference catalog. *catalog.Loader
// implements it.
type CatalogProvider interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// Verify looks the credential up in the catalog's user registry. The
// credential is normalized the same way registry keys are. An unknown
// credential yields common.ErrAccessDenied and nothing else.
func Verify(raw string, c *catalog.Catalog) (models.Actor, error) {
	if c == nil {
		return models.Actor{}, common.ErrAccessDenied
	}
	name, ok := c.Lookup(raw)
	if !ok {
		return models.Actor{}, common.ErrAccessDenied
	}
	return models.Actor{Name: name}, nil
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	AccessToken string
	ActorName   string
}

type IdentityService struct {
	catalogs      CatalogProvider
	signingKey    []byte
	tokenValidity time.Duration
	logger        logging.Logger
	recorder      Recorder
}

func NewIdentityService(catalogs CatalogProvider, signingKey []byte, tokenValidity time.Duration,
	logger logging.Logger, recorder Recorder) *IdentityService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &IdentityService{
		catalogs:      catalogs,
		signingKey:    signingKey,
		tokenValidity: tokenValidity,
		logger:        logger.With("module", "identity"),
		recorder:      recorder,
	}
}

// Verify checks raw against the current catalog. A catalog that could not
// be loaded has an empty registry, so every credential is denied.
func (s *IdentityService) Verify(ctx context.Context, raw string) (models.Actor, error) {
	c, err := s.catalogs.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "verifying against degraded catalog", "error", err)
	}
	return Verify(raw, c)
}

// Login verifies raw and issues a session token for the actor.
func (s *IdentityService) Login(ctx context.Context, raw string) (*LoginResult, error) {
	actor, err := s.Verify(ctx, raw)
	if err != nil {
		s.recorder.Login(ResultDenied)
		s.logger.Info(ctx, "login denied")
		return nil, err
	}

	token, err := auth.GenerateToken(actor.Name, s.signingKey, s.tokenValidity)
	if err != nil {
		s.recorder.Login(ResultError)
		s.logger.Error(ctx, "issuing token", "error", err)
		return nil, common.ErrorInternal
	}

	s.recorder.Login(ResultOK)
	s.logger.Info(ctx, "login accepted", "actor", actor.Name)
	return &LoginResult{AccessToken: token, ActorName: actor.Name}, nil
}

// Session turns a session token back into an authenticated session.
func (s *IdentityService) Session(token string) (models.Session, error) {
	name, err := auth.GetActorFromToken(token, s.signingKey)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{}.Authenticate(models.Actor{Name: name}), nil
}
