package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/go-chi/chi/v5/middleware"
)

// HeaderDegraded is set on document responses rendered with the fallback font.
const HeaderDegraded = "X-Document-Degraded"

type loginRequest struct {
	Identifier string `json:"identifier"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ActorName   string `json:"actor_name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		req.Identifier = r.PostForm.Get("identifier")
	}

	result, err := s.identity.Login(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, common.ErrAccessDenied) {
			writeError(w, http.StatusUnauthorized, common.ErrAccessDenied.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: result.AccessToken, ActorName: result.ActorName})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := s.catalogs.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "serving degraded catalog", "request_id", middleware.GetReqID(ctx), "error", err)
	}

	writeJSON(w, http.StatusOK, c.Lists())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := s.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form, err := decodeForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	sub, err := s.grievances.Submit(ctx, session, form)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.logger.Error(ctx, "submission failed", "request_id", middleware.GetReqID(ctx), "error", err)
			writeError(w, http.StatusInternalServerError, common.ErrAssemblyFailure.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": sub.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(sub.Document)))
	w.Header().Set(HeaderDegraded, strconv.FormatBool(sub.Degraded))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sub.Document)
}

// session resolves the bearer token. It writes the 401 itself.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		writeError(w, http.StatusUnauthorized, "missing token")
		return models.Session{}, false
	}

	session, err := s.identity.Session(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			writeError(w, http.StatusUnauthorized, "token expired")
		} else {
			writeError(w, http.StatusUnauthorized, "invalid token")
		}
		return models.Session{}, false
	}
	return session, true
}

// decodeForm accepts a flat JSON object or an urlencoded body.
func decodeForm(r *http.Request) (models.Form, error) {
	form := models.Form{}

	if isJSON(r) {
		var raw map[string]any
		dec := json.NewDecoder(r.Body)
		// numbers keep their literal text, so 12345678 is not printed as 1.2345678e+07
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			switch x := v.(type) {
			case string:
				form[k] = x
			case json.Number:
				form[k] = x.String()
			case bool:
				form[k] = strconv.FormatBool(x)
			}
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for k := range r.PostForm {
		form[k] = r.PostForm.Get(k)
	}
	return form, nil
}
