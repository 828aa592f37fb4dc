package services

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/ident"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/google/uuid"
)

// visitDateLayouts are tried in order.
var visitDateLayouts = []string{"2006-01-02", common.DocumentDateLayout}

// Validate turns form into a GrievanceRecord registered by the session's
// actor. Rules are checked in a fixed order and the first failure is
// returned:
//
//  1. session must be authenticated (common.ErrorUnauthorized)
//  2. identifier code is exactly six uppercase letters (common.ErrBadIdentifierFormat)
//  3. employee name is present (common.ErrMissingName)
//  4. grievance detail is present (common.ErrMissingDetail)
//  5. visit date, when given, parses (common.ErrBadVisitDate)
//
// Spaces and punctuation are dropped from the identifier before the check,
// but lower-case input is rejected rather than upper-cased.
func Validate(form models.Form, session models.Session, now time.Time) (*models.GrievanceRecord, error) {
	if !session.Authenticated || session.ActorName == "" {
		return nil, common.ErrorUnauthorized
	}

	code := ident.CleanCode(form.Get(models.FieldIdentifierCode))
	if !ident.IsCode(code) {
		return nil, common.ErrBadIdentifierFormat
	}

	name := form.Get(models.FieldEmployeeName)
	if name == "" {
		return nil, common.ErrMissingName
	}

	detail := strings.TrimSpace(form[models.FieldGrievanceDetail])
	if detail == "" {
		return nil, common.ErrMissingDetail
	}

	visit, err := parseVisitDate(form.Get(models.FieldVisitDate), now)
	if err != nil {
		return nil, err
	}

	return &models.GrievanceRecord{
		ID:                 uuid.New(),
		EmployeeName:       name,
		Designation:        form.Get(models.FieldDesignation),
		Trade:              form.Get(models.FieldTrade),
		Section:            form.Get(models.FieldSection),
		EmployeeNumber:     form.Get(models.FieldEmployeeNumber),
		IdentifierCode:     code,
		GrievanceType:      form.Get(models.FieldGrievanceType),
		GrievanceDetail:    detail,
		VisitDate:          visit,
		AuthorityRedressal: form.Get(models.FieldAuthorityRedressal),
		AuthorityIssuing:   form.Get(models.FieldAuthorityIssuing),
		RegisteringUser:    session.ActorName,
		CreatedAt:          now,
	}, nil
}

func parseVisitDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	for _, layout := range visitDateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.ErrBadVisitDate
}
