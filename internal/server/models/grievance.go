package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form field names accepted from the presentation layer.
const (
	FieldEmployeeName       = "employee_name"
	FieldDesignation        = "designation"
	FieldTrade              = "trade"
	FieldSection            = "section"
	FieldEmployeeNumber     = "employee_number"
	FieldIdentifierCode     = "identifier_code"
	FieldGrievanceType      = "grievance_type"
	FieldGrievanceDetail    = "grievance_detail"
	FieldVisitDate          = "visit_date"
	FieldAuthorityRedressal = "authority_redressal"
	FieldAuthorityIssuing   = "authority_issuing"
)

// FormFields lists every field in the order the client prompts for them.
var FormFields = []string{
	FieldEmployeeName,
	FieldDesignation,
	FieldTrade,
	FieldSection,
	FieldEmployeeNumber,
	FieldIdentifierCode,
	FieldGrievanceType,
	FieldGrievanceDetail,
	FieldVisitDate,
	FieldAuthorityRedressal,
	FieldAuthorityIssuing,
}

// Form is the flat key-value input of one submission.
type Form map[string]string

// Get returns the trimmed value of key, or "" when it is absent.
func (f Form) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// GrievanceRecord is one validated submission. It is built once by the
// validator and only read afterwards.
type GrievanceRecord struct {
	ID                 uuid.UUID
	EmployeeName       string
	Designation        string
	Trade              string
	Section            string
	EmployeeNumber     string
	IdentifierCode     string
	GrievanceType      string
	GrievanceDetail    string
	VisitDate          time.Time
	AuthorityRedressal string
	AuthorityIssuing   string
	RegisteringUser    string
	CreatedAt          time.Time
}
