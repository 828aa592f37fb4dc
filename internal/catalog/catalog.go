// Package catalog loads the reference data behind the grievance form: the
// dropdown lists and the registry of users allowed to register grievances.
//
// The backing document is line oriented. A header line selects a section and
// every following non-blank line belongs to it until the next header:
//
//	USER_LIST
//	ABC123,Jane Doe
//	DESIGNATIONS
//	Clerk
//	TRADES
//	Fitter
//
// A Catalog is immutable once built and is safe to share between goroutines.
package catalog

import (
	"slices"

	"github.com/dmitrijs2005/grievdesk/internal/ident"
)

// Section headers. Their spelling is part of the file format.
const (
	SectionUsers                = "USER_LIST"
	SectionDesignations         = "DESIGNATIONS"
	SectionTrades               = "TRADES"
	SectionGrievanceTypes       = "GRIEVANCE_TYPES"
	SectionAuthoritiesRedressal = "AUTHORITIES_Y"
	SectionAuthoritiesIssuing   = "AUTHORITIES_Z"
)

// Catalog is a snapshot of the reference lists and the user registry.
type Catalog struct {
	designations         []string
	trades               []string
	grievanceTypes       []string
	authoritiesRedressal []string
	authoritiesIssuing   []string

	// normalized identifier -> display name
	users map[string]string
}

// Empty returns a catalog with every list present and empty. It is what
// callers get when the backing source cannot be read.
func Empty() *Catalog {
	return &Catalog{
		designations:         []string{},
		trades:               []string{},
		grievanceTypes:       []string{},
		authoritiesRedressal: []string{},
		authoritiesIssuing:   []string{},
		users:                map[string]string{},
	}
}

// Designations, Trades, GrievanceTypes, AuthoritiesRedressal and
// AuthoritiesIssuing return copies of their section in file order.
func (c *Catalog) Designations() []string         { return slices.Clone(c.designations) }
func (c *Catalog) Trades() []string               { return slices.Clone(c.trades) }
func (c *Catalog) GrievanceTypes() []string       { return slices.Clone(c.grievanceTypes) }
func (c *Catalog) AuthoritiesRedressal() []string { return slices.Clone(c.authoritiesRedressal) }
func (c *Catalog) AuthoritiesIssuing() []string   { return slices.Clone(c.authoritiesIssuing) }

// Lists returns every dropdown list keyed by its section header. The user
// registry is not included.
func (c *Catalog) Lists() map[string][]string {
	return map[string][]string{
		SectionDesignations:         c.Designations(),
		SectionTrades:               c.Trades(),
		SectionGrievanceTypes:       c.GrievanceTypes(),
		SectionAuthoritiesRedressal: c.AuthoritiesRedressal(),
		SectionAuthoritiesIssuing:   c.AuthoritiesIssuing(),
	}
}

// Lookup normalizes credential with ident.Normalize and returns the display
// name registered for it.
func (c *Catalog) Lookup(credential string) (string, bool) {
	key := ident.Normalize(credential)
	if key == "" {
		return "", false
	}
	name, ok := c.users[key]
	return name, ok
}

// UserCount returns the number of registry entries.
func (c *Catalog) UserCount() int {
	return len(c.users)
}

// list returns the slice a non-user section appends to.
func (c *Catalog) list(section string) *[]string {
	switch section {
	case SectionDesignations:
		return &c.designations
	case SectionTrades:
		return &c.trades
	case SectionGrievanceTypes:
		return &c.grievanceTypes
	case SectionAuthoritiesRedressal:
		return &c.authoritiesRedressal
	case SectionAuthoritiesIssuing:
		return &c.authoritiesIssuing
	}
	return nil
}

func isHeader(line string) bool {
	switch line {
	case SectionUsers, SectionDesignations, SectionTrades, SectionGrievanceTypes,
		SectionAuthoritiesRedressal, SectionAuthoritiesIssuing:
		return true
	}
	return false
}
