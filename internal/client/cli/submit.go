package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/client/client"
	"github.com/dmitrijs2005/grievdesk/internal/filex"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
)

type promptKind int

const (
	promptText promptKind = iota
	promptChoice
	promptMultiline
)

type formPrompt struct {
	field   string
	label   string
	kind    promptKind
	section string
}

var submitPrompts = []formPrompt{
	{field: models.FieldEmployeeName, label: "Employee name"},
	{field: models.FieldDesignation, label: "Designation", kind: promptChoice, section: catalog.SectionDesignations},
	{field: models.FieldTrade, label: "Trade", kind: promptChoice, section: catalog.SectionTrades},
	{field: models.FieldSection, label: "Section"},
	{field: models.FieldEmployeeNumber, label: "Employee number"},
	{field: models.FieldIdentifierCode, label: "Identifier code (six uppercase letters)"},
	{field: models.FieldGrievanceType, label: "Grievance type", kind: promptChoice, section: catalog.SectionGrievanceTypes},
	{field: models.FieldGrievanceDetail, label: "Grievance detail", kind: promptMultiline},
	{field: models.FieldVisitDate, label: "Visit date (YYYY-MM-DD or DD-MM-YYYY, empty for today)"},
	{field: models.FieldAuthorityRedressal, label: "Redressal authority", kind: promptChoice, section: catalog.SectionAuthoritiesRedressal},
	{field: models.FieldAuthorityIssuing, label: "Issuing authority", kind: promptChoice, section: catalog.SectionAuthoritiesIssuing},
}

func (a *App) readForm(lists map[string][]string) (map[string]string, error) {
	form := make(map[string]string, len(submitPrompts))

	for _, p := range submitPrompts {
		var (
			v   string
			err error
		)
		switch p.kind {
		case promptChoice:
			v, err = GetChoice(a.reader, "-"+p.label, lists[p.section], a.out)
		case promptMultiline:
			v, err = GetMultiline(a.reader, "-"+p.label, a.out)
		default:
			v, err = GetSimpleText(a.reader, "-"+p.label, a.out)
		}
		if err != nil {
			return nil, err
		}
		form[p.field] = v
	}

	return form, nil
}

func (a *App) Submit(ctx context.Context) error {

	lists := a.catalog
	if lists == nil {
		var err error
		lists, err = a.fetchCatalog(ctx)
		if err != nil {
			log.Printf("catalog unavailable, values must be typed: %v", err)
		}
	}

	form, err := a.readForm(lists)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	doc, err := a.api.Submit(reqCtx, form)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrInvalidForm):
			log.Printf("Submission rejected: %s", err.Error())
		case errors.Is(err, client.ErrUnauthorized):
			a.userName = ""
			log.Printf("Session is no longer valid, please log in again")
		default:
			log.Printf("Submission failed: %s", err.Error())
		}
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.OutputDir)
	if err != nil {
		log.Printf("error creating output directory: %v", err)
		return err
	}

	path, err := filex.SaveFile(dir, doc.FileName, doc.Data)
	if err != nil {
		log.Printf("error saving document: %v", err)
		return err
	}

	fmt.Fprintf(a.out, "Document saved to %s\n", path)
	if doc.Degraded {
		fmt.Fprintln(a.out, "Warning: the document was rendered with a fallback font; some characters may be missing")
	}
	return nil
}
