// Package document lays out a grievance record as a single-page PDF.
package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/go-pdf/fpdf"
)

const (
	unicodeFamily = "body"
	coreFamily    = "Helvetica"

	pageMargin = 20.0
	lineHeight = 7.0

	systemName = "Grievance Registration"
)

// Document is an assembled PDF.
type Document struct {
	Data []byte
	// Degraded is set when the built-in Latin-1 font was used instead of
	// the configured Unicode font.
	Degraded bool
}

type Assembler struct {
	title    string
	font     Font
	compress bool
	logger   logging.Logger
}

type Option func(*Assembler)

// WithCompression toggles PDF stream compression. It is on by default.
func WithCompression(on bool) Option {
	return func(a *Assembler) { a.compress = on }
}

// Title is the heading printed on every document for organization.
func Title(organization string) string {
	organization = strings.TrimSpace(organization)
	if organization == "" {
		return systemName
	}
	return organization + " - " + systemName
}

func NewAssembler(organization string, font Font, logger logging.Logger, opts ...Option) *Assembler {
	a := &Assembler{title: Title(organization), font: font, compress: true, logger: logger}
	for _, o := range opts {
		o(a)
	}
	if font.Status == FontMissing {
		logger.Warn(context.Background(), "unicode font unavailable, documents will use built-in font", "path", font.Path, "reason", font.Reason)
	}
	return a
}

// Assemble renders rec. When the Unicode font is missing or rendering with
// it fails, the document is rebuilt with the built-in font and marked
// degraded. Only a failure of that last attempt is returned, wrapped in
// common.ErrAssemblyFailure.
func (a *Assembler) Assemble(ctx context.Context, rec *models.GrievanceRecord) (*Document, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", common.ErrAssemblyFailure)
	}

	if a.font.Status == FontAvailable {
		data, err := a.render(rec, true)
		if err == nil {
			return &Document{Data: data}, nil
		}
		a.logger.Warn(ctx, "unicode rendering failed, retrying with built-in font", "record", rec.ID.String(), "error", err)
	}

	data, err := a.render(rec, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAssemblyFailure, err)
	}
	return &Document{Data: data, Degraded: true}, nil
}

type writer struct {
	pdf    *fpdf.Fpdf
	family string
	bold   string
	tr     func(string) string
}

func (w *writer) font(style string, size float64) {
	if style == "B" {
		style = w.bold
	}
	w.pdf.SetFont(w.family, style, size)
}

func (w *writer) line(text, align string) {
	w.pdf.CellFormat(0, lineHeight, w.tr(text), "", 1, align, false, 0, "")
}

func (w *writer) field(label, value string) {
	w.line(label+": "+value, "L")
}

func (a *Assembler) render(rec *models.GrievanceRecord, unicode bool) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(a.compress)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(a.title, true)
	pdf.SetCreator("grievdesk", true)
	if !rec.CreatedAt.IsZero() {
		pdf.SetCreationDate(rec.CreatedAt)
	}

	w := &writer{pdf: pdf, family: coreFamily, bold: "B", tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if unicode {
		pdf.AddUTF8FontFromBytes(unicodeFamily, "", a.font.Data)
		w.family, w.bold, w.tr = unicodeFamily, "", func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}

	pdf.AddPage()

	w.font("B", 16)
	w.pdf.CellFormat(0, 10, w.tr(a.title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	w.font("", 11)
	w.field("Date", rec.VisitDate.Format(common.DocumentDateLayout))
	w.field("Reference", rec.ID.String())
	pdf.Ln(2)

	w.field("Employee Name", rec.EmployeeName)
	w.field("Designation", rec.Designation)
	w.field("Trade", rec.Trade)
	w.field("Employee No.", rec.EmployeeNumber)
	w.field("Identifier Code", rec.IdentifierCode)
	w.field("Section", rec.Section)

	pdf.Ln(2)
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageW-pageMargin, y)
	pdf.Ln(4)

	w.font("B", 12)
	w.field("Grievance Type", rec.GrievanceType)
	w.font("", 11)
	w.line("Details:", "L")
	for _, para := range strings.Split(strings.ReplaceAll(rec.GrievanceDetail, "\r\n", "\n"), "\n") {
		pdf.MultiCell(0, 6, w.tr(para), "", "L", false)
	}
	pdf.Ln(2)
	if rec.AuthorityRedressal != "" {
		pdf.MultiCell(0, 6, w.tr(fmt.Sprintf("Forwarded to %s for redressal of %s.", rec.AuthorityRedressal, rec.GrievanceType)), "", "L", false)
	}
	pdf.Ln(4)

	w.field("Letter to", rec.AuthorityRedressal)
	w.field("Letter by", rec.AuthorityIssuing)
	pdf.Ln(8)

	w.line("Registered by: "+rec.RegisteringUser, "R")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName returns the download name for rec's document.
func FileName(rec *models.GrievanceRecord) string {
	return fmt.Sprintf("grievance-%s-%s.pdf", rec.VisitDate.Format(common.DocumentDateLayout), rec.ID.String()[:8])
}
