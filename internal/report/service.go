package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/signintech/gopdf"

	"healify/internal/assessment"
	"healify/internal/disease"
	"healify/internal/i18n"
)

var ErrNotConfigured = errors.New("health officer delivery is not configured")

// DejaVu covers Latin and Cyrillic; install ttf-dejavu in the image.
var defaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

const (
	fontName  = "DejaVu"
	textWidth = 500
)

type TelegramClient interface {
	SendDocument(ctx context.Context, chatID int64, fileData []byte, fileName string) error
}

type Service struct {
	tgClient      TelegramClient
	officerChatID int64
	fontPaths     []string
	catalog       *i18n.Catalog
	logger        *slog.Logger
}

// NewService renders with the font at fontPath, or the first DejaVu font
// found when fontPath is empty. tg may be nil when delivery is disabled.
func NewService(tg TelegramClient, officerChatID int64, fontPath string, catalog *i18n.Catalog, logger *slog.Logger) *Service {
	paths := defaultFontPaths
	if fontPath != "" {
		paths = []string{fontPath}
	}
	return &Service{
		tgClient:      tg,
		officerChatID: officerChatID,
		fontPaths:     paths,
		catalog:       catalog,
		logger:        logger,
	}
}

func (s *Service) loadFont(pdf *gopdf.GoPdf) error {
	var fontErr error
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont(fontName, path); err != nil {
			fontErr = err
			continue
		}
		s.logger.Debug("loaded report font", "path", path)
		return nil
	}
	return fmt.Errorf("failed to load font for PDF (tried %s): %w", strings.Join(s.fontPaths, ", "), fontErr)
}

// Render lays out an A4 report of a in English.
func (s *Service) Render(a *assessment.Assessment) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.SetMargins(40, 40, 40, 40)
	pdf.AddPage()

	if err := s.loadFont(&pdf); err != nil {
		return nil, err
	}

	w := &writer{pdf: &pdf}

	// Header
	w.font(20)
	w.line("Healify Symptom Assessment")
	pdf.Br(30)

	// Patient
	w.font(12)
	w.line(fmt.Sprintf("Date: %s", a.CreatedAt.Format("02.01.2006 15:04")))
	w.line(fmt.Sprintf("Assessment ID: %s", a.ID))
	w.line(fmt.Sprintf("Patient: %s", a.Patient.Name))
	w.line(fmt.Sprintf("Age: %d", a.Patient.Age))
	if a.Patient.Gender != "" {
		w.line(fmt.Sprintf("Gender: %s", s.catalog.Gender(i18n.English, a.Patient.Gender)))
	}
	if a.Patient.Location != "" {
		w.line(fmt.Sprintf("Location: %s", a.Patient.Location))
	}
	pdf.Br(10)

	// Symptoms
	w.font(14)
	w.line("Reported symptoms:")
	w.font(11)
	labels := lo.Map(a.Symptoms, func(sym disease.Symptom, _ int) string {
		return s.catalog.SymptomLabel(i18n.English, sym)
	})
	w.paragraph(strings.Join(labels, ", "))
	pdf.Br(15)

	// Matches
	w.font(14)
	w.line("Possible conditions:")
	w.font(11)
	if len(a.Results) == 0 {
		w.paragraph("- " + s.catalog.Text(i18n.English, i18n.KeyNoDiseaseTitle) + ". " +
			s.catalog.Text(i18n.English, i18n.KeyNoDiseaseRemedy))
	}
	for _, m := range a.Results {
		d := s.catalog.Disease(i18n.English, m.Disease)
		w.paragraph(fmt.Sprintf("- %s (%s: %d%%)", d.Name, s.catalog.Text(i18n.English, i18n.KeyMatchScore), m.Score))
		for _, remedy := range d.Remedies {
			w.paragraph("    * " + remedy)
		}
		pdf.Br(5)
	}

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// SendToHealthOfficer renders a and uploads it to the configured chat.
func (s *Service) SendToHealthOfficer(ctx context.Context, a *assessment.Assessment) error {
	if s.tgClient == nil || s.officerChatID == 0 {
		return ErrNotConfigured
	}

	data, err := s.Render(a)
	if err != nil {
		return err
	}

	fileName := FileName(a)
	if err := s.tgClient.SendDocument(ctx, s.officerChatID, data, fileName); err != nil {
		s.logger.Error("sending report failed", "assessment", a.ID, "error", err)
		return err
	}
	s.logger.Info("report sent", "assessment", a.ID, "chat", s.officerChatID)
	return nil
}

func FileName(a *assessment.Assessment) string {
	return fmt.Sprintf("report_%s.pdf", a.ID.String())
}

// writer keeps the first layout error so the happy path stays flat.
type writer struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *writer) font(size float64) {
	if w.err == nil {
		w.err = w.pdf.SetFont(fontName, "", size)
	}
}

func (w *writer) line(text string) {
	if w.err != nil {
		return
	}
	w.err = w.pdf.Cell(nil, text)
	w.pdf.Br(15)
}

func (w *writer) paragraph(text string) {
	if w.err != nil || strings.TrimSpace(text) == "" {
		return
	}
	lines, err := w.pdf.SplitText(text, textWidth)
	if err != nil {
		w.err = err
		return
	}
	for _, l := range lines {
		if w.err = w.pdf.Cell(nil, l); w.err != nil {
			return
		}
		w.pdf.Br(12)
	}
}
