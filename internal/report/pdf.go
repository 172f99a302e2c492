package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"skillgap-backend/internal/roadmap"
)

const emptyPlaceholder = "None listed."

// Render produces a PDF summary of the roadmap. Layout is deterministic:
// header, skills, missing skills, then one block per phase. Empty sections
// get a placeholder line rather than being omitted. The core Helvetica font
// is cp1252, so every string goes through the unicode translator before it
// reaches a text stream.
func Render(userName, role string, result roadmap.Result) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Skill Gap Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Prepared for: %s", orDash(userName))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Target role: %s", orDash(role))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Fit: %d%%", result.FitPercentage), "", 1, "L", false, 0, "")
	if result.EstimatedTimeframe != "" {
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Estimated timeframe: %s", result.EstimatedTimeframe)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSection(pdf, tr, "Skills Found", result.SkillsExtracted)
	writeSection(pdf, tr, "Missing Skills", result.MissingSkills)
	writeSection(pdf, tr, "Suggested Projects", result.SuggestedProjects)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Learning Roadmap", "", 1, "L", false, 0, "")
	if len(result.Roadmap) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, emptyPlaceholder, "", 1, "L", false, 0, "")
	}
	for _, phase := range result.Roadmap {
		pdf.SetFont("Helvetica", "B", 12)
		title := phase.Title
		if phase.Period != "" {
			title = fmt.Sprintf("%s — %s", phase.Period, phase.Title)
		}
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

		writeBullets(pdf, tr, "Goals", phase.Goals)
		writeBullets(pdf, tr, "Resources", phase.Resources)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, heading string, items []string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, heading, "", 1, "L", false, 0, "")
	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, emptyPlaceholder, "", 1, "L", false, 0, "")
		pdf.Ln(2)
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 6, tr("• "+item), "", "L", false)
	}
	pdf.Ln(2)
}

func writeBullets(pdf *fpdf.Fpdf, tr func(string) string, label string, items []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, label+":", "", 1, "L", false, 0, "")
	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, emptyPlaceholder, "", 1, "L", false, 0, "")
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 6, tr("• "+item), "", "L", false)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
