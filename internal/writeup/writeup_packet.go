package writeup

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	blankSignature = "________________"
	dateLayout     = "2006-01-02"
)

type packetSection struct {
	title string
	body  string
}

// sections lists the optional free-text blocks in print order; empty ones
// are skipped.
func (w WriteUp) sections() []packetSection {
	return []packetSection{
		{"Manager Notes", strings.TrimSpace(w.ManagerNotes)},
		{"Secondary Lead Witnessing Write-Up", strings.TrimSpace(w.SecondaryLeadWitness)},
		{"Corrective Actions", strings.TrimSpace(w.CorrectiveActions)},
		{"Team Member Comments", strings.TrimSpace(w.TeamMemberComments)},
	}
}

func signatureOrBlank(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return blankSignature
	}
	return s
}

// signedOn falls back to today when nobody filled in the date.
func (w WriteUp) signedOn(today time.Time) string {
	if w.SignedDate != nil {
		return w.SignedDate.Format(dateLayout)
	}
	return today.Format(dateLayout)
}

func (w WriteUp) signatureLines(today time.Time) []string {
	return []string{
		"- Team Member Signature: " + signatureOrBlank(w.TeamMemberSignature),
		"- Leader Signature: " + signatureOrBlank(w.LeaderSignature),
		"- Secondary Leader Signature: " + signatureOrBlank(w.SecondaryLeaderSignature),
		"- Date Signed: " + w.signedOn(today),
	}
}

// RenderNotes builds the printable notes block of a write-up packet.
func RenderNotes(w WriteUp, today time.Time) string {
	parts := []string{"Reason: " + strings.TrimSpace(w.Reason)}
	for _, sec := range w.sections() {
		if sec.body != "" {
			parts = append(parts, "\n"+sec.title+":\n"+sec.body)
		}
	}
	parts = append(parts, "\nSignatures:")
	parts = append(parts, w.signatureLines(today)...)
	return strings.Join(parts, "\n")
}

func (w WriteUp) header() []string {
	employee, category := "", ""
	if w.Employee != nil {
		employee = w.Employee.Name
	}
	if w.Category != nil {
		category = w.Category.Name
	}
	incident := "(no date)"
	if d, ok := w.IncidentDay(); ok {
		incident = d.Format(dateLayout)
	}
	return []string{
		"Team Member: " + employee,
		"Category: " + category,
		"Incident Date: " + incident,
		fmt.Sprintf("Points: %d", w.Points),
	}
}

// RenderPacket is the full text packet: header followed by the notes.
func RenderPacket(w WriteUp, today time.Time) string {
	var b strings.Builder
	b.WriteString("WRITE-UP PACKET\n")
	for _, line := range w.header() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(RenderNotes(w, today))
	return b.String()
}

func RenderPacketPDF(w WriteUp, today time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Write-Up Packet")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range w.header() {
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Reason")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(strings.TrimSpace(w.Reason)), "", "L", false)
	pdf.Ln(3)

	for _, sec := range w.sections() {
		if sec.body == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, sec.title)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(sec.body), "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Signatures")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range w.signatureLines(today) {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
