package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a quotation into a printable A4 document.
func (g *Generator) Generate(doc model.QuotationDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "QUOTATION", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quotation No. %d, issued %s", doc.Quotation.ID, formatDate(doc.Quotation.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote request No. %d of %s", doc.Request.ID, formatDate(doc.Request.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addPartyBlock(pdf, g.fontName, "From", []string{
		doc.Shop.Name,
		doc.Shop.Address,
		doc.Shop.Phone,
		doc.Shop.Email,
	})
	pdf.Ln(2)
	addPartyBlock(pdf, g.fontName, "To", []string{
		doc.Request.CustomerName,
		doc.Request.CustomerEmail,
		doc.Request.CustomerPhone,
	})
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Requested services", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, doc.Request.ServicesNeeded, "", "L", false)
	if !doc.Request.DeadlineDate.IsZero() {
		pdf.CellFormat(0, 6, fmt.Sprintf("Requested deadline: %s", formatDate(doc.Request.DeadlineDate)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Offer", "", 1, "L", false, 0, "")

	headers := []string{"Description", "Amount"}
	colWidths := []float64{130, 40}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)
	drawTableRow(pdf, g.fontName, []string{
		doc.Quotation.Description,
		formatAmount(doc.Quotation.PriceAmount),
	}, colWidths, false)

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s", formatAmount(doc.Quotation.PriceAmount)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Valid until: %s", formatDate(doc.Quotation.ValidityDate)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", doc.Quotation.Status), "", 1, "L", false, 0, "")

	pdf.Ln(8)
	pdf.CellFormat(0, 6, "Signature: ______________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addPartyBlock(pdf *gofpdf.Fpdf, fontName, title string, lines []string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// formatAmount renders a price held in the smallest currency unit.
func formatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
