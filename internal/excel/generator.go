package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/printhub-quotes/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the quote-request register: a summary sheet with counts
// per status and a register sheet with one row per request.
func (g *Generator) Generate(requests []model.QuoteRequest) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, requests); err != nil {
		return nil, err
	}

	registerSheet := "Quote Requests"
	file.NewSheet(registerSheet)
	if err := g.writeRegister(file, registerSheet, requests); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, requests []model.QuoteRequest) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	counts := map[model.RequestStatus]int{}
	for _, request := range requests {
		counts[request.Status]++
	}

	set("A1", "Total requests")
	set("B1", len(requests))

	statuses := []model.RequestStatus{
		model.RequestStatusPending,
		model.RequestStatusQuoted,
		model.RequestStatusAccepted,
		model.RequestStatusDeclined,
		model.RequestStatusCompleted,
	}
	tableRow := 3
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Count")
	for i, status := range statuses {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), counts[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func (g *Generator) writeRegister(file *excelize.File, sheet string, requests []model.QuoteRequest) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID",
		"Customer",
		"Email",
		"Phone",
		"Services",
		"Deadline",
		"Status",
		"Submitted",
		"Message",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, request := range requests {
		row := i + 2
		set(fmt.Sprintf("A%d", row), request.ID)
		set(fmt.Sprintf("B%d", row), request.CustomerName)
		set(fmt.Sprintf("C%d", row), request.CustomerEmail)
		set(fmt.Sprintf("D%d", row), request.CustomerPhone)
		set(fmt.Sprintf("E%d", row), request.ServicesNeeded)
		set(fmt.Sprintf("F%d", row), formatDate(request.DeadlineDate))
		set(fmt.Sprintf("G%d", row), string(request.Status))
		set(fmt.Sprintf("H%d", row), formatDateTime(request.CreatedAt))
		set(fmt.Sprintf("I%d", row), request.Message)
	}

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	_ = file.SetColWidth(sheet, "C", "C", 28)
	_ = file.SetColWidth(sheet, "D", "D", 18)
	_ = file.SetColWidth(sheet, "E", "E", 40)
	_ = file.SetColWidth(sheet, "F", "H", 18)
	_ = file.SetColWidth(sheet, "I", "I", 48)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
