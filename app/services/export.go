package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskflow/app/models"
)

// ErrUnknownFormat is returned for export formats other than json, csv, pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// Export is a rendered report of the task list.
type Export struct {
	ContentType string
	Filename    string
	Body        []byte
}

// Exporter renders the current collection as a downloadable report.
type Exporter struct {
	tasks *TaskService
}

// NewExporter creates an Exporter reading from tasks.
func NewExporter(tasks *TaskService) *Exporter {
	return &Exporter{tasks: tasks}
}

// Export renders every task (regardless of the active filter) in format.
func (e *Exporter) Export(ctx context.Context, format string) (Export, error) {
	d := e.tasks.DashboardFor(ctx, models.FilterAll)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return Export{}, fmt.Errorf("export json: %w", err)
		}
		return Export{ContentType: "application/json", Filename: "tasks.json", Body: b}, nil
	case "csv":
		b, err := exportCSV(d.Tasks)
		if err != nil {
			return Export{}, err
		}
		return Export{ContentType: "text/csv", Filename: "tasks.csv", Body: b}, nil
	case "pdf":
		b, err := exportPDF(d)
		if err != nil {
			return Export{}, err
		}
		return Export{ContentType: "application/pdf", Filename: "tasks.pdf", Body: b}, nil
	default:
		return Export{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func exportCSV(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "title", "description", "completed", "created_at"})
	for _, t := range tasks {
		_ = w.Write([]string{
			strconv.FormatUint(t.ID, 10),
			t.Title,
			t.Description,
			strconv.FormatBool(t.Completed),
			t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportPDF(d models.Dashboard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "TaskFlow Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d   Done: %d   Active: %d   Progress: %d%%",
		d.Stats.Total, d.Stats.Completed, d.Stats.Active, d.Stats.CompletionRate))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, t := range d.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s #%d %s (created %s)", mark, t.ID, t.Title, t.CreatedAt.Format("2006-01-02"))
		if t.Description != "" {
			line += " - " + t.Description
		}
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	return buf.Bytes(), nil
}
