package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"income-engine/internal/engine"
	"income-engine/internal/model"
)

func TestBuildProjectionXLSX(t *testing.T) {
	resp := engine.Process(&model.SimulationRequest{Scenario: "export-test"})

	data, err := BuildProjectionXLSX(resp)
	if err != nil {
		t.Fatalf("workbook build failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected a non-empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("projection")
	if err != nil {
		t.Fatalf("projection sheet missing: %v", err)
	}
	// Header plus one row per simulated age (22..60).
	if len(rows) != 1+39 {
		t.Fatalf("expected 40 rows, got %d", len(rows))
	}
	if rows[0][0] != "Age" {
		t.Fatalf("unexpected header row %v", rows[0])
	}

	if got, _ := f.GetCellValue("summary", "A8"); got != "Office Total (Net)" {
		t.Fatalf("summary sheet malformed, got %q", got)
	}
}

func TestBuildComparisonPDF(t *testing.T) {
	resp := engine.Process(&model.SimulationRequest{})

	data, err := BuildComparisonPDF(resp)
	if err != nil {
		t.Fatalf("chart build failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF artifact")
	}
}

func TestBuildComparisonPDFRejectsEmptyResult(t *testing.T) {
	resp := &model.SimulationResponse{}
	if _, err := BuildComparisonPDF(resp); err == nil {
		t.Fatal("expected an error for a result with no series")
	}
}
