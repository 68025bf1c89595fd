// Package export renders a finished simulation into shareable artifacts: an
// XLSX workbook with the raw series and a PDF chart of the cumulative
// comparison. The projection core knows nothing about these formats.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"income-engine/internal/model"
)

// BuildProjectionXLSX renders the simulation into a two-sheet workbook:
// a summary of totals and a per-age projection table.
func BuildProjectionXLSX(resp *model.SimulationResponse) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	projectionSheet := "projection"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(projectionSheet); err != nil {
		return nil, err
	}

	meta := resp.SimulationMetadata
	res := resp.SimulationResult

	_ = f.SetCellValue(summarySheet, "A1", "Lifetime Income Comparison")
	_ = f.SetCellValue(summarySheet, "A3", "Simulation ID")
	_ = f.SetCellValue(summarySheet, "B3", meta.SimulationID)
	_ = f.SetCellValue(summarySheet, "A4", "Scenario")
	_ = f.SetCellValue(summarySheet, "B4", meta.Scenario)
	_ = f.SetCellValue(summarySheet, "A5", "Preset")
	_ = f.SetCellValue(summarySheet, "B5", meta.Preset)
	_ = f.SetCellValue(summarySheet, "A6", "Completed")
	_ = f.SetCellValue(summarySheet, "B6", meta.SimulationCompletedAt)
	_ = f.SetCellValue(summarySheet, "A8", "Office Total (Net)")
	_ = f.SetCellValue(summarySheet, "B8", res.Totals.Office)
	_ = f.SetCellValue(summarySheet, "A9", "Freelance Total (Net)")
	_ = f.SetCellValue(summarySheet, "B9", res.Totals.Freelance)
	_ = f.SetCellValue(summarySheet, "A10", "Difference (Freelance - Office)")
	_ = f.SetCellValue(summarySheet, "B10", res.Totals.Difference)

	headers := []string{"Age", "Office Annual", "Freelance Annual", "Office Cumulative", "Freelance Cumulative"}
	if res.EffectiveHourlyWage != nil {
		headers = append(headers, "Office Effective Hourly", "Freelance Effective Hourly")
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(projectionSheet, cell, h)
	}

	for i, age := range res.Years {
		row := i + 2
		_ = f.SetCellValue(projectionSheet, fmt.Sprintf("A%d", row), age)
		_ = f.SetCellValue(projectionSheet, fmt.Sprintf("B%d", row), res.AnnualIncome.Office[i])
		_ = f.SetCellValue(projectionSheet, fmt.Sprintf("C%d", row), res.AnnualIncome.Freelance[i])
		_ = f.SetCellValue(projectionSheet, fmt.Sprintf("D%d", row), res.CumulativeIncome.Office[i])
		_ = f.SetCellValue(projectionSheet, fmt.Sprintf("E%d", row), res.CumulativeIncome.Freelance[i])
		if res.EffectiveHourlyWage != nil {
			_ = f.SetCellValue(projectionSheet, fmt.Sprintf("F%d", row), res.EffectiveHourlyWage.Office[i])
			_ = f.SetCellValue(projectionSheet, fmt.Sprintf("G%d", row), res.EffectiveHourlyWage.Freelance[i])
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
