package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"income-engine/internal/model"
)

// Chart geometry in millimeters on an A4 landscape page.
const (
	chartLeft   = 30.0
	chartTop    = 30.0
	chartWidth  = 230.0
	chartHeight = 140.0
	yGridLines  = 8
)

// BuildComparisonPDF renders the cumulative income comparison as a labeled
// two-line chart. Axis values are plain numbers, never scientific notation.
func BuildComparisonPDF(resp *model.SimulationResponse) ([]byte, error) {
	res := resp.SimulationResult
	if len(res.Years) == 0 {
		return nil, fmt.Errorf("nothing to chart: simulation produced no series")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Text(chartLeft, 18, "Lifetime Cumulative Net Income Comparison")

	n := len(res.Years)
	yMax := niceCeil(math.Max(
		res.CumulativeIncome.Office[n-1],
		res.CumulativeIncome.Freelance[n-1],
	))
	if yMax <= 0 {
		yMax = 1
	}

	xAt := func(i int) float64 {
		if n == 1 {
			return chartLeft + chartWidth/2
		}
		return chartLeft + chartWidth*float64(i)/float64(n-1)
	}
	yAt := func(v float64) float64 {
		return chartTop + chartHeight - chartHeight*v/yMax
	}

	// Grid and y axis labels.
	pdf.SetFont("Arial", "", 8)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(60, 60, 60)
	for g := 0; g <= yGridLines; g++ {
		v := yMax * float64(g) / yGridLines
		y := yAt(v)
		pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		pdf.Text(chartLeft-2-pdf.GetStringWidth(plainNumber(v)), y+1, plainNumber(v))
	}

	// X axis labels, thinned so they stay readable on long ranges.
	step := 1
	if n > 20 {
		step = n / 20
	}
	for i := 0; i < n; i += step {
		label := strconv.Itoa(res.Years[i])
		pdf.Text(xAt(i)-pdf.GetStringWidth(label)/2, chartTop+chartHeight+5, label)
	}

	// Axes.
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(chartLeft, chartTop, chartLeft, chartTop+chartHeight)
	pdf.Line(chartLeft, chartTop+chartHeight, chartLeft+chartWidth, chartTop+chartHeight)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(chartLeft+chartWidth/2-5, chartTop+chartHeight+12, "Age")

	// Series.
	drawSeries(pdf, res.CumulativeIncome.Office, xAt, yAt, 31, 119, 180)
	drawSeries(pdf, res.CumulativeIncome.Freelance, xAt, yAt, 255, 127, 14)

	// Legend with final totals and the difference.
	legendY := chartTop + 4.0
	legend := func(r, g, b int, label string) {
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.8)
		pdf.Line(chartLeft+6, legendY-1, chartLeft+16, legendY-1)
		pdf.SetLineWidth(0.2)
		pdf.Text(chartLeft+19, legendY, label)
		legendY += 6
	}
	legend(31, 119, 180, fmt.Sprintf("Office Worker (Net): %s", plainNumber(res.Totals.Office)))
	legend(255, 127, 14, fmt.Sprintf("Freelance Engineer (Net): %s", plainNumber(res.Totals.Freelance)))
	pdf.Text(chartLeft+19, legendY, fmt.Sprintf("Difference: %s", plainNumber(res.Totals.Difference)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSeries(pdf *gofpdf.Fpdf, values []float64, xAt func(int) float64, yAt func(float64) float64, r, g, b int) {
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.6)
	for i := 1; i < len(values); i++ {
		pdf.Line(xAt(i-1), yAt(values[i-1]), xAt(i), yAt(values[i]))
	}
	pdf.SetLineWidth(0.2)
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten, so grid labels land
// on round numbers.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// plainNumber formats v as a full decimal number, never scientific.
func plainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
