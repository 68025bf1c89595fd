package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"income-engine/internal/engine"
	"income-engine/internal/export"
	"income-engine/internal/model"
)

// Route dispatches all API traffic.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/v1/simulations":
		handleSimulate(ctx)
	case "/v1/simulations/export":
		handleExport(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func handleSimulate(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	resp := engine.Process(req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleExport(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "pdf"
	}

	resp := engine.Process(req)
	if resp.SimulationMetadata.SimulationOutcome != model.OutcomeSuccess {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	switch format {
	case "pdf":
		data, err := export.BuildComparisonPDF(resp)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, "Chart rendering failed: "+err.Error())
			return
		}
		ctx.Response.Header.Set("Content-Type", "application/pdf")
		ctx.Response.Header.Set("Content-Disposition", `attachment; filename="cumulative_income.pdf"`)
		ctx.SetBody(data)
	case "xlsx":
		data, err := export.BuildProjectionXLSX(resp)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, "Workbook rendering failed: "+err.Error())
			return
		}
		ctx.Response.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Response.Header.Set("Content-Disposition", `attachment; filename="income_projection.xlsx"`)
		ctx.SetBody(data)
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "Unsupported export format: "+format)
	}
}

// decodeRequest parses the simulation request. An empty body runs the default
// preset untouched.
func decodeRequest(ctx *fasthttp.RequestCtx) (*model.SimulationRequest, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return nil, false
	}

	var req model.SimulationRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return nil, false
		}
	}
	return &req, true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.Response.Header.Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
