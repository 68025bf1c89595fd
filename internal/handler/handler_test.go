package handler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"

	"income-engine/internal/model"
)

func serve(t *testing.T, method, uri, body string) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	Route(ctx)
	return ctx
}

func TestHealthz(t *testing.T) {
	ctx := serve(t, "GET", "/healthz", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
}

func TestSimulateDefault(t *testing.T) {
	ctx := serve(t, "POST", "/v1/simulations", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var resp model.SimulationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.SimulationMetadata.SimulationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.SimulationMetadata.SimulationOutcome)
	}
	if len(resp.SimulationResult.Years) != 39 {
		t.Fatalf("expected 39 years, got %d", len(resp.SimulationResult.Years))
	}
}

func TestSimulateRejectsGet(t *testing.T) {
	ctx := serve(t, "GET", "/v1/simulations", "")
	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestSimulateRejectsBadBody(t *testing.T) {
	ctx := serve(t, "POST", "/v1/simulations", "{not json")
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestExportPDF(t *testing.T) {
	ctx := serve(t, "POST", "/v1/simulations/export?format=pdf", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if !strings.HasPrefix(string(ctx.Response.Body()), "%PDF") {
		t.Fatal("expected a PDF body")
	}
	if got := string(ctx.Response.Header.Peek("Content-Type")); got != "application/pdf" {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestExportRejectsInvalidParameters(t *testing.T) {
	ctx := serve(t, "POST", "/v1/simulations/export?format=pdf",
		`{"parameters": {"age_start": 70, "age_end": 60}}`)
	if ctx.Response.StatusCode() != fasthttp.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", ctx.Response.StatusCode())
	}

	var resp model.SimulationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.SimulationMetadata.SimulationOutcome != "FAILURE" {
		t.Fatal("expected FAILURE outcome in the export error body")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	ctx := serve(t, "POST", "/v1/simulations/export?format=png", "")
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestUnknownRoute(t *testing.T) {
	ctx := serve(t, "GET", "/v2/simulations", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}
