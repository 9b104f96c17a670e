package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"allowance-engine/internal/allowance"
	"allowance-engine/internal/engine"
	"allowance-engine/internal/model"
	"allowance-engine/internal/ratetable"
)

const contentTypeJSON = "application/json"

type Handler struct {
	calc   *allowance.Calculator
	logger *zap.Logger
}

func New(calc *allowance.Calculator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{calc: calc, logger: logger}
}

// Serve routes a request and logs one line once it has been answered.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/calculation":
		h.onlyMethod(ctx, fasthttp.MethodPost, h.HandleCalculation)
	case "/recalculate":
		h.onlyMethod(ctx, fasthttp.MethodPost, h.HandleRecalculate)
	case "/rates":
		h.onlyMethod(ctx, fasthttp.MethodGet, h.HandleRates)
	case "/health":
		h.onlyMethod(ctx, fasthttp.MethodGet, h.HandleHealth)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.logger.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) onlyMethod(ctx *fasthttp.RequestCtx, method string, next fasthttp.RequestHandler) {
	if string(ctx.Method()) != method {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(h.calc, &req)
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		h.logger.Warn("calculation halted",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.String("tenant_id", req.TenantID),
			zap.Int("messages", len(resp.CalculationResult.Messages)),
		)
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) HandleRecalculate(ctx *fasthttp.RequestCtx) {
	var snapshot model.TripSnapshot
	if err := json.Unmarshal(ctx.PostBody(), &snapshot); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.calc.Recalculate(snapshot))
}

// rateCard is the active rate table plus the display names of the
// classifications and SAP codes it pays under.
type rateCard struct {
	ratetable.Table
	TravelTypes map[model.TravelType]string `json:"travel_types"`
	SAPCodes    map[model.SAPCode]string    `json:"sap_codes"`
}

func (h *Handler) HandleRates(ctx *fasthttp.RequestCtx) {
	card := rateCard{
		Table:       h.calc.Table(),
		TravelTypes: make(map[model.TravelType]string),
		SAPCodes:    make(map[model.SAPCode]string),
	}
	for _, tt := range model.TravelTypes() {
		card.TravelTypes[tt] = tt.Label()
	}
	for _, code := range model.SAPCodes() {
		card.SAPCodes[code] = code.Description()
	}
	writeJSON(ctx, fasthttp.StatusOK, card)
}

func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
