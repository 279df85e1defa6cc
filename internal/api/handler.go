package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/airfreightlabs/uld-load-planner/internal/calculator"
	"github.com/airfreightlabs/uld-load-planner/internal/tools"
	"github.com/airfreightlabs/uld-load-planner/internal/uldspec"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxToolArgumentBytes caps the size of a tool invocation payload.
const maxToolArgumentBytes = 1 << 20

// Handler wires the calculator and tool registry into HTTP handlers.
type Handler struct {
	calculator      calculator.Calculator
	registry        *tools.Registry
	defaultULDType  string
	knowledgeBaseID string

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithKnowledgeBaseID records the external knowledge store identifier exposed
// through the ULD types endpoint.
func WithKnowledgeBaseID(id string) HandlerOption {
	return func(h *Handler) {
		h.knowledgeBaseID = id
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, registry *tools.Registry, defaultULDType string, opts ...HandlerOption) *Handler {
	if defaultULDType == "" {
		defaultULDType = uldspec.DefaultCode
	}
	h := &Handler{
		calculator:     calc,
		registry:       registry,
		defaultULDType: defaultULDType,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleULDTypes(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := uldTypesResponse{
		ULDTypes:        uldspec.All(),
		DefaultULDType:  h.defaultULDType,
		KnowledgeBaseID: h.knowledgeBaseID,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListTools(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, toolListResponse{Tools: h.registry.Definitions()})
}

// handleInvokeTool executes one registered tool against the raw request body.
// The tool contract never fails: whatever the payload, the caller receives a
// 200 with a text report.
func (h *Handler) handleInvokeTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("tool")
	tool, ok := h.registry.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown tool", "no tool named "+name,
			"Available tools: "+joinNames(h.registry.Names()))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxToolArgumentBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to read request body")
		return
	}

	result := tool.Execute(json.RawMessage(body))
	writeJSON(w, http.StatusOK, toolInvokeResponse{Tool: name, Result: result})
}

func (h *Handler) handleTotalWeight(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	writeJSON(w, http.StatusOK, h.calculator.TotalWeight(req.Items))
}

func (h *Handler) handleTotalVolume(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	writeJSON(w, http.StatusOK, h.calculator.TotalVolume(req.Items))
}

func (h *Handler) handleValidateWeight(w http.ResponseWriter, r *http.Request) {
	var req validateWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	includeTare := true
	if req.IncludeTare != nil {
		includeTare = *req.IncludeTare
	}

	result, err := h.calculator.ValidateWeight(req.ULDType, req.CargoWeightKg, includeTare)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCheckFit(w http.ResponseWriter, r *http.Request) {
	var req checkFitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	result, err := h.calculator.CheckFit(req.LengthCm, req.WidthCm, req.HeightCm, req.ULDType)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRequirements(w http.ResponseWriter, r *http.Request) {
	var req requirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	uldType := req.ULDType
	if uldType == "" {
		uldType = h.defaultULDType
	}

	result, err := h.calculator.Requirements(req.TotalWeightKg, req.TotalVolumeM3, uldType)
	if err != nil {
		writeCalculatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	writeJSON(w, http.StatusOK, h.calculator.CompareOptions(req.CargoWeightKg, req.CargoVolumeM3))
}

func writeCalculatorError(w http.ResponseWriter, err error) {
	if errors.Is(err, calculator.ErrUnknownULDType) {
		writeError(w, http.StatusBadRequest, "Unknown ULD type", err.Error(),
			"Valid types: "+uldspec.CodeList())
		return
	}
	writeInternalError(w, err)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

type itemsRequest struct {
	Items []calculator.CargoItem `json:"items"`
}

type validateWeightRequest struct {
	ULDType       string  `json:"uldType"`
	CargoWeightKg float64 `json:"cargoWeightKg"`
	IncludeTare   *bool   `json:"includeTare"`
}

type checkFitRequest struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
	ULDType  string  `json:"uldType"`
}

type requirementsRequest struct {
	TotalWeightKg float64 `json:"totalWeightKg"`
	TotalVolumeM3 float64 `json:"totalVolumeM3"`
	ULDType       string  `json:"uldType"`
}

type compareRequest struct {
	CargoWeightKg float64 `json:"cargoWeightKg"`
	CargoVolumeM3 float64 `json:"cargoVolumeM3"`
}

type uldTypesResponse struct {
	ULDTypes        []uldspec.Spec `json:"uldTypes"`
	DefaultULDType  string         `json:"defaultUldType"`
	KnowledgeBaseID string         `json:"knowledgeBaseId,omitempty"`
}

type toolListResponse struct {
	Tools []tools.Definition `json:"tools"`
}

type toolInvokeResponse struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
