package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"

	// Register decoders for the formats the upload form accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/gist-api/internal/api/shared"
	"github.com/phrazzld/gist-api/internal/domain"
	"github.com/phrazzld/gist-api/internal/service"
)

// maxImageUploadBytes bounds multipart form parsing.
const maxImageUploadBytes = 16 << 20

// AnalyzeHandler handles /analyze requests in both of their encodings:
// JSON for summarization and multipart form-data for image analysis.
type AnalyzeHandler struct {
	service service.AnalysisService
	logger  *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: analysisService,
		logger:  logger,
	}
}

// Analyze handles POST /analyze requests, dispatching on content type.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		h.handleSummarize(w, r)
	case strings.HasPrefix(contentType, "multipart/form-data"):
		h.handleImageContext(w, r)
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unsupported request format or mode")
	}
}

// handleSummarize processes a JSON summarization request.
func (h *AnalyzeHandler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Mode != "" && req.Mode != string(domain.ModeSummarize) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unsupported JSON mode")
		return
	}

	domainReq, err := domain.NewSummarizeRequest(req.Text, req.Options.toDomain())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	result, err := h.service.Summarize(r.Context(), domainReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		Summary: result.Text,
		Meta: Meta{
			Model:     result.Model,
			Mode:      string(result.Mode),
			Source:    string(result.Source),
			RequestID: chimiddleware.GetReqID(r.Context()),
			Options:   req.Options,
		},
	})
}

// handleImageContext processes a multipart image-analysis request.
func (h *AnalyzeHandler) handleImageContext(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if r.FormValue("mode") != string(domain.ModeImageContext) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unsupported request format or mode")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Image file missing")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			h.logger.Warn("failed to close uploaded file", "error", cerr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read image file")
		return
	}

	options := parseOptionsField(r.FormValue("options"), h.logger)

	domainReq, err := domain.NewImageRequest(data, header.Header.Get("Content-Type"), options.toDomain())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	result, err := h.service.DescribeImage(r.Context(), domainReq)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalysisResponse{
		Analysis: result.Text,
		Meta: Meta{
			Model:     result.Model,
			Mode:      string(result.Mode),
			Source:    string(result.Source),
			ImageSize: imageDimensions(data),
			RequestID: chimiddleware.GetReqID(r.Context()),
			Options:   options,
		},
	})
}

// parseOptionsField decodes the options form field. Malformed JSON is
// tolerated and treated as no options at all.
func parseOptionsField(raw string, logger *slog.Logger) OptionsPayload {
	var options OptionsPayload
	if raw == "" {
		return options
	}

	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		logger.Debug("ignoring malformed options field", "error", err)
		return OptionsPayload{}
	}

	return options
}

// imageDimensions reports the uploaded image's size as "WxH" for the
// response metadata, or "unknown" when the bytes cannot be decoded. A
// failed decode does not reject the request; the model may still accept
// formats this binary has no decoder for.
func imageDimensions(data []byte) string {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
}
