package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/usecase"
)

const letterFilename = "Loan_Sanction_Letter.pdf"

// SanctionHandler serves the sanction pipeline: issue, download, email.
type SanctionHandler struct {
	issue  *usecase.IssueSanctionUseCase
	email  *usecase.EmailSanctionUseCase
	logger *slog.Logger
}

// NewSanctionHandler creates the handler.
func NewSanctionHandler(issue *usecase.IssueSanctionUseCase, email *usecase.EmailSanctionUseCase, logger *slog.Logger) *SanctionHandler {
	return &SanctionHandler{issue: issue, email: email, logger: logger}
}

// Register mounts the sanction routes.
func (h *SanctionHandler) Register(r chi.Router) {
	r.Post("/sanctions", h.handleIssue)
	r.Post("/sanctions/letter", h.handleLetter)
	r.Post("/sanctions/email", h.handleEmail)
}

func (h *SanctionHandler) handleIssue(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueSanctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	start := time.Now()
	resp, err := h.issue.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("sanction request refused", "error", err)
		writeError(w, err)
		return
	}

	h.logger.Info("sanction letter issued",
		"reference_id", resp.ReferenceID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *SanctionHandler) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueSanctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.issue.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("letter download refused", "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+letterFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.DocumentPDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.DocumentPDF)
}

func (h *SanctionHandler) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.EmailSanctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.email.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("email dispatch refused", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
