package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/usecase"
)

// maxUploadBytes caps document uploads for field extraction.
const maxUploadBytes = 10 << 20

// AdvisoryHandler serves the pre-qualification flow and the directory
// lookups behind it.
type AdvisoryHandler struct {
	prequalify *usecase.PrequalifyUseCase
	customers  *usecase.GetCustomerUseCase
	scores     *usecase.GetCreditScoreUseCase
	offers     *usecase.GetOffersUseCase
	extract    *usecase.ExtractApplicantUseCase
	logger     *slog.Logger
}

// NewAdvisoryHandler creates the handler.
func NewAdvisoryHandler(
	prequalify *usecase.PrequalifyUseCase,
	customers *usecase.GetCustomerUseCase,
	scores *usecase.GetCreditScoreUseCase,
	offers *usecase.GetOffersUseCase,
	extract *usecase.ExtractApplicantUseCase,
	logger *slog.Logger,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		prequalify: prequalify,
		customers:  customers,
		scores:     scores,
		offers:     offers,
		extract:    extract,
		logger:     logger,
	}
}

// Register mounts the advisory routes.
func (h *AdvisoryHandler) Register(r chi.Router) {
	r.Post("/prequalifications", h.handlePrequalify)
	r.Post("/documents/extract", h.handleExtract)
	r.Get("/customers/{mobile}", h.handleCustomer)
	r.Get("/credit-scores/{pan}", h.handleCreditScore)
	r.Get("/offers/{customerID}", h.handleOffers)
}

func (h *AdvisoryHandler) handlePrequalify(w http.ResponseWriter, r *http.Request) {
	var req dto.PrequalificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.prequalify.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("prequalification refused", "error", err)
		writeError(w, err)
		return
	}

	h.logger.Info("prequalification advised",
		"customer_id", resp.CustomerID,
		"decision", resp.Decision,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdvisoryHandler) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read document"})
		return
	}

	resp, err := h.extract.Execute(r.Context(), header.Filename, data)
	if err != nil {
		h.logger.Warn("document extraction failed", "filename", header.Filename, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AdvisoryHandler) handleCustomer(w http.ResponseWriter, r *http.Request) {
	profile, err := h.customers.Execute(r.Context(), chi.URLParam(r, "mobile"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *AdvisoryHandler) handleCreditScore(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scores.Execute(r.Context(), chi.URLParam(r, "pan"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdvisoryHandler) handleOffers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.offers.Execute(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
