package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/service"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/httputil"
	"treasury/pkg/requestcontext"
)

// Service defines the proposal operations exposed over HTTP.
type Service interface {
	Submit(ctx context.Context, req service.SubmitRequest) (*models.Proposal, error)
	Process(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) error
	Get(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) (*models.Proposal, error)
	List(ctx context.Context, org domain.OrganizationID) ([]*models.Proposal, error)
	ReceiveFunds(ctx context.Context, from, token domain.Address) error
}

// Handler wires proposal endpoints to the proposal service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts proposal endpoints on the router. Callers are expected to
// have applied RequireAuth.
func (h *Handler) Register(r chi.Router) {
	r.Route("/organizations/{org}/proposals", func(r chi.Router) {
		r.Post("/", h.HandleSubmit)
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Post("/{id}/process", h.HandleProcess)
	})
	r.Post("/custody/receive", h.HandleReceive)
}

// HandleSubmit handles POST /organizations/{org}/proposals.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	caller, ok := h.requireCaller(ctx, w)
	if !ok {
		return
	}
	org, err := domain.ParseOrganizationID(chi.URLParam(r, "org"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[SubmitProposalRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	p, err := h.service.Submit(ctx, service.SubmitRequest{
		Organization:       org,
		ProposalID:         req.parsedID,
		Applicant:          req.parsedApplicant,
		Token:              req.parsedToken,
		Amount:             req.Amount,
		Action:             req.parsedAction,
		DebtTokenRecipient: req.parsedRecipient,
		Data:               req.Data,
		Caller:             caller,
	})
	if err != nil {
		h.logFailure(ctx, "proposal submit failed", err,
			"request_id", requestID,
			"organization", org,
			"proposal_id", req.parsedID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "proposal submitted",
		"request_id", requestID,
		"organization", org,
		"proposal_id", p.ID,
		"action", p.Action,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromProposal(p))
}

// HandleProcess handles POST /organizations/{org}/proposals/{id}/process.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	if _, ok := h.requireCaller(ctx, w); !ok {
		return
	}
	org, id, ok := h.proposalKey(w, r)
	if !ok {
		return
	}

	if err := h.service.Process(ctx, org, id); err != nil {
		h.logFailure(ctx, "proposal process failed", err,
			"request_id", requestID,
			"organization", org,
			"proposal_id", id,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "proposal processed",
		"request_id", requestID,
		"organization", org,
		"proposal_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleGet handles GET /organizations/{org}/proposals/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	org, id, ok := h.proposalKey(w, r)
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), org, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProposal(p))
}

// HandleList handles GET /organizations/{org}/proposals.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	org, err := domain.ParseOrganizationID(chi.URLParam(r, "org"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	list, err := h.service.List(r.Context(), org)
	if err != nil {
		h.logFailure(r.Context(), "proposal list failed", err, "organization", org)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProposals(list))
}

// HandleReceive handles POST /custody/receive. Unsolicited transfers are always
// refused.
func (h *Handler) HandleReceive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.requireCaller(ctx, w)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReceiveFundsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	httputil.WriteError(w, h.service.ReceiveFunds(ctx, caller, req.parsedToken))
}

func (h *Handler) requireCaller(ctx context.Context, w http.ResponseWriter) (domain.Address, bool) {
	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return "", false
	}
	return caller, true
}

func (h *Handler) proposalKey(w http.ResponseWriter, r *http.Request) (domain.OrganizationID, domain.ProposalID, bool) {
	org, err := domain.ParseOrganizationID(chi.URLParam(r, "org"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", "", false
	}
	id, err := domain.ParseProposalID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", "", false
	}
	return org, id, true
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, kv ...any) {
	kv = append(kv, "error", err)
	if httputil.StatusFor(dErrors.CodeOf(err)) < http.StatusInternalServerError {
		h.logger.WarnContext(ctx, msg, kv...)
		return
	}
	h.logger.ErrorContext(ctx, msg, kv...)
}
