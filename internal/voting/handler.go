package voting

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/httputil"
	"treasury/pkg/requestcontext"
)

// RecordRequest is the body of POST /votes/{org}/{id}.
type RecordRequest struct {
	Result string `json:"result"`

	parsed models.VoteResult
}

func (r *RecordRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	v, err := models.ParseVoteResult(r.Result)
	if err != nil {
		return err
	}
	r.parsed = v
	return nil
}

// Handler exposes result recording for an adapter. It stands in for tallying
// in development deployments.
type Handler struct {
	adapter *Adapter
	logger  *slog.Logger
}

func NewHandler(adapter *Adapter, logger *slog.Logger) *Handler {
	return &Handler{adapter: adapter, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/votes/{org}/{id}", h.HandleRecord)
}

// HandleRecord handles POST /votes/{org}/{id}.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	org, err := domain.ParseOrganizationID(chi.URLParam(r, "org"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := domain.ParseProposalID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.adapter.Record(ctx, org, id, req.parsed); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "vote result recorded",
		"request_id", requestID,
		"organization", org,
		"proposal_id", id,
		"result", req.parsed,
		"actor", requestcontext.Caller(ctx),
	)
	w.WriteHeader(http.StatusNoContent)
}
