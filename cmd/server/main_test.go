package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"treasury/internal/platform/config"
	"treasury/internal/proposal/handler/mocks"
	"treasury/internal/voting"
	"treasury/pkg/domain"
	"treasury/pkg/testutil"
)

func TestAuthenticatedRoutes_VoteRecorder(t *testing.T) {
	const (
		org = "0x00000000000000000000000000000000000000aa"
		id  = "p-1"
	)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mount := func(t *testing.T, enabled bool) (chi.Router, *voting.Adapter, int) {
		svc := mocks.NewMockService(gomock.NewController(t))
		adapter := voting.NewAdapter(domain.Address("0x00000000000000000000000000000000000000cc"))
		routes := authenticatedRoutes(config.Server{VoteRecorderEnabled: enabled}, svc, adapter, log)
		r := chi.NewRouter()
		for _, route := range routes {
			route.Register(r)
		}
		return r, adapter, len(routes)
	}

	t.Run("disabled by default leaves /votes unrouted", func(t *testing.T) {
		r, _, n := mount(t, false)
		assert.Equal(t, 1, n)

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/votes/"+org+"/"+id, map[string]string{"result": "pass"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("enabled mounts the recorder", func(t *testing.T) {
		r, adapter, n := mount(t, true)
		assert.Equal(t, 2, n)
		require.NoError(t, adapter.StartNewVoting(context.Background(), domain.OrganizationID(org), domain.ProposalID(id), nil))

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/votes/"+org+"/"+id, map[string]string{"result": "pass"}))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
