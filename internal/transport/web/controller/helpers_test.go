package controller

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/jbeshir/content-ratings/internal/command"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin  = domain.User{ID: 1, DisplayName: "Ada", Role: domain.RoleAdministrator}
	testAuthor = domain.User{ID: 2, DisplayName: "Grace", Email: "grace@example.com", Role: domain.RoleAuthor}
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithActor(actor domain.User) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithActor(ctx, actor)
		return r.WithContext(ctx)
	}
}

func testIssuer(t *testing.T) *nonce.Issuer {
	t.Helper()
	issuer, err := nonce.NewIssuer("controller-test-secret")
	require.NoError(t, err)
	return issuer
}

// testSettings returns a settings command that always reports scale.
func testSettings(t *testing.T, scale domain.Scale) *cmdmocks.MockCommand[command.Empty, domain.Settings] {
	settings := cmdmocks.NewMockCommand[command.Empty, domain.Settings](t)
	settings.EXPECT().
		Execute(mock.Anything, command.Empty{}).
		Return(domain.Settings{RatingScale: scale}, nil).
		Maybe()
	return settings
}
