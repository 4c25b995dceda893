package cards

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/shared"
)

type mockRepository struct {
	cards map[int64]*Card
}

func newMockRepository() *mockRepository {
	return &mockRepository{cards: make(map[int64]*Card)}
}

func (m *mockRepository) FindByUserID(ctx context.Context, userID int64) ([]Card, error) {
	var out []Card
	for _, c := range m.cards {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateStatus(ctx context.Context, cardID int64, status CardStatus) error {
	card, ok := m.cards[cardID]
	if !ok {
		return shared.ErrNotFound
	}
	card.Status = status
	return nil
}

func newTestRouter(repo *mockRepository) http.Handler {
	handler := NewHandler(slog.Default(), NewService(repo), authz.Middleware{})
	r := chi.NewRouter()
	r.Route("/api/cards", handler.MountRoutes)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target string, permissions ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	auth := &shared.AuthContext{UserID: 7, SubjectID: "sub-7", Permissions: permissions}
	req = req.WithContext(shared.ContextWithAuth(req.Context(), auth))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListCards(t *testing.T) {
	repo := newMockRepository()
	repo.cards[1] = &Card{CardID: 1, UserID: 7, Status: StatusActive}
	repo.cards[2] = &Card{CardID: 2, UserID: 99, Status: StatusActive}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodGet, "/api/cards/", "CARD:READ")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cardId":1`)
	assert.NotContains(t, rr.Body.String(), `"cardId":2`)
}

func TestListCardsEmptyBodyIsArray(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rr := doRequest(t, router, http.MethodGet, "/api/cards/", "CARD:READ")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListCardsRequiresAuthority(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rr := doRequest(t, router, http.MethodGet, "/api/cards/", "LOAN:READ")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestActivateCard(t *testing.T) {
	repo := newMockRepository()
	repo.cards[1] = &Card{CardID: 1, UserID: 7, Status: StatusInactive}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/api/cards/1/activate", "CARD:ACTIVATE")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, StatusActive, repo.cards[1].Status)
}

func TestBlockCard(t *testing.T) {
	repo := newMockRepository()
	repo.cards[1] = &Card{CardID: 1, UserID: 7, Status: StatusActive}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/api/cards/1/block", "CARD:BLOCK")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, StatusBlocked, repo.cards[1].Status)
}

func TestActivateUnknownCard(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rr := doRequest(t, router, http.MethodPost, "/api/cards/42/activate", "CARD:ACTIVATE")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestActivateBadCardID(t *testing.T) {
	router := newTestRouter(newMockRepository())

	rr := doRequest(t, router, http.MethodPost, "/api/cards/abc/activate", "CARD:ACTIVATE")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestActivateWithoutAuthority(t *testing.T) {
	repo := newMockRepository()
	repo.cards[1] = &Card{CardID: 1, UserID: 7, Status: StatusInactive}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/api/cards/1/activate", "CARD:READ")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, StatusInactive, repo.cards[1].Status)
}
