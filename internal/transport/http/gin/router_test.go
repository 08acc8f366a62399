package httpgin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostormat/prostormat-api/internal/domain"
	"github.com/prostormat/prostormat-api/internal/service"
	"github.com/prostormat/prostormat-api/internal/service/listing"
)

const testAdminToken = "test-admin-token"

type stubVenueSource struct {
	venues []domain.Venue
	err    error

	gotStatuses []domain.VenueStatus
}

func (s *stubVenueSource) ListForRanking(_ context.Context, statuses []domain.VenueStatus, _ bool) ([]domain.Venue, error) {
	s.gotStatuses = statuses

	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		for _, st := range statuses {
			if v.Status == st {
				out = append(out, v)
				break
			}
		}
	}

	return out, nil
}

func listingRouter(t *testing.T, src *stubVenueSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.DiscardHandler)
	svcs := &service.Services{
		Listing: listing.New(src, nil, logger, listing.Config{}),
	}

	return NewRouter(svcs, nil, testAdminToken, logger)
}

func catalogOf(n int) []domain.Venue {
	venues := make([]domain.Venue, 0, n)
	for i := int64(1); i <= int64(n); i++ {
		venues = append(venues, domain.Venue{
			ID:     i,
			Slug:   fmt.Sprintf("venue-%d", i),
			Name:   fmt.Sprintf("Venue %d", i),
			Status: domain.VenuePublished,
		})
	}
	return venues
}

func getVenues(t *testing.T, r *gin.Engine, url string, headers map[string]string) (*httptest.ResponseRecorder, ListVenuesResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body ListVenuesResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}

	return w, body
}

func TestListVenuesEchoesSuppliedSeed(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{venues: catalogOf(45)})

	w, body := getVenues(t, r, "/venues?seed=42&page=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(42), body.OrderSeed)
	assert.Len(t, body.Venues, 20)
	assert.Equal(t, 45, body.TotalCount)
	assert.Equal(t, 3, body.TotalPages)
	assert.True(t, body.HasMore)
}

func TestListVenuesSeedReplaysSameOrder(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{venues: catalogOf(45)})

	_, first := getVenues(t, r, "/venues", nil)
	_, replay := getVenues(t, r, fmt.Sprintf("/venues?seed=%d", first.OrderSeed), nil)

	assert.Equal(t, first.Venues, replay.Venues)
}

func TestListVenuesMalformedSeedMintsFresh(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{venues: catalogOf(5)})

	w, body := getVenues(t, r, "/venues?seed=not-a-number", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Venues, 5)
}

func TestListVenuesLastPage(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{venues: catalogOf(45)})

	_, body := getVenues(t, r, "/venues?seed=42&page=3", nil)

	assert.Len(t, body.Venues, 5)
	assert.False(t, body.HasMore)

	_, past := getVenues(t, r, "/venues?seed=42&page=4", nil)
	assert.Empty(t, past.Venues)
	assert.False(t, past.HasMore)
}

func TestListVenuesIncludeHiddenRequiresAdminToken(t *testing.T) {
	venues := append(catalogOf(3), domain.Venue{
		ID:     99,
		Slug:   "under-renovation",
		Status: domain.VenueHidden,
	})

	tests := []struct {
		name      string
		headers   map[string]string
		wantTotal int
	}{
		{
			name:      "no token downgrades silently",
			wantTotal: 3,
		},
		{
			name:      "wrong token downgrades silently",
			headers:   map[string]string{"X-Admin-Token": "wrong"},
			wantTotal: 3,
		},
		{
			name:      "valid token sees hidden venues",
			headers:   map[string]string{"X-Admin-Token": testAdminToken},
			wantTotal: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := listingRouter(t, &stubVenueSource{venues: venues})

			w, body := getVenues(t, r, "/venues?include_hidden=true&seed=1", tt.headers)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantTotal, body.TotalCount)
		})
	}
}

func TestListVenuesStoreFailureYieldsEmptyPage(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{err: errors.New("connection refused")})

	w, body := getVenues(t, r, "/venues?seed=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Venues)
	assert.Equal(t, 0, body.TotalCount)
	assert.Equal(t, 1, body.CurrentPage)
	assert.False(t, body.HasMore)
}

func TestListVenuesForwardsFilters(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "Rooftop Bar", District: "Praha 1", Status: domain.VenuePublished},
		{ID: 2, Name: "Cellar", District: "Praha 3", Status: domain.VenuePublished},
	}
	r := listingRouter(t, &stubVenueSource{venues: venues})

	_, body := getVenues(t, r, "/venues?district=Praha+1&seed=1", nil)

	require.Equal(t, 1, body.TotalCount)
	assert.Equal(t, "Rooftop Bar", body.Venues[0].Name)
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{})

	req := httptest.NewRequest(http.MethodPut, "/admin/venues/1/priority", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	r := listingRouter(t, &stubVenueSource{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
