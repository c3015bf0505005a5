package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/middleware"
)

type fakeDashboardReservations struct {
	out    *dto.DashboardReservationsDTO
	err    error
	shopID uint
	userID uint
	mode   string
}

func (f *fakeDashboardReservations) Execute(_ context.Context, shopID, userID uint, mode string) (*dto.DashboardReservationsDTO, error) {
	f.shopID = shopID
	f.userID = userID
	f.mode = mode
	return f.out, f.err
}

// dashboardRouter wires the handler behind a stub of the auth middleware's
// context contract.
func dashboardRouter(h *DashboardHandler, shopID, userID uint) *gin.Engine {
	r := gin.New()
	r.GET("/api/dashboard/shops/:id/reservations", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextShopID, shopID)
		c.Next()
	}, h.Reservations)
	return r
}

func TestDashboardReservations_OK(t *testing.T) {
	uc := &fakeDashboardReservations{
		out: &dto.DashboardReservationsDTO{
			Mode:         "tomorrow",
			Reservations: []backend.ReservationItem{{ID: "rsv-1", GuestName: "山田太郎"}},
		},
	}
	h := NewDashboardHandler(uc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/shops/1/reservations?mode=tomorrow", nil)
	w := httptest.NewRecorder()
	dashboardRouter(h, 1, 5).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), uc.shopID)
	assert.Equal(t, uint(5), uc.userID)
	assert.Equal(t, "tomorrow", uc.mode)

	var body dto.DashboardReservationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "rsv-1", body.Reservations[0].ID)
}

func TestDashboardReservations_DefaultsToToday(t *testing.T) {
	uc := &fakeDashboardReservations{out: &dto.DashboardReservationsDTO{Mode: "today"}}
	h := NewDashboardHandler(uc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/shops/1/reservations", nil)
	w := httptest.NewRecorder()
	dashboardRouter(h, 1, 5).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "today", uc.mode)
}

func TestDashboardReservations_ForeignShopRejected(t *testing.T) {
	uc := &fakeDashboardReservations{}
	h := NewDashboardHandler(uc, nil)

	// Token is scoped to shop 2, path asks for shop 1.
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/shops/1/reservations", nil)
	w := httptest.NewRecorder()
	dashboardRouter(h, 2, 5).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "shop_mismatch")
	assert.Empty(t, uc.mode, "use case is never reached")
}

func TestDashboardReservations_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid mode", httperr.ErrBusiness("invalid_mode"), http.StatusBadRequest, "invalid_mode"},
		{"unknown shop", httperr.ErrBusiness("shop_not_found"), http.StatusNotFound, "shop_not_found"},
		{"backend down", errors.New("connection refused"), http.StatusBadGateway, "reservations_unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewDashboardHandler(&fakeDashboardReservations{err: tc.err}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/shops/1/reservations", nil)
			w := httptest.NewRecorder()
			dashboardRouter(h, 1, 5).ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}
