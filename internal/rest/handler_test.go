package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spotQuest/domain"
	"spotQuest/internal/middleware"

	"github.com/labstack/echo/v4"
)

type fakeExploration struct {
	gotPlaceID uint
	gotNear    *domain.LatLng
	err        error
}

func (f *fakeExploration) Stats(context.Context, uint) (domain.ExplorationSnapshot, error) {
	return domain.ExplorationSnapshot{ExploredCount: 2, TotalNeighborhoods: 12, Percentage: 17}, f.err
}

func (f *fakeExploration) CheckNewNeighborhood(_ context.Context, _ uint, placeID uint) (domain.NewNeighborhoodResult, error) {
	f.gotPlaceID = placeID
	if f.err != nil {
		return domain.NewNeighborhoodResult{}, f.err
	}
	return domain.NewNeighborhoodResult{
		IsNewNeighborhood:  true,
		Neighborhood:       &domain.NeighborhoodRef{Name: "Kensington Market", Area: "Downtown"},
		TotalExplored:      1,
		TotalNeighborhoods: 12,
	}, nil
}

func (f *fakeExploration) Neighborhoods(near *domain.LatLng) []domain.NeighborhoodListing {
	f.gotNear = near
	return []domain.NeighborhoodListing{{Neighborhood: domain.Neighborhood{Name: "Chinatown"}}}
}

type fakeFriends struct{ err error }

func (f fakeFriends) Compatibility(context.Context, uint, uint) (domain.CompatibilityResult, error) {
	return domain.CompatibilityResult{Score: 60, SharedCount: 5, SharedIntents: []string{"date"}}, f.err
}

func (f fakeFriends) Compare(context.Context, uint, uint) (domain.ExplorationComparison, error) {
	return domain.ExplorationComparison{Shared: 1, Neither: 11}, f.err
}

type fakeBadges struct{ err error }

func (f fakeBadges) Evaluate(context.Context, uint) ([]domain.BadgeDefinition, error) {
	return []domain.BadgeDefinition{{Type: "first_visit", Name: "First Steps"}}, f.err
}

func (f fakeBadges) List(context.Context, uint) ([]domain.BadgeStatus, error) {
	return []domain.BadgeStatus{{BadgeDefinition: domain.BadgeDefinition{Type: "curator"}, Progress: 3}}, f.err
}

func asUser(id uint) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id != 0 {
				c.Set("user_id", id)
			}
			return next(c)
		}
	}
}

func newTestServer(userID uint, exp *fakeExploration, friends fakeFriends, badges fakeBadges) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	api := e.Group("/api/v1", asUser(userID))

	eh := NewExplorationHandler(exp, time.Second)
	api.GET("/exploration-stats", eh.GetStats)
	api.GET("/exploration-stats/check-new-neighborhood", eh.CheckNewNeighborhood)
	api.GET("/neighborhoods", eh.ListNeighborhoods)

	fh := NewFriendsHandler(friends, friends, time.Second)
	api.GET("/friends/:id/compatibility", fh.GetCompatibility)
	api.GET("/friends/:id/exploration-compare", fh.GetExplorationCompare)

	bh := NewBadgeHandler(badges, time.Second)
	api.POST("/badges/check", bh.Check)
	api.GET("/badges", bh.List)

	return e
}

func do(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandlersHappyPath(t *testing.T) {
	e := newTestServer(1, &fakeExploration{}, fakeFriends{}, fakeBadges{})

	cases := []struct {
		method, target, want string
	}{
		{http.MethodGet, "/api/v1/exploration-stats", `"explored_count":2`},
		{http.MethodGet, "/api/v1/exploration-stats/check-new-neighborhood?placeId=4", `"is_new_neighborhood":true`},
		{http.MethodGet, "/api/v1/friends/2/compatibility", `"score":60`},
		{http.MethodGet, "/api/v1/friends/2/exploration-compare", `"neither":11`},
		{http.MethodPost, "/api/v1/badges/check", `"first_visit"`},
		{http.MethodGet, "/api/v1/badges", `"progress":3`},
		{http.MethodGet, "/api/v1/neighborhoods", `"Chinatown"`},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			rec := do(e, tc.method, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status: want=200 got=%d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body: want substring %s got=%s", tc.want, rec.Body.String())
			}
		})
	}
}

func TestCheckNewNeighborhoodValidation(t *testing.T) {
	exp := &fakeExploration{}
	e := newTestServer(1, exp, fakeFriends{}, fakeBadges{})

	for _, target := range []string{
		"/api/v1/exploration-stats/check-new-neighborhood",
		"/api/v1/exploration-stats/check-new-neighborhood?placeId=",
		"/api/v1/exploration-stats/check-new-neighborhood?placeId=abc",
	} {
		rec := do(e, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: want=400 got=%d", target, rec.Code)
		}
	}

	do(e, http.MethodGet, "/api/v1/exploration-stats/check-new-neighborhood?placeId=42")
	if exp.gotPlaceID != 42 {
		t.Fatalf("placeId: want=42 got=%d", exp.gotPlaceID)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", domain.Errorf(domain.ErrForbidden, "not friends"), http.StatusForbidden},
		{"not found", domain.Errorf(domain.ErrNotFound, "user not found"), http.StatusNotFound},
		{"invalid", domain.Errorf(domain.ErrInvalidInput, "cannot compare with yourself"), http.StatusBadRequest},
		{"store down", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(1, &fakeExploration{err: tc.err}, fakeFriends{err: tc.err}, fakeBadges{err: tc.err})

			rec := do(e, http.MethodGet, "/api/v1/friends/2/compatibility")
			if rec.Code != tc.want {
				t.Fatalf("status: want=%d got=%d", tc.want, rec.Code)
			}
			if tc.want == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "connection refused") {
				t.Fatalf("internal error details must not leak: %s", rec.Body.String())
			}
		})
	}
}

func TestUnauthenticatedAndBadFriendID(t *testing.T) {
	anon := newTestServer(0, &fakeExploration{}, fakeFriends{}, fakeBadges{})
	if rec := do(anon, http.MethodPost, "/api/v1/badges/check"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: want=401 got=%d", rec.Code)
	}

	e := newTestServer(1, &fakeExploration{}, fakeFriends{}, fakeBadges{})
	if rec := do(e, http.MethodGet, "/api/v1/friends/abc/compatibility"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad friend id: want=400 got=%d", rec.Code)
	}
}

func TestListNeighborhoodsNear(t *testing.T) {
	exp := &fakeExploration{}
	e := newTestServer(1, exp, fakeFriends{}, fakeBadges{})

	rec := do(e, http.MethodGet, "/api/v1/neighborhoods?lat=43.65&lng=-79.40")
	if rec.Code != http.StatusOK || exp.gotNear == nil || exp.gotNear.Lat != 43.65 {
		t.Fatalf("near: status=%d near=%v", rec.Code, exp.gotNear)
	}

	for _, target := range []string{
		"/api/v1/neighborhoods?lat=43.65",
		"/api/v1/neighborhoods?lat=95&lng=0",
		"/api/v1/neighborhoods?lat=x&lng=y",
	} {
		if rec := do(e, http.MethodGet, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: want=400 got=%d", target, rec.Code)
		}
	}
}
