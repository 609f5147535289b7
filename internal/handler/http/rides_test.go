package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/mock"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/models"
)

const rideBody = `{"pickupLocation":{"lat":40.7128,"lng":-74.006},"dropoffLocation":{"lat":40.758,"lng":-73.9855},"rideType":"economy"}`

var (
	pickup  = models.Location{Lat: 40.7128, Lng: -74.006}
	dropoff = models.Location{Lat: 40.758, Lng: -73.9855}
)

// expectIdentity makes the mocked token service accept token as role.
func expectIdentity(deps testDeps, token, role string) models.Identity {
	identity := models.Identity{SubjectID: "u-" + role, Email: role + "@example.com", Role: role}
	deps.tokens.EXPECT().Verify(gomock.Any(), token).Return(identity, nil).AnyTimes()
	return identity
}

func TestEstimateFares(t *testing.T) {
	h, deps := newMockedHandler(t)
	expectIdentity(deps, "driver-token", models.RoleDriver)

	estimates := []models.FareEstimate{
		{Provider: "Bolt", Fare: 9.10, ETA: 6, RideType: models.RideTypeEconomy},
		{Provider: "Uber", Fare: 10.2, ETA: 4, RideType: models.RideTypeEconomy},
	}
	deps.rides.EXPECT().EstimateFares(gomock.Any(), models.RideRequest{
		PickupLocation: &pickup, DropoffLocation: &dropoff, RideType: models.RideTypeEconomy,
	}).Return(estimates, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/rides/estimates", rideBody, "driver-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, estimates, decodeData[[]models.FareEstimate](t, rec))
}

func TestEstimateFares_ValidationRunsAfterAuth(t *testing.T) {
	h, deps := newMockedHandler(t)
	expectIdentity(deps, "rider-token", models.RoleRider)
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/api/rides/estimates", `{"pickupLocation":{"lat":91,"lng":0}}`, "")
	assertEnvelope(t, rec, http.StatusUnauthorized, app.MsgNoTokenProvided, http.MethodPost, "/api/rides/estimates")

	rec = doRequest(t, router, http.MethodPost, "/api/rides/estimates",
		`{"pickupLocation":{"lat":91,"lng":0},"dropoffLocation":{"lat":45,"lng":120}}`, "rider-token")
	assertEnvelope(t, rec, http.StatusBadRequest, app.MsgInvalidPickupCoordinates, http.MethodPost, "/api/rides/estimates")
}

func TestBookRide(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		identity := expectIdentity(deps, "rider-token", models.RoleRider)

		ride := models.Ride{RideID: "r1", UserID: identity.SubjectID, Provider: "Bolt", Fare: 9.1, Status: models.RideStatusBooked,
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
		deps.rides.EXPECT().BookRide(gomock.Any(), identity, gomock.Any()).Return(ride, nil)

		rec := doRequest(t, h.Init(), http.MethodPost, "/api/rides/book", rideBody, "rider-token")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, ride, decodeData[models.Ride](t, rec))
	})

	t.Run("driver cannot book", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "driver-token", models.RoleDriver)

		rec := doRequest(t, h.Init(), http.MethodPost, "/api/rides/book", rideBody, "driver-token")

		assertEnvelope(t, rec, http.StatusForbidden, app.MsgInsufficientPermissions, http.MethodPost, "/api/rides/book")
	})

	t.Run("unknown provider", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "user-token", models.RoleUser)
		deps.rides.EXPECT().BookRide(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Ride{}, apperror.NewValidation(app.MsgInvalidProvider))

		rec := doRequest(t, h.Init(), http.MethodPost, "/api/rides/book", rideBody, "user-token")

		assertEnvelope(t, rec, http.StatusBadRequest, app.MsgInvalidProvider, http.MethodPost, "/api/rides/book")
	})
}

func TestRideHistory(t *testing.T) {
	t.Run("rides", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		identity := expectIdentity(deps, "rider-token", models.RoleRider)
		deps.rides.EXPECT().RideHistory(gomock.Any(), identity.SubjectID).Return([]models.Ride{{RideID: "r2"}, {RideID: "r1"}}, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/rides/history", "", "rider-token")

		require.Equal(t, http.StatusOK, rec.Code)
		rides := decodeData[[]models.Ride](t, rec)
		require.Len(t, rides, 2)
		assert.Equal(t, "r2", rides[0].RideID)
	})

	t.Run("empty history is an empty list", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "rider-token", models.RoleRider)
		deps.rides.EXPECT().RideHistory(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/rides/history", "", "rider-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
	})
}

func TestSubmitReview(t *testing.T) {
	path := "/api/rides/r1/review"
	body := `{"rating":5,"comment":"great"}`

	t.Run("success", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		identity := expectIdentity(deps, "rider-token", models.RoleRider)
		review := models.Review{ReviewID: "rv1", RideID: "r1", UserID: identity.SubjectID, Rating: 5, Comment: "great"}
		deps.rides.EXPECT().SubmitReview(gomock.Any(), identity.SubjectID, "r1", models.ReviewRequest{Rating: 5, Comment: "great"}).
			Return(review, nil)

		rec := doRequest(t, h.Init(), http.MethodPost, path, body, "rider-token")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, review.ReviewID, decodeData[models.Review](t, rec).ReviewID)
	})

	t.Run("not found", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "rider-token", models.RoleRider)
		deps.rides.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), "r1", gomock.Any()).
			Return(models.Review{}, apperror.NewNotFound(app.MsgRideNotFound))

		rec := doRequest(t, h.Init(), http.MethodPost, path, body, "rider-token")

		assertEnvelope(t, rec, http.StatusNotFound, app.MsgRideNotFound, http.MethodPost, path)
	})

	t.Run("already reviewed", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "rider-token", models.RoleRider)
		deps.rides.EXPECT().SubmitReview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Review{}, apperror.NewConflict(app.MsgRideAlreadyReviewed))

		rec := doRequest(t, h.Init(), http.MethodPost, path, body, "rider-token")

		assertEnvelope(t, rec, http.StatusConflict, app.MsgRideAlreadyReviewed, http.MethodPost, path)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		h, deps := newMockedHandler(t)
		expectIdentity(deps, "rider-token", models.RoleRider)

		rec := doRequest(t, h.Init(), http.MethodPost, path, `{"rating":`, "rider-token")

		assertEnvelope(t, rec, http.StatusBadRequest, app.MsgInvalidJSON, http.MethodPost, path)
	})
}

func TestAllRides(t *testing.T) {
	h, deps := newMockedHandler(t)
	expectIdentity(deps, "admin-token", models.RoleAdmin)
	deps.rides.EXPECT().AllRides(gomock.Any()).Return([]models.Ride{{RideID: "r1"}}, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/admin/rides", "", "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Ride](t, rec), 1)
}

// TestRouter_EndToEnd runs real tokens through the full router: a rider
// reaches a route open to riders and is turned away from an admin route.
func TestRouter_EndToEnd(t *testing.T) {
	tokens := newTokenService(t)
	rides := mock.NewMockRideService(gomock.NewController(t))
	h := NewHandler(&service.Services{TokenService: tokens, RideService: rides}, logger.Nop())
	router := h.Init()

	riderToken := issue(t, tokens, models.RoleRider)
	rides.EXPECT().RideHistory(gomock.Any(), "u1").Return([]models.Ride{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/rides/history", "", riderToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/rides", "", riderToken)
	assertEnvelope(t, rec, http.StatusForbidden, app.MsgInsufficientPermissions, http.MethodGet, "/api/admin/rides")

	adminToken := issue(t, tokens, models.RoleAdmin)
	rides.EXPECT().AllRides(gomock.Any()).Return(nil, nil)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/rides", "", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
