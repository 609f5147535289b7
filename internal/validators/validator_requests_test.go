// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRideRequest() models.RideRequest {
	return models.RideRequest{
		PickupLocation:  &models.Location{Lat: 40.7128, Lng: -74.0060},
		DropoffLocation: &models.Location{Lat: 40.7580, Lng: -73.9855},
		RideType:        models.RideTypeEconomy,
	}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "rider@example.com",
		Password: "password123",
		Name:     "Jane",
		Phone:    "+15551234567",
		Role:     models.RoleRider,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), validRideRequest(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// RideRequest
// ---------------------------------------------------------------------------

func TestValidate_RideRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.RideRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.RideRequest) {}},
		{name: "empty ride type allowed", modify: func(r *models.RideRequest) { r.RideType = "" }},
		{name: "missing pickup", modify: func(r *models.RideRequest) { r.PickupLocation = nil }, wantErr: ErrLocationsRequired},
		{name: "missing dropoff", modify: func(r *models.RideRequest) { r.DropoffLocation = nil }, wantErr: ErrLocationsRequired},
		{name: "pickup out of range", modify: func(r *models.RideRequest) { r.PickupLocation.Lat = 91 }, wantErr: ErrInvalidPickupLocation},
		{name: "dropoff out of range", modify: func(r *models.RideRequest) { r.DropoffLocation.Lng = -181 }, wantErr: ErrInvalidDropoffLocation},
		{name: "unknown ride type", modify: func(r *models.RideRequest) { r.RideType = "luxury" }, wantErr: ErrInvalidRideType},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRideRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RideRequest_NilPointer(t *testing.T) {
	var req *models.RideRequest
	assert.ErrorIs(t, NewRequestValidator().Validate(context.Background(), req), ErrLocationsRequired)
}

func TestValidate_RideRequest_Normalizes(t *testing.T) {
	req := validRideRequest()
	req.RideType = "  Premium "
	req.Provider = " Uber"

	require.NoError(t, NewRequestValidator().Validate(context.Background(), &req))
	assert.Equal(t, models.RideTypePremium, req.RideType)
	assert.Equal(t, "uber", req.Provider)
}

func TestValidate_RideRequest_ErrorMessages(t *testing.T) {
	req := validRideRequest()
	req.PickupLocation = &models.Location{Lat: 91, Lng: 0}

	err := NewRequestValidator().Validate(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Invalid pickup coordinates", err.Error())
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.RegisterRequest) {}},
		{name: "no phone", modify: func(r *models.RegisterRequest) { r.Phone = "" }},
		{name: "no role", modify: func(r *models.RegisterRequest) { r.Role = "" }},
		{name: "bad email", modify: func(r *models.RegisterRequest) { r.Email = "rider" }, wantErr: ErrInvalidEmail},
		{name: "bad phone", modify: func(r *models.RegisterRequest) { r.Phone = "123" }, wantErr: ErrInvalidPhone},
		{name: "short password", modify: func(r *models.RegisterRequest) { r.Password = "short" }, wantErr: ErrPasswordTooShort},
		{name: "long password", modify: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", MaxPasswordBytes+1) }, wantErr: ErrPasswordTooLong},
		{name: "admin role", modify: func(r *models.RegisterRequest) { r.Role = models.RoleAdmin }, wantErr: ErrInvalidRole},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterRequest_Normalizes(t *testing.T) {
	req := validRegisterRequest()
	req.Email = "  Rider@Example.COM "
	req.Name = " <b>Jane</b> "
	req.Role = "DRIVER"

	require.NoError(t, NewRequestValidator().Validate(context.Background(), &req))
	assert.Equal(t, "rider@example.com", req.Email)
	assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", req.Name)
	assert.Equal(t, models.RoleDriver, req.Role)
}

// ---------------------------------------------------------------------------
// ReviewRequest
// ---------------------------------------------------------------------------

func TestValidate_ReviewRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ReviewRequest
		wantErr error
	}{
		{name: "valid", req: models.ReviewRequest{Rating: 5, Comment: "great"}},
		{name: "no comment", req: models.ReviewRequest{Rating: 1}},
		{name: "rating zero", req: models.ReviewRequest{Rating: 0}, wantErr: ErrInvalidRating},
		{name: "rating six", req: models.ReviewRequest{Rating: 6}, wantErr: ErrInvalidRating},
		{name: "comment at limit", req: models.ReviewRequest{Rating: 3, Comment: strings.Repeat("a", MaxCommentLength)}},
		{name: "comment too long", req: models.ReviewRequest{Rating: 3, Comment: strings.Repeat("a", MaxCommentLength+1)}, wantErr: ErrCommentTooLong},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReviewRequest_SanitizesComment(t *testing.T) {
	req := models.ReviewRequest{Rating: 4, Comment: " <script>alert(1)</script> "}

	require.NoError(t, NewRequestValidator().Validate(context.Background(), &req))
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", req.Comment)
}

func TestValidate_RideRequest_MissingCoordinateFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty objects", body: `{"pickupLocation":{},"dropoffLocation":{}}`, wantErr: ErrInvalidPickupLocation},
		{name: "pickup without lng", body: `{"pickupLocation":{"lat":1},"dropoffLocation":{"lat":1,"lng":1}}`, wantErr: ErrInvalidPickupLocation},
		{name: "dropoff without lat", body: `{"pickupLocation":{"lat":1,"lng":1},"dropoffLocation":{"lng":1}}`, wantErr: ErrInvalidDropoffLocation},
		{name: "null island is valid", body: `{"pickupLocation":{"lat":0,"lng":0},"dropoffLocation":{"lat":1,"lng":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.RideRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := NewRequestValidator().Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
