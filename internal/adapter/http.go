package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath  = "/api/auth/register"
	loginPath     = "/api/auth/login"
	mePath        = "/api/auth/me"
	estimatesPath = "/api/rides/estimates"
	bookPath      = "/api/rides/book"
	historyPath   = "/api/rides/history"
	reviewPath    = "/api/rides/{rideId}/review"
)

type httpRideAPI struct {
	client *utils.HTTPClient
	tokens TokenStore

	logger *logger.Logger
}

// NewHTTPRideAPI constructs the REST implementation of [RideAPI].
// The base URL from adapterCfg is normalised ("localhost:5000" becomes
// "http://localhost:5000"). Every outgoing request carries the token held
// by tokens, if any.
func NewHTTPRideAPI(adapterCfg config.ClientAdapter, tokens TokenStore, logger *logger.Logger) (RideAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	api := &httpRideAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}
	api.client.
		OnBeforeRequest(api.injectToken).
		OnAfterResponse(api.logResponse)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// injectToken attaches the stored bearer token unless the request already
// carries an Authorization header.
func (h *httpRideAPI) injectToken(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get("Authorization") != "" {
		return nil
	}

	token, err := h.tokens.Load()
	if errors.Is(err, ErrTokenNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	r.SetHeader("Authorization", utils.BearerHeader(token))
	return nil
}

func (h *httpRideAPI) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")
	return nil
}

// Register implements [RideAPI]. It POSTs to /api/auth/register and saves
// the issued token.
func (h *httpRideAPI) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		Post(registerPath)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register request: %w", err)
	}

	return h.authenticated(resp)
}

// Login implements [RideAPI]. It POSTs to /api/auth/login and saves the
// issued token.
func (h *httpRideAPI) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post(loginPath)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}

	return h.authenticated(resp)
}

// authenticated decodes an AuthResult and stores its token. The
// Authorization response header wins over the token in the body.
func (h *httpRideAPI) authenticated(resp *resty.Response) (models.AuthResult, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	result, err := decodeData[models.AuthResult](resp)
	if err != nil {
		return models.AuthResult{}, err
	}

	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		result.Token = token
	}
	if result.Token == "" {
		return models.AuthResult{}, ErrMissingToken
	}

	if err = h.tokens.Save(result.Token); err != nil {
		return models.AuthResult{}, fmt.Errorf("save token: %w", err)
	}

	return result, nil
}

// Me implements [RideAPI].
func (h *httpRideAPI) Me(ctx context.Context) (models.Identity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(mePath)
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}

	return handle[models.Identity](resp)
}

// EstimateFares implements [RideAPI]. It POSTs to /api/rides/estimates.
func (h *httpRideAPI) EstimateFares(ctx context.Context, request models.RideRequest) ([]models.FareEstimate, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		Post(estimatesPath)
	if err != nil {
		return nil, fmt.Errorf("estimate fares request: %w", err)
	}

	return handle[[]models.FareEstimate](resp)
}

// BookRide implements [RideAPI]. It POSTs to /api/rides/book.
func (h *httpRideAPI) BookRide(ctx context.Context, request models.RideRequest) (models.Ride, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		Post(bookPath)
	if err != nil {
		return models.Ride{}, fmt.Errorf("book ride request: %w", err)
	}

	return handle[models.Ride](resp)
}

// RideHistory implements [RideAPI]. It GETs /api/rides/history.
func (h *httpRideAPI) RideHistory(ctx context.Context) ([]models.Ride, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(historyPath)
	if err != nil {
		return nil, fmt.Errorf("ride history request: %w", err)
	}

	return handle[[]models.Ride](resp)
}

// SubmitReview implements [RideAPI]. The ride id is path-escaped.
func (h *httpRideAPI) SubmitReview(ctx context.Context, rideID string, review models.ReviewRequest) (models.Review, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("rideId", rideID).
		SetBody(review).
		Post(reviewPath)
	if err != nil {
		return models.Review{}, fmt.Errorf("submit review request: %w", err)
	}

	return handle[models.Review](resp)
}

func handle[T any](resp *resty.Response) (T, error) {
	if err := mapHTTPError(resp); err != nil {
		var zero T
		return zero, err
	}

	return decodeData[T](resp)
}

// decodeData unwraps the data field of a success envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var envelope models.Response[T]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}

	return envelope.Data, nil
}
