package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ride-hail/internal/adapter"
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/models"
)

// App is the [Client] backed by the HTTP ride API.
type App struct {
	api    adapter.RideAPI
	tokens adapter.TokenStore
	out    io.Writer

	logger *logger.Logger
}

// NewApp builds the client runtime from cfg. Results are written to out.
func NewApp(cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	tokens := adapter.NewFileTokenStore(cfg.Adapter.TokenFile)

	api, err := adapter.NewHTTPRideAPI(cfg.Adapter, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("create ride api: %w", err)
	}

	return newApp(api, tokens, out, logger), nil
}

func newApp(api adapter.RideAPI, tokens adapter.TokenStore, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, tokens: tokens, out: out, logger: logger}
}

// Register implements [Client].
func (a *App) Register(ctx context.Context, request models.RegisterRequest) error {
	result, err := a.api.Register(ctx, request)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("user_id", result.User.UserID).Msg("registered")
	return a.print(renderAccount("ACCOUNT CREATED", result.User))
}

// Login implements [Client].
func (a *App) Login(ctx context.Context, credentials models.Credentials) error {
	result, err := a.api.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("user_id", result.User.UserID).Msg("logged in")
	return a.print(renderAccount("WELCOME BACK", result.User))
}

// Logout implements [Client]. It only forgets the local token.
func (a *App) Logout() error {
	if err := a.tokens.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return a.print(helpStyle.Render("Logged out."))
}

// WhoAmI implements [Client].
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	identity, err := a.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}

	return a.print(renderIdentity(identity))
}

// Estimate implements [Client].
func (a *App) Estimate(ctx context.Context, request models.RideRequest) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	estimates, err := a.api.EstimateFares(ctx, request)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	return a.print(renderEstimates(estimates))
}

// Book implements [Client].
func (a *App) Book(ctx context.Context, request models.RideRequest) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	ride, err := a.api.BookRide(ctx, request)
	if err != nil {
		return fmt.Errorf("book: %w", err)
	}

	a.logger.Info().Str("ride_id", ride.RideID).Str("provider", ride.Provider).Msg("ride booked")
	return a.print(renderRide(ride))
}

// History implements [Client].
func (a *App) History(ctx context.Context) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	rides, err := a.api.RideHistory(ctx)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return a.print(renderRides(rides))
}

// Review implements [Client].
func (a *App) Review(ctx context.Context, rideID string, review models.ReviewRequest) error {
	if err := a.requireToken(); err != nil {
		return err
	}

	saved, err := a.api.SubmitReview(ctx, rideID, review)
	if err != nil {
		return fmt.Errorf("review: %w", err)
	}

	return a.print(renderReview(saved))
}

// requireToken fails fast when no login happened yet, instead of letting
// the server answer 401.
func (a *App) requireToken() error {
	_, err := a.tokens.Load()
	if errors.Is(err, adapter.ErrTokenNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	return nil
}

func (a *App) print(s string) error {
	_, err := fmt.Fprintln(a.out, s)
	return err
}
