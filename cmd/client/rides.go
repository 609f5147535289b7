package main

import (
	"github.com/MKhiriev/go-ride-hail/internal/client"
	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/spf13/cobra"
)

type tripFlags struct {
	from     string
	to       string
	rideType string
	provider string
}

func (f *tripFlags) bind(cmd *cobra.Command, withProvider bool) {
	cmd.Flags().StringVar(&f.from, "from", "", `pickup as "lat,lng"`)
	cmd.Flags().StringVar(&f.to, "to", "", `dropoff as "lat,lng"`)
	cmd.Flags().StringVar(&f.rideType, "type", "", "economy, premium or xl")
	if withProvider {
		cmd.Flags().StringVar(&f.provider, "provider", "", "book with this provider instead of the cheapest")
	}
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *tripFlags) request() (models.RideRequest, error) {
	return client.NewRideRequest(f.from, f.to, f.rideType, f.provider)
}

func estimateCmd(withClient runWithClient) *cobra.Command {
	var trip tripFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compare fares across providers",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			req, err := trip.request()
			if err != nil {
				return err
			}
			return c.Estimate(cmd.Context(), req)
		}),
	}
	trip.bind(cmd, false)

	return cmd
}

func bookCmd(withClient runWithClient) *cobra.Command {
	var trip tripFlags

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a ride",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			req, err := trip.request()
			if err != nil {
				return err
			}
			return c.Book(cmd.Context(), req)
		}),
	}
	trip.bind(cmd, true)

	return cmd
}

func historyCmd(withClient runWithClient) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your rides",
		Args:  cobra.NoArgs,
		RunE: withClient(func(cmd *cobra.Command, c client.Client, _ []string) error {
			return c.History(cmd.Context())
		}),
	}
}

func reviewCmd(withClient runWithClient) *cobra.Command {
	var review models.ReviewRequest

	cmd := &cobra.Command{
		Use:   "review <ride-id>",
		Short: "Rate a ride",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(cmd *cobra.Command, c client.Client, args []string) error {
			return c.Review(cmd.Context(), args[0], review)
		}),
	}

	cmd.Flags().IntVar(&review.Rating, "rating", 0, "1 to 5")
	cmd.Flags().StringVar(&review.Comment, "comment", "", "optional comment")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
