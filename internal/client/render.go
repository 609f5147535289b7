package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dateLayout = "2006-01-02 15:04"

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderPage(title, body string) string {
	return boxStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}

func renderEstimates(estimates []models.FareEstimate) string {
	if len(estimates) == 0 {
		return helpStyle.Render("No quotes available.")
	}

	rows := make([][]string, 0, len(estimates))
	for _, e := range estimates {
		rows = append(rows, []string{
			e.Provider,
			e.RideType,
			formatFare(e.Fare),
			formatMinutes(e.ETA),
			formatKm(e.DistanceKm),
			formatMinutes(e.DurationMinutes),
		})
	}

	return renderTable([]string{"Provider", "Type", "Fare", "ETA", "Distance", "Duration"}, rows)
}

func renderRides(rides []models.Ride) string {
	if len(rides) == 0 {
		return helpStyle.Render("No rides yet.")
	}

	rows := make([][]string, 0, len(rides))
	for _, r := range rides {
		rows = append(rows, []string{
			r.RideID,
			formatTime(r.CreatedAt),
			r.Provider,
			r.RideType,
			formatFare(r.Fare),
			r.Status,
		})
	}

	return renderTable([]string{"ID", "Booked", "Provider", "Type", "Fare", "Status"}, rows)
}

func renderRide(ride models.Ride) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ride:     %s\n", ride.RideID)
	fmt.Fprintf(&b, "Provider: %s (%s)\n", ride.Provider, ride.RideType)
	fmt.Fprintf(&b, "Fare:     %s\n", formatFare(ride.Fare))
	fmt.Fprintf(&b, "Pickup:   in %s\n", formatMinutes(ride.ETA))
	fmt.Fprintf(&b, "Trip:     %s, about %s", formatKm(ride.DistanceKm), formatMinutes(ride.DurationMinutes))

	return renderPage("RIDE BOOKED", b.String())
}

func renderReview(review models.Review) string {
	body := fmt.Sprintf("Ride:   %s\nRating: %s", review.RideID, stars(review.Rating))
	if review.Comment != "" {
		body += "\n" + review.Comment
	}

	return renderPage("REVIEW SAVED", body)
}

func renderAccount(title string, user models.User) string {
	return renderPage(title, fmt.Sprintf("Email: %s\nName:  %s\nRole:  %s", user.Email, user.Name, user.Role))
}

func renderIdentity(identity models.Identity) string {
	return renderPage("SIGNED IN", fmt.Sprintf("ID:    %s\nEmail: %s\nRole:  %s", identity.SubjectID, identity.Email, identity.Role))
}

func formatFare(fare float64) string {
	return "$" + strconv.FormatFloat(fare, 'f', 2, 64)
}

func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', 2, 64) + " km"
}

func formatMinutes(minutes int) string {
	return strconv.Itoa(minutes) + " min"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(dateLayout)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", max(0, 5-rating))
}
