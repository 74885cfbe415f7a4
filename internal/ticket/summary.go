package ticket

import (
	"fmt"
	"strings"

	"busbuddy/internal/domain"
	"busbuddy/internal/utils"
)

// Summary renders a short shareable text for a booking, suited to chat
// apps and SMS.
func (s Service) Summary(b domain.Booking) string {
	utils.LogEvent(s.RequestID, "ticket", "generate_summary", "booking_id="+b.ID)

	return fmt.Sprintf(`🎫 BusBuddy Ticket - %s

📍 Journey: %s to %s
🚌 Bus: %s (%s)
📅 Date: %s
⏰ Time: %s
💺 Seats: %s
💰 Fare: %s

Download your e-ticket from your BusBuddy account.`,
		b.ID,
		b.Source, b.Destination,
		b.BusName, b.BusType,
		utils.FormatDisplayDate(b.Date),
		b.DepartureTime,
		strings.Join(b.Seats, ", "),
		utils.FormatRupee(b.TotalFare),
	)
}
