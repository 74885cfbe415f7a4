package ticket

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"busbuddy/internal/domain"
	"busbuddy/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Service renders downloadable e-tickets and shareable trip summaries
// for confirmed bookings.
type Service struct {
	RequestID string
}

// ETicket renders the booking as an A4 PDF and returns the bytes plus a
// download filename.
func (s Service) ETicket(b domain.Booking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", "booking_id="+b.ID)
	return buildETicketPDF(b)
}

func buildETicketPDF(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	// brand band
	pdf.SetFillColor(6, 214, 160)
	pdf.Rect(0, 0, 210, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(0, 6)
	pdf.CellFormat(210, 10, "BusBuddy - E-Ticket", "", 0, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(200, 200, 200)

	sectionTitle(pdf, 30, "Booking Details")
	labelValue(pdf, 14, 42, "Booking ID:", b.ID)
	labelValue(pdf, 120, 42, "Booking Date:", utils.FormatDisplayDate(b.BookingDate))

	sectionTitle(pdf, 55, "Journey Details")
	labelValue(pdf, 14, 67, "Bus Name:", b.BusName)
	labelValue(pdf, 120, 67, "Bus Type:", b.BusType)
	labelValue(pdf, 14, 75, "From:", b.Source)
	labelValue(pdf, 120, 75, "To:", b.Destination)
	labelValue(pdf, 14, 83, "Date:", utils.FormatDisplayDate(b.Date))
	labelValue(pdf, 120, 83, "Departure:", b.DepartureTime)
	labelValue(pdf, 14, 91, "Arrival:", b.ArrivalTime)
	labelValue(pdf, 120, 91, "Seats:", strings.Join(b.Seats, ", "))

	sectionTitle(pdf, 105, "Passenger Details")

	y := 117.0
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(14, y, "Name")
	pdf.Text(90, y, "Age")
	pdf.Text(120, y, "Gender")
	pdf.Text(170, y, "Seat No.")
	y += 4
	pdf.Line(14, y, 196, y)

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range b.Passengers {
		y += 8
		pdf.Text(14, y, p.Name)
		pdf.Text(90, y, strconv.Itoa(p.Age))
		pdf.Text(120, y, titleGender(p.Gender))
		pdf.Text(170, y, p.SeatNumber)
	}
	y += 4
	pdf.Line(14, y, 196, y)

	y += 15
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, y, "Fare Details")
	y += 4
	pdf.Line(14, y, 196, y)
	y += 8
	labelValue(pdf, 14, y, "Total Fare:", rupeeLatin(b.TotalFare))

	// footer notes
	y += 20
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(14, y, 182, 25, "F")
	y += 8
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(16, y, "Important Information:")
	y += 5
	pdf.Text(16, y, "- Please arrive at the boarding point at least 15 minutes before departure time.")
	y += 5
	pdf.Text(16, y, "- Carry a valid ID proof along with this e-ticket for verification.")
	y += 5
	pdf.Text(16, y, "- For any assistance, contact our customer support at 1800-123-4567.")

	// QR placeholder
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	pdf.Rect(160, 160, 30, 30, "D")
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(160, 192)
	pdf.CellFormat(30, 4, "Scan for verification", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BusBuddy_Ticket_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func sectionTitle(pdf *gofpdf.Fpdf, y float64, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, y, title)
	pdf.Line(14, y+4, 196, y+4)
}

func labelValue(pdf *gofpdf.Fpdf, x, y float64, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(x, y, label)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(x+36, y, safe(value, "-"))
}

func titleGender(g domain.Gender) string {
	s := string(g)
	if s == "" {
		return "-"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// rupeeLatin keeps the Indian digit grouping but swaps the rupee sign
// for "Rs.", which the core Helvetica font can actually render.
func rupeeLatin(v int64) string {
	return "Rs. " + strings.TrimPrefix(utils.FormatRupee(v), "₹")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
