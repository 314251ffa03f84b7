package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tourvisto/internal/models/response_models"
)

// ExportService renders a stored trip as a downloadable PDF itinerary.
type ExportService interface {
	RenderTripPDF(trip *response_models.TripResponse) ([]byte, error)
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

func (s *exportService) RenderTripPDF(trip *response_models.TripResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	detail := trip.Detail

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	title := "Travel Itinerary"
	if detail != nil && detail.Name != "" {
		title = detail.Name
	}
	pdf.CellFormat(170, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(heading string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(heading), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(125, 7, tr(value), "", "L", false)
	}

	if detail == nil {
		sectionHeader("Trip")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(170, 6, "Itinerary details are unavailable for this trip.", "", "L", false)
	} else {
		sectionHeader("Trip Overview")
		row("Destination", detail.Country)
		if detail.Location.City != "" {
			row("City", detail.Location.City)
		}
		row("Duration", fmt.Sprintf("%d days", detail.Duration))
		row("Travel Style", detail.TravelStyle)
		row("Group Type", detail.GroupType)
		row("Budget", detail.Budget)
		row("Interests", detail.Interests)
		row("Estimated Price", detail.EstimatedPrice)
		pdf.Ln(4)

		if detail.Description != "" {
			sectionHeader("About This Trip")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(170, 5.5, tr(detail.Description), "", "L", false)
			pdf.Ln(4)
		}

		if len(detail.BestTimeToVisit) > 0 {
			sectionHeader("Best Time To Visit")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range detail.BestTimeToVisit {
				pdf.MultiCell(170, 5.5, tr("- "+line), "", "L", false)
			}
			pdf.Ln(4)
		}

		if len(detail.WeatherInfo) > 0 {
			sectionHeader("Weather")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range detail.WeatherInfo {
				pdf.MultiCell(170, 5.5, tr("- "+line), "", "L", false)
			}
			pdf.Ln(4)
		}

		for _, day := range detail.Itinerary {
			heading := fmt.Sprintf("Day %d", day.Day)
			if day.Location != "" {
				heading = fmt.Sprintf("Day %d - %s", day.Day, day.Location)
			}
			sectionHeader(heading)
			for _, act := range day.Activities {
				row(act.Time, act.Description)
			}
			pdf.Ln(3)
		}
	}

	if trip.PaymentLink != nil && strings.TrimSpace(*trip.PaymentLink) != "" {
		pdf.Ln(4)
		sectionHeader("Booking")
		row("Payment Link", *trip.PaymentLink)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
