// Package export renders an itinerary into a paginated, printable PDF.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"voyago/models"
)

// Page geometry in millimeters, A4 portrait.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - 2*marginLeft
	usableBottom = pageHeight - marginBottom

	bannerH = 9.0
	fieldH  = 6.0
	lineH   = 5.0
	qrSize  = 28.0
)

const shareURLBase = "https://voyago.app/itineraries/"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// Filename derives the download filename from the destination: every
// character outside [A-Za-z0-9] becomes exactly one underscore.
func Filename(destination string) string {
	return nonAlphanumeric.ReplaceAllString(destination, "_") + "_Itinerary.pdf"
}

// Render lays out the itinerary and returns the finished PDF bytes. Any
// rendering failure aborts the whole document; no partial output is returned.
func Render(it models.Itinerary) ([]byte, error) {
	r := layout(it)
	if err := r.pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type renderer struct {
	pdf *gofpdf.Fpdf
}

func newRenderer() *renderer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	// Page breaks are decided block by block in ensureSpace.
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()
	return &renderer{pdf: pdf}
}

// ensureSpace starts a new page when the next block of height h would cross
// the bottom margin, so a block is never split at the boundary.
func (r *renderer) ensureSpace(h float64) {
	if r.pdf.GetY()+h > usableBottom {
		r.pdf.AddPage()
		r.pdf.SetY(marginTop)
	}
}

func layout(it models.Itinerary) *renderer {
	r := newRenderer()

	r.titleBanner(it.Destination)
	r.dateRange(it.StartDate, it.EndDate)

	r.sectionBanner("Flight Details")
	r.field("Airline", it.Flight.Airline)
	r.field("Flight", it.Flight.FlightNumber)
	r.field("Departure", it.Flight.Departure)
	r.field("Arrival", it.Flight.Arrival)
	r.field("Duration", it.Flight.Duration)
	r.field("Price", fmt.Sprintf("$%.2f", it.Flight.Price))
	r.pdf.Ln(3)

	r.sectionBanner("Accommodation")
	r.field("Hotel", it.Hotel.Name)
	r.field("Rating", fmt.Sprintf("%s (%.1f/5)", strings.Repeat("*", clampStars(it.Hotel.Stars)), it.Hotel.Rating))
	r.field("Distance", it.Hotel.Distance)
	r.field("Price per night", fmt.Sprintf("$%.2f", it.Hotel.PricePerNight))
	r.pdf.Ln(3)

	r.totalBanner(it.TotalCost)

	for _, day := range it.DailyPlans {
		r.sectionBanner(fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		for _, act := range day.Activities {
			r.activity(act)
		}
		r.pdf.Ln(2)
	}

	r.travelTips()
	r.footer(it.ItineraryID)

	return r
}

// clampStars bounds the star count to the 0-5 scale. The itinerary may come
// straight from a request body, so the glyph count cannot trust it.
func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func (r *renderer) titleBanner(destination string) {
	r.pdf.SetFillColor(41, 84, 144)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(contentWidth, 14, "Your Travel Itinerary", "", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.CellFormat(contentWidth, 9, destination, "", 1, "C", true, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(3)
}

func (r *renderer) dateRange(start, end string) {
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.CellFormat(contentWidth, fieldH, fmt.Sprintf("%s - %s", start, end), "", 1, "C", false, 0, "")
	r.pdf.Ln(3)
}

// sectionBanner reserves room for the banner plus one body line so a header
// is never stranded as the last line of a page.
func (r *renderer) sectionBanner(title string) {
	r.ensureSpace(bannerH + lineH)
	r.pdf.SetFillColor(225, 233, 244)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(contentWidth, bannerH, "  "+title, "", 1, "L", true, 0, "")
	r.pdf.Ln(1)
}

func (r *renderer) field(label, value string) {
	r.ensureSpace(fieldH)
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(40, fieldH, label, "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(contentWidth-40, fieldH, value, "", 1, "L", false, 0, "")
}

func (r *renderer) totalBanner(total float64) {
	r.ensureSpace(bannerH + lineH)
	r.pdf.SetFillColor(41, 84, 144)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(contentWidth, bannerH, fmt.Sprintf("  Total Estimated Cost: $%.2f", total), "", 1, "L", true, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.CellFormat(contentWidth, lineH, "*Approximate cost for flights and accommodation", "", 1, "L", false, 0, "")
	r.pdf.Ln(3)
}

// activity renders one timeline entry. Description text is wrapped to the
// content width and the entry is measured as a whole before placement, so it
// never splits across a page boundary.
func (r *renderer) activity(act models.Activity) {
	r.pdf.SetFont("Arial", "", 9)
	descLines := r.wrap(act.Description, contentWidth-25)
	blockH := fieldH + float64(len(descLines))*lineH + 1
	r.ensureSpace(blockH)

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(22, fieldH, act.Time, "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth-22, fieldH, act.Activity, "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(80, 80, 80)
	for _, line := range descLines {
		r.pdf.SetX(marginLeft + 22)
		r.pdf.CellFormat(contentWidth-25, lineH, line, "", 1, "L", false, 0, "")
	}
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(1)
}

var travelTips = []struct {
	Title string
	Body  string
}{
	{"Best Time to Visit", "Consider local weather and peak tourist seasons when planning activities"},
	{"Local Cuisine", "Don't miss trying authentic local dishes and visiting popular food markets"},
	{"Book in Advance", "Popular attractions may require advance booking - check online"},
	{"Transportation", "Research local public transport options or consider ride-sharing apps"},
}

func (r *renderer) travelTips() {
	r.sectionBanner("Travel Tips")
	for _, tip := range travelTips {
		r.pdf.SetFont("Arial", "", 9)
		lines := r.wrap(tip.Body, contentWidth-5)
		blockH := fieldH + float64(len(lines))*lineH
		r.ensureSpace(blockH)

		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(contentWidth, fieldH, tip.Title, "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		for _, line := range lines {
			r.pdf.SetX(marginLeft + 5)
			r.pdf.CellFormat(contentWidth-5, lineH, line, "", 1, "L", false, 0, "")
		}
	}
	r.pdf.Ln(2)
}

func (r *renderer) footer(itineraryID string) {
	r.ensureSpace(qrSize + 10)

	qrPNG, err := qrcode.Encode(shareURLBase+itineraryID, qrcode.Medium, 128)
	if err == nil {
		opts := gofpdf.ImageOptions{ImageType: "png"}
		r.pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
		r.pdf.ImageOptions("qr", pageWidth-marginLeft-qrSize, r.pdf.GetY(), qrSize, qrSize, false, opts, 0, "")
	}

	r.pdf.SetY(usableBottom - lineH)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	generated := fmt.Sprintf("Generated by Voyago Travel Planner on %s", time.Now().Format("02 Jan 2006"))
	r.pdf.CellFormat(contentWidth, lineH, generated, "T", 0, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

// wrap splits text into lines that fit the given width using the current
// font metrics.
func (r *renderer) wrap(text string, width float64) []string {
	raw := r.pdf.SplitLines([]byte(text), width)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, string(l))
	}
	return lines
}
