package usecase

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// renderReceiptPDF lays out a single-page A4 receipt with a QR code of the
// transaction reference.
func renderReceiptPDF(receipt *models.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "CAMPUSPOOL RIDE RECEIPT")
	pdf.Ln(22)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "PAYMENT SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking ID: %s", receipt.Booking.ID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Reference: %s", receipt.Payment.TransactionID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Seats: %d", receipt.Booking.SeatsBooked))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Amount Paid: %.2f", receipt.Payment.Amount))
	if receipt.Payment.PaidAt != nil {
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Paid At: %s", receipt.Payment.PaidAt.Format("2006-01-02 15:04:05")))
	}

	qrBytes, err := qrcode.Encode(receipt.Payment.TransactionID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan this QR code to verify the transaction reference.")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, "RIDE DETAILS", "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("From: %s", receipt.Ride.Origin))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("To: %s", receipt.Ride.Destination))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Departure: %s %s", receipt.Ride.Date, receipt.Ride.Time))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Driver: %s", receipt.DriverName))
	pdf.Ln(6)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "CampusPool - simulated payment, no refund on cancellation.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
