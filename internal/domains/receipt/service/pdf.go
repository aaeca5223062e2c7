package service

import (
	"bytes"
	"fmt"

	"busbooking/internal/domains/receipt/model"
	"busbooking/shared/timezone"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfTitle    = "Bus Booking System"
	pdfSubtitle = "Booking Confirmation"
	pdfFooter   = "Thank you for choosing our service!"

	bookingDateLayout = "Monday, 2 January 2006 at 3:04 pm"
)

var terms = []string{
	"1. This ticket is non-transferable.",
	"2. Please arrive at the bus stop 30 minutes before departure.",
	"3. Valid ID proof is required for verification.",
	"4. Cancellation charges apply as per policy.",
	"5. For any queries, please contact our customer support.",
}

// Render lays out an A4 confirmation with a two column detail grid.
func Render(receipt model.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfSubtitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, pdfTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, pdfSubtitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Booking Details")
	pdf.Ln(10)

	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 9, "Detail", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 9, "Value", "1", 1, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(249, 250, 251)

	for i, row := range receipt.Rows(formatBookingDate) {
		fill := i%2 == 1

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 9, row[0], "1", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 9, row[1], "1", 1, "L", fill, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Terms and Conditions:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 8)

	for _, term := range terms {
		pdf.Cell(0, 6, term)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.CellFormat(0, 6, pdfFooter, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt %s: %w", receipt.FileName(), err)
	}

	return buf.Bytes(), nil
}

func formatBookingDate(value string) string {
	t, err := timezone.ParseDate(value)
	if err != nil {
		return value
	}

	return t.Format(bookingDateLayout)
}
