package invoice

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"storefront/models"
)

// Render writes the invoice PDF for an order: title, user block, one
// numbered block per line item and the total recomputed from the
// snapshot values.
func Render(w io.Writer, order *models.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice Content", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "User Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Email: "+order.User.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "User ID: "+order.User.UserID.Hex(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "Order Details:", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for i, line := range order.Products {
		pdf.CellFormat(0, 5, fmt.Sprintf("%d. Product Name: %s", i+1, line.Product.Title), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("   Quantity: %d", line.Quantity), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "   Price: "+formatPrice(line.Product.Price), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Total Price: "+formatPrice(order.Total())+" TL", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
