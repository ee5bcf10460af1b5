package email

import (
	"fmt"
	"strings"

	cartModel "github.com/Axocidue/SportsStore/internal/domains/cart/model"
	checkoutModel "github.com/Axocidue/SportsStore/internal/domains/checkout/model"
)

// ComposeOrderMessage builds the plain-text order summary dispatched to
// the shop operator: itemized lines with per-line subtotals, the grand
// total, the shipping address and the gift-wrap flag. Absent optional
// address lines are skipped rather than rendered empty.
func ComposeOrderMessage(cart *cartModel.Cart, details checkoutModel.ShippingDetails) string {
	var sb strings.Builder

	sb.WriteString("A new order has been submitted.\n")
	sb.WriteString("---\n")
	sb.WriteString("Items:\n")

	for _, line := range cart.Lines() {
		fmt.Fprintf(&sb, "%d x %s at %s (subtotal: %s)\n",
			line.Quantity,
			line.Product.Name,
			line.Product.Price.StringFixed(2),
			line.Subtotal().StringFixed(2),
		)
	}

	fmt.Fprintf(&sb, "Total order value: %s\n", cart.ComputeTotalValue().StringFixed(2))

	sb.WriteString("---\n")
	sb.WriteString("Ship to:\n")
	sb.WriteString(details.Name + "\n")
	sb.WriteString(details.Line1 + "\n")
	if details.Line2 != nil {
		sb.WriteString(*details.Line2 + "\n")
	}
	if details.Line3 != nil {
		sb.WriteString(*details.Line3 + "\n")
	}
	sb.WriteString(details.City + "\n")
	if details.State != nil {
		sb.WriteString(*details.State + "\n")
	}
	sb.WriteString(details.Country + "\n")
	sb.WriteString(details.Zip + "\n")
	sb.WriteString("---\n")

	giftWrap := "No"
	if details.GiftWrap {
		giftWrap = "Yes"
	}
	fmt.Fprintf(&sb, "Gift wrap: %s\n", giftWrap)

	return sb.String()
}
