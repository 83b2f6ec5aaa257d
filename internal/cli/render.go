package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"grocery_admin/internal/api"
	"grocery_admin/internal/listing"
)

func writeJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// writeBounds prints the "X to Y of N" footer the list views share. The
// range always reflects the unfiltered server page, even when a
// client-side filter hides some rows.
func writeBounds(b listing.Bounds, hasPrev, hasNext bool) {
	if b.Count == 0 {
		fmt.Fprintln(os.Stdout, "No results.")
		return
	}
	fmt.Fprintf(os.Stdout, "Showing %d to %d of %d (page %d/%d)", b.Start, b.End, b.Count, b.Page, b.TotalPages)
	controls := []string{}
	if hasPrev {
		controls = append(controls, "prev")
	}
	if hasNext {
		controls = append(controls, "next")
	}
	if len(controls) > 0 {
		fmt.Fprintf(os.Stdout, " [%s]", strings.Join(controls, ", "))
	}
	fmt.Fprintln(os.Stdout)
}

func (c *console) renderProducts() error {
	visible := c.products.Visible()
	if c.opts.JSON {
		return writeJSON(visible)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tOFFER\tDISCOUNT\tSTOCK")
	for _, p := range visible {
		stock := "in stock"
		if !p.Available {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%.0f%%\t%s\n",
			p.ID, p.Name, p.CategoryName, p.Price, p.OfferPrice, p.Discount, stock)
	}
	w.Flush()
	writeBounds(c.products.Bounds(), c.products.HasPrev(), c.products.HasNext())
	return nil
}

func (c *console) renderCategories(categories []api.Category) error {
	if c.opts.JSON {
		return writeJSON(categories)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME")
	for _, cat := range categories {
		fmt.Fprintf(w, "%d\t%s\n", cat.ID, cat.Name)
	}
	return w.Flush()
}

func (c *console) renderSubcategories(subs []api.Subcategory) error {
	if c.opts.JSON {
		return writeJSON(subs)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tCATEGORY\tNAME\tENABLED")
	for _, sub := range subs {
		fmt.Fprintf(w, "%d\t%d\t%s\t%t\n", sub.ID, sub.Category, sub.Name, sub.Enabled)
	}
	return w.Flush()
}

func (c *console) renderOrders(orders []api.Order) error {
	if c.opts.JSON {
		return writeJSON(orders)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tUSER\tCUSTOMER\tTOTAL\tSTATUS\tITEMS\tCREATED")
	for _, order := range orders {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.2f\t%s\t%d\t%s\n",
			order.ID, order.User, order.CustomerName, order.TotalPrice,
			order.Status, len(order.CartProducts), order.CreatedAt)
	}
	return w.Flush()
}

func (c *console) renderCustomers() error {
	items := c.customers.Items()
	if c.opts.JSON {
		return writeJSON(items)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tMOBILE\tACTIVE")
	for _, customer := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
			customer.ID, customer.Name, customer.Email, customer.MobileNumber, customer.IsActive)
	}
	w.Flush()
	writeBounds(c.customers.Bounds(), c.customers.HasPrev(), c.customers.HasNext())
	return nil
}

// renderStocks shows only the first weight variant per row unless the
// row was expanded with 'stocks expand <id>'.
func (c *console) renderStocks(pager *listing.Pager[api.StockRow]) error {
	items := pager.Items()
	if c.opts.JSON {
		return writeJSON(items)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tQTY\tSTOCK\tVARIANTS")
	for _, row := range items {
		stock := "in stock"
		if !row.Available {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			row.ID, row.Name, row.Quantity, stock, formatWeights(row, pager.IsExpanded(row.ID)))
	}
	w.Flush()
	writeBounds(pager.Bounds(), pager.HasPrev(), pager.HasNext())
	return nil
}

func formatWeights(row api.StockRow, expanded bool) string {
	if len(row.Weights) == 0 {
		return "-"
	}
	shown := row.Weights
	if !expanded && len(shown) > 1 {
		shown = shown[:1]
	}
	parts := make([]string, 0, len(shown))
	for _, weight := range shown {
		parts = append(parts, fmt.Sprintf("%s%s @%.2f x%d",
			weight.Weight, row.WeightMeasurement, weight.Price, weight.Quantity))
	}
	if !expanded && len(row.Weights) > 1 {
		parts = append(parts, fmt.Sprintf("(+%d more)", len(row.Weights)-1))
	}
	return strings.Join(parts, ", ")
}

func (c *console) renderNotifications(notifications []api.Notification) error {
	if c.opts.JSON {
		return writeJSON(notifications)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tREAD\tMESSAGE\tCREATED")
	for _, n := range notifications {
		read := " "
		if n.IsRead {
			read = "x"
		}
		fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n", n.ID, read, n.Message, n.CreatedAt)
	}
	return w.Flush()
}

func (c *console) renderDeliveryBoys(boys []api.DeliveryBoy) error {
	if c.opts.JSON {
		return writeJSON(boys)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tMOBILE\tVEHICLE")
	for _, boy := range boys {
		vehicle := boy.VehicleType
		if boy.VehicleNumber != "" {
			vehicle = fmt.Sprintf("%s (%s)", boy.VehicleType, boy.VehicleNumber)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", boy.ID, boy.Name, boy.Email, boy.MobileNumber, vehicle)
	}
	return w.Flush()
}

func (c *console) renderPayments(payments []api.PaymentTotal) error {
	if c.opts.JSON {
		return writeJSON(payments)
	}
	w := newTable()
	fmt.Fprintln(w, "USER\tNAME\tTOTAL")
	var sum float64
	for _, payment := range payments {
		sum += payment.TotalPrice
		fmt.Fprintf(w, "%d\t%s\t%.2f\n", payment.UserID, payment.Name, payment.TotalPrice)
	}
	fmt.Fprintf(w, "\tTOTAL\t%.2f\n", sum)
	return w.Flush()
}
