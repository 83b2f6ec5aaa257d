package api

import (
	"context"
	"fmt"
	"time"
)

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	err := c.get(ctx, "/api/orders/", nil, &out)
	return out, err
}

func (c *Client) ListOrdersByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	var out []Order
	err := c.get(ctx, fmt.Sprintf("/api/orders/%d/", customerID), nil, &out)
	return out, err
}

func (c *Client) ListUserOrders(ctx context.Context, userID int) ([]Order, error) {
	var out []Order
	err := c.get(ctx, fmt.Sprintf("/api/user/%d/orders/", userID), nil, &out)
	return out, err
}

func (c *Client) GetOrderDetails(ctx context.Context, userID, orderID int) (Order, error) {
	var out Order
	err := c.get(ctx, fmt.Sprintf("/api/orders/%d/%d/", userID, orderID), nil, &out)
	return out, err
}

// FilterOrdersByDate passes only the bounds that are set; a zero time
// leaves that side of the range open.
func (c *Client) FilterOrdersByDate(ctx context.Context, from, to time.Time) ([]Order, error) {
	query := map[string]string{}
	if !from.IsZero() {
		query["start_date"] = from.Format("2006-01-02")
	}
	if !to.IsZero() {
		query["end_date"] = to.Format("2006-01-02")
	}

	var out []Order
	err := c.get(ctx, "/api/orders/filter-by-date/", query, &out)
	return out, err
}

// DeleteOrder uses the singular path, unlike the listing endpoints.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/order/%d/", id))
}
