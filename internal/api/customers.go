package api

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Client) ListCustomers(ctx context.Context, page int) (Paged[Customer], error) {
	if page < 1 {
		page = 1
	}
	var out Paged[Customer]
	err := c.get(ctx, "/api/allusers/", map[string]string{"page": strconv.Itoa(page)}, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, customer Customer) (Customer, error) {
	var out Customer
	err := c.putJSON(ctx, fmt.Sprintf("/api/user/%d/", id), customer, &out)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/user/%d/", id))
}
