package api

import "context"

func (c *Client) StockRevenue(ctx context.Context) (StockRevenue, error) {
	var out StockRevenue
	err := c.get(ctx, "/api/stock-revenue/", nil, &out)
	return out, err
}

func (c *Client) PaymentTotals(ctx context.Context) ([]PaymentTotal, error) {
	var out []PaymentTotal
	err := c.get(ctx, "/api/total-price/all-users/", nil, &out)
	return out, err
}
