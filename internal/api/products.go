package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductPayload is the outbound shape of a product create/update. It is
// always encoded as multipart form data; Weights goes over the wire as a
// JSON string under a single field, matching what the backend expects.
type ProductPayload struct {
	Name              string
	Category          int
	SubCategory       int
	Price             float64
	OfferPrice        float64
	Discount          float64
	Quantity          int
	Description       string
	Available         bool
	IsPopular         bool
	IsOffer           bool
	Weights           []WeightOption
	WeightMeasurement string
	Image             *Upload
}

func (p ProductPayload) formFields() (map[string]string, error) {
	weights := p.Weights
	if weights == nil {
		weights = []WeightOption{}
	}
	encoded, err := json.Marshal(weights)
	if err != nil {
		return nil, fmt.Errorf("encoding weights: %w", err)
	}

	return map[string]string{
		"name":               p.Name,
		"category":           strconv.Itoa(p.Category),
		"sub_category":       strconv.Itoa(p.SubCategory),
		"price":              formatAmount(p.Price),
		"offer_price":        formatAmount(p.OfferPrice),
		"discount":           formatAmount(p.Discount),
		"quantity":           strconv.Itoa(p.Quantity),
		"description":        p.Description,
		"Available":          strconv.FormatBool(p.Available),
		"is_popular_product": strconv.FormatBool(p.IsPopular),
		"is_offer_product":   strconv.FormatBool(p.IsOffer),
		"weights":            string(encoded),
		"weight_measurement": p.WeightMeasurement,
	}, nil
}

func (p ProductPayload) files() []Upload {
	if p.Image == nil {
		return nil
	}
	file := *p.Image
	if file.FieldName == "" {
		file.FieldName = "image"
	}
	return []Upload{file}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Client) ListProducts(ctx context.Context, page int) (Paged[Product], error) {
	if page < 1 {
		page = 1
	}
	var out Paged[Product]
	err := c.get(ctx, "/api/products/", map[string]string{"page": strconv.Itoa(page)}, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var out Product
	err := c.get(ctx, fmt.Sprintf("/api/products/%d", id), nil, &out)
	return out, err
}

// SearchProducts hits the dedicated search endpoint; the result set is
// not paginated like the listing.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	var out Paged[Product]
	err := c.get(ctx, "/api/products/search/", map[string]string{"search_query": query}, &out)
	return out.Results, err
}

func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (Product, error) {
	fields, err := payload.formFields()
	if err != nil {
		return Product{}, err
	}
	var out Product
	err = c.submitForm(ctx, "POST", "/api/products/", fields, payload.files(), &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, payload ProductPayload) (Product, error) {
	fields, err := payload.formFields()
	if err != nil {
		return Product{}, err
	}
	var out Product
	err = c.submitForm(ctx, "PATCH", fmt.Sprintf("/api/products/%d/", id), fields, payload.files(), &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d/", id))
}

// UploadProductImages sends the gallery images for an already-created
// product. Every file goes under the same "image" key.
func (c *Client) UploadProductImages(ctx context.Context, productID int, images []Upload) error {
	files := make([]Upload, 0, len(images))
	for _, image := range images {
		file := image
		file.FieldName = "image"
		files = append(files, file)
	}
	return c.submitForm(ctx, "POST", fmt.Sprintf("/api/products/%d/images/", productID), nil, files, nil)
}

func (c *Client) ListStocks(ctx context.Context, page int) (Paged[StockRow], error) {
	if page < 1 {
		page = 1
	}
	var out Paged[StockRow]
	err := c.get(ctx, "/api/products/stock/", map[string]string{"page": strconv.Itoa(page)}, &out)
	return out, err
}

func (c *Client) ListLowStock(ctx context.Context, page int) (Paged[StockRow], error) {
	if page < 1 {
		page = 1
	}
	var out Paged[StockRow]
	err := c.get(ctx, "/api/products/low-stock/", map[string]string{"page": strconv.Itoa(page)}, &out)
	return out, err
}
