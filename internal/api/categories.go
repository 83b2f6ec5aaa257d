package api

import (
	"context"
	"fmt"
	"strconv"
)

// CategoryPayload covers both create and edit; the image is optional on
// edit (leaving it nil keeps the stored one).
type CategoryPayload struct {
	Name  string
	Image *Upload
}

func (p CategoryPayload) files() []Upload {
	if p.Image == nil {
		return nil
	}
	file := *p.Image
	if file.FieldName == "" {
		file.FieldName = "image"
	}
	return []Upload{file}
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := c.get(ctx, "/api/categories/", nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (Category, error) {
	var out Category
	err := c.submitForm(ctx, "POST", "/api/categories/", map[string]string{"name": payload.Name}, payload.files(), &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int, payload CategoryPayload) (Category, error) {
	var out Category
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/api/categories/%d/", id), map[string]string{"name": payload.Name}, payload.files(), &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/categories/%d/", id))
}

type SubcategoryPayload struct {
	Category int
	Name     string
	Enabled  bool
	Image    *Upload
}

func (p SubcategoryPayload) formFields() map[string]string {
	return map[string]string{
		"Category":           strconv.Itoa(p.Category),
		"name":               p.Name,
		"Enable_subcategory": strconv.FormatBool(p.Enabled),
	}
}

func (p SubcategoryPayload) files() []Upload {
	if p.Image == nil {
		return nil
	}
	file := *p.Image
	if file.FieldName == "" {
		file.FieldName = "Sub_category_image"
	}
	return []Upload{file}
}

// The backend exposes the subcategory collection under a capitalized
// path and the per-category listing under a lowercase one. Both are
// preserved verbatim.
func (c *Client) ListSubcategories(ctx context.Context) ([]Subcategory, error) {
	var out []Subcategory
	err := c.get(ctx, "/api/Subcategories/", nil, &out)
	return out, err
}

func (c *Client) ListSubcategoriesByCategory(ctx context.Context, categoryID int) ([]Subcategory, error) {
	var out []Subcategory
	err := c.get(ctx, fmt.Sprintf("/api/subcategories/%d/", categoryID), nil, &out)
	return out, err
}

func (c *Client) CreateSubcategory(ctx context.Context, payload SubcategoryPayload) (Subcategory, error) {
	var out Subcategory
	err := c.submitForm(ctx, "POST", "/api/Subcategories/", payload.formFields(), payload.files(), &out)
	return out, err
}

func (c *Client) UpdateSubcategory(ctx context.Context, id int, payload SubcategoryPayload) (Subcategory, error) {
	var out Subcategory
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/api/Subcategories/%d/", id), payload.formFields(), payload.files(), &out)
	return out, err
}

func (c *Client) DeleteSubcategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/Subcategories/%d/", id))
}
