package api

import (
	"context"
	"fmt"
)

// Carousel, poster and home-image management share the same shape: an
// image-only record uploaded as multipart and replaced via PATCH.

func (c *Client) ListCarouselImages(ctx context.Context) ([]CarouselImage, error) {
	var out []CarouselImage
	err := c.get(ctx, "/api/carousel/", nil, &out)
	return out, err
}

func (c *Client) UploadCarouselImage(ctx context.Context, image Upload) (CarouselImage, error) {
	var out CarouselImage
	err := c.submitForm(ctx, "POST", "/api/carousel/", nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

func (c *Client) UpdateCarouselImage(ctx context.Context, id int, image Upload) (CarouselImage, error) {
	var out CarouselImage
	err := c.submitForm(ctx, "PATCH", fmt.Sprintf("/api/carousel/%d/", id), nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

func (c *Client) DeleteCarouselImage(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/carousel/%d/", id))
}

func (c *Client) ListPosters(ctx context.Context) ([]Poster, error) {
	var out []Poster
	err := c.get(ctx, "/api/poster-image/", nil, &out)
	return out, err
}

func (c *Client) UploadPoster(ctx context.Context, image Upload) (Poster, error) {
	var out Poster
	err := c.submitForm(ctx, "POST", "/api/poster-image/", nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

// Poster mutations address a different path than the collection.
func (c *Client) UpdatePoster(ctx context.Context, id int, image Upload) (Poster, error) {
	var out Poster
	err := c.submitForm(ctx, "PATCH", fmt.Sprintf("/api/poster/%d/", id), nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

func (c *Client) DeletePoster(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/poster/%d/", id))
}

func (c *Client) ListHomeImages(ctx context.Context) ([]HomeImage, error) {
	var out []HomeImage
	err := c.get(ctx, "/api/Home-image/", nil, &out)
	return out, err
}

func (c *Client) UploadHomeImage(ctx context.Context, image Upload) (HomeImage, error) {
	var out HomeImage
	err := c.submitForm(ctx, "POST", "/api/Home-image/", nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

func (c *Client) UpdateHomeImage(ctx context.Context, id int, image Upload) (HomeImage, error) {
	var out HomeImage
	err := c.submitForm(ctx, "PATCH", fmt.Sprintf("/api/Home-image/%d/", id), nil, []Upload{withField(image, "image")}, &out)
	return out, err
}

func (c *Client) DeleteHomeImage(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/Home-image/%d/", id))
}

func withField(file Upload, field string) Upload {
	if file.FieldName == "" {
		file.FieldName = field
	}
	return file
}
