package api

import (
	"context"
	"fmt"
)

// The list endpoint has no trailing slash on this backend.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := c.get(ctx, "/api/notifications", nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	body := map[string]bool{"is_read": true}
	return c.patchJSON(ctx, fmt.Sprintf("/api/notifications/%d/", id), body, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/notifications/%d/", id))
}

// SendNotification broadcasts to every customer; the optional image
// rides along in the multipart body.
func (c *Client) SendNotification(ctx context.Context, message string, image *Upload) error {
	var files []Upload
	if image != nil {
		file := *image
		if file.FieldName == "" {
			file.FieldName = "image"
		}
		files = append(files, file)
	}
	return c.submitForm(ctx, "POST", "/api/send-notification/", map[string]string{"message": message}, files, nil)
}

func (c *Client) SendUserNotification(ctx context.Context, customerID int, message string) error {
	body := map[string]string{"message": message}
	return c.postJSON(ctx, fmt.Sprintf("/api/send-notification/%d/", customerID), body, nil)
}
