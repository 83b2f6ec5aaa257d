package api

import (
	"context"
	"fmt"
)

type DeliveryBoyPayload struct {
	Name          string
	Email         string
	MobileNumber  string
	VehicleType   string
	VehicleNumber string
	Gender        string
	DOB           string
	IdentityProof *Upload
}

func (p DeliveryBoyPayload) formFields() map[string]string {
	return map[string]string{
		"name":           p.Name,
		"email":          p.Email,
		"mobile_number":  p.MobileNumber,
		"vehicle_type":   p.VehicleType,
		"vehicle_number": p.VehicleNumber,
		"gender":         p.Gender,
		"dob":            p.DOB,
	}
}

func (p DeliveryBoyPayload) files() []Upload {
	if p.IdentityProof == nil {
		return nil
	}
	file := *p.IdentityProof
	if file.FieldName == "" {
		file.FieldName = "identity_proof"
	}
	return []Upload{file}
}

func (c *Client) ListDeliveryBoys(ctx context.Context) ([]DeliveryBoy, error) {
	var out []DeliveryBoy
	err := c.get(ctx, "/api/delivery-boys/", nil, &out)
	return out, err
}

// Creation goes through a dedicated path, updates through the
// collection one.
func (c *Client) CreateDeliveryBoy(ctx context.Context, payload DeliveryBoyPayload) (DeliveryBoy, error) {
	var out DeliveryBoy
	err := c.submitForm(ctx, "POST", "/api/create-delivery-boy/", payload.formFields(), payload.files(), &out)
	return out, err
}

func (c *Client) UpdateDeliveryBoy(ctx context.Context, id int, payload DeliveryBoyPayload) (DeliveryBoy, error) {
	var out DeliveryBoy
	err := c.submitForm(ctx, "PUT", fmt.Sprintf("/api/delivery-boys/%d/", id), payload.formFields(), payload.files(), &out)
	return out, err
}
