package api

import (
	"context"
	"strconv"
)

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var out LoginResult
	err := c.postJSON(ctx, "/api/adminlogin/", body, &out)
	return out, err
}

type SubAdminPayload struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type subAdminRegistration struct {
	SubAdminPayload
	IsVerified  bool `json:"is_verified"`
	IsActive    bool `json:"is_active"`
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

// CreateSubAdmin registers a staff account with the superuser bit
// forced off; the backend expects the flags spelled out.
func (c *Client) CreateSubAdmin(ctx context.Context, payload SubAdminPayload) (SubAdmin, error) {
	body := subAdminRegistration{
		SubAdminPayload: payload,
		IsVerified:      true,
		IsActive:        true,
		IsStaff:         true,
		IsSuperuser:     false,
	}
	var out SubAdmin
	err := c.postJSON(ctx, "/api/coadmins-reg/", body, &out)
	return out, err
}

func (c *Client) CreateMainAdmin(ctx context.Context, payload SubAdminPayload) (SubAdmin, error) {
	var out SubAdmin
	err := c.postJSON(ctx, "/api/super-admins/", payload, &out)
	return out, err
}

func (c *Client) ListSubAdmins(ctx context.Context, page, pageSize int) (Paged[SubAdmin], error) {
	if page < 1 {
		page = 1
	}
	query := map[string]string{"page": strconv.Itoa(page)}
	if pageSize > 0 {
		query["page_size"] = strconv.Itoa(pageSize)
	}
	var out Paged[SubAdmin]
	err := c.get(ctx, "/api/coadmins/", query, &out)
	return out, err
}
