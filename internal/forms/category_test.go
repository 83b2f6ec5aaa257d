package forms

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"grocery_admin/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRequiredName(t *testing.T) {
	calls := 0
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	form := NewCategoryForm(client, nil, nil, nil)
	_, err := form.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "This field is required.", form.Errors()["name"])
}

func TestCategoryServerErrorKeepsDraft(t *testing.T) {
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"name":["This field is required."]}`)
	}))

	form := NewCategoryForm(client, nil, nil, nil)
	form.SetName("Vegetables")
	form.SetImage(api.Upload{FileName: "veg.png", Content: []byte("png")})

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, "This field is required.", form.Message)
	assert.Equal(t, "Vegetables", form.Name, "entered name is not cleared")
	require.NotNil(t, form.Image, "staged image is not cleared")
	assert.Equal(t, StateEditing, form.State())
}

func TestCategorySubmitSuccess(t *testing.T) {
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":2,"name":%q}`, r.FormValue("name"))
	}))

	refreshed := false
	form := NewCategoryForm(client, nil,
		func(context.Context) error { refreshed = true; return nil }, nil)
	form.SetName("Fruits")

	category, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, category.ID)
	assert.Equal(t, StateEmpty, form.State())
	assert.Empty(t, form.Name)
	assert.True(t, refreshed)
}

func TestNotificationFormRequiresMessage(t *testing.T) {
	form := NewNotificationForm(nil, nil, nil)
	err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, "This field is required.", form.Errors()["message"])
}

func TestNotificationTargetedSend(t *testing.T) {
	var path string
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	form := NewNotificationForm(client, nil, nil)
	form.CustomerID = 12
	form.Message = "Your order is out for delivery"

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, "/api/send-notification/12/", path)
	assert.Equal(t, StateEmpty, form.State())
	assert.Empty(t, form.Message)
}
