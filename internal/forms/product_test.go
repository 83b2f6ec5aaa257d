package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocery_admin/internal/api"
	"grocery_admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAPIClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(config.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestDiscountDerivesOfferPrice(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)
	form.SetPrice(200)
	form.SetDiscount(10)

	assert.Equal(t, 180.0, form.OfferPrice)
}

func TestOfferPriceDerivesDiscount(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)
	form.SetPrice(200)
	form.SetOfferPrice(150)

	assert.Equal(t, 25.0, form.Discount)
}

func TestDerivationRoundsToTwoDecimals(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)
	form.SetPrice(90)
	form.SetOfferPrice(60)

	assert.Equal(t, 33.33, form.Discount)
}

// With a zero actual price no derived field is recomputed: no division
// by zero, no NaN in the draft.
func TestZeroPriceSkipsDerivation(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)

	form.SetDiscount(10)
	assert.Equal(t, 0.0, form.OfferPrice)

	form.SetOfferPrice(150)
	assert.Equal(t, 10.0, form.Discount, "discount keeps its entered value")
	assert.False(t, form.OfferPrice != form.OfferPrice, "no NaN")
}

func TestValidationBlocksNetworkCall(t *testing.T) {
	calls := 0
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	form := NewProductForm(client, nil, nil, nil)
	form.SetName("   ")

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, 0, calls, "invalid form must not reach the network")
	assert.Equal(t, "This field is required.", form.Errors()["name"])
	assert.Equal(t, "This field is required.", form.Errors()["category"])
	assert.Equal(t, "This field is required.", form.Errors()["price"])
	assert.Equal(t, StateEditing, form.State())
}

func TestSubmitSuccessResetsAndRefreshes(t *testing.T) {
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Product{ID: 11, Name: r.FormValue("name")})
	}))

	refreshed := false
	var notices []string
	form := NewProductForm(client, nil,
		func(context.Context) error { refreshed = true; return nil },
		func(message string) { notices = append(notices, message) })

	form.SetName("Cardamom")
	form.Category = 3
	form.SetPrice(120)

	product, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, product.ID)

	assert.Equal(t, StateEmpty, form.State())
	assert.Empty(t, form.Name)
	assert.Zero(t, form.Price)
	assert.True(t, refreshed, "the owning list must be refetched")
	assert.Contains(t, notices, "Product saved.")
}

func TestServerRejectionPreservesDraft(t *testing.T) {
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"name":["This field is required."]}`)
	}))

	form := NewProductForm(client, nil, nil, nil)
	form.SetName("Cardamom")
	form.Category = 3
	form.SetPrice(120)
	form.SetMainImage(api.Upload{FileName: "c.jpg", Content: []byte("x")})

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	// The entered data survives so the user can correct and resubmit.
	assert.Equal(t, StateEditing, form.State())
	assert.Equal(t, "Cardamom", form.Name)
	assert.Equal(t, 120.0, form.Price)
	require.NotNil(t, form.MainImage)
	assert.Equal(t, "This field is required.", form.Message)
}

// A gallery failure after a successful create does not roll the
// product back; the user retries the gallery step manually.
func TestGalleryFailureKeepsCreatedProduct(t *testing.T) {
	created := 0
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/" {
			created++
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":5,"name":"Dates"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"detail":"storage unavailable"}`)
	}))

	form := NewProductForm(client, nil, nil, nil)
	form.SetName("Dates")
	form.Category = 1
	form.SetPrice(90)
	form.AddGalleryImage(api.Upload{FileName: "a.jpg", Content: []byte("a")})

	product, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, created, "the create is not rolled back")
	assert.Equal(t, 5, product.ID, "the created product is reported to the caller")
	assert.Equal(t, StateEditing, form.State())
}

func TestSeedEntersEditingAndPatches(t *testing.T) {
	var method, path string
	client := testAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_ = json.NewEncoder(w).Encode(api.Product{ID: 14, Name: r.FormValue("name")})
	}))

	form := NewProductForm(client, nil, nil, nil)
	form.Seed(api.Product{
		ID:       14,
		Name:     "Jaggery",
		Category: 2,
		Price:    75,
		Weights:  []api.WeightOption{{Weight: "250", Price: 40, Quantity: 5, IsInStock: true}},
	})
	assert.Equal(t, StateEditing, form.State())

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/products/14/", path)
}

func TestWeightRows(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)

	form.AddWeight("500", 110, 10, true)
	form.AddWeight("1", 200, 4, false)
	form.AddWeight("", 50, 1, true) // incomplete rows are ignored
	require.Len(t, form.Weights, 2)

	form.RemoveWeight(0)
	require.Len(t, form.Weights, 1)
	assert.Equal(t, "1", form.Weights[0].Weight)

	form.RemoveWeight(5) // out of range is a no-op
	assert.Len(t, form.Weights, 1)
}

func TestGalleryStagingIsLocal(t *testing.T) {
	form := NewProductForm(nil, nil, nil, nil)

	form.AddGalleryImage(api.Upload{FileName: "a.jpg"})
	form.AddGalleryImage(api.Upload{FileName: "b.jpg"})
	form.RemoveGalleryImage(0)

	require.Len(t, form.Gallery, 1)
	assert.Equal(t, "b.jpg", form.Gallery[0].FileName)

	form.SetMainImage(api.Upload{FileName: "main.jpg"})
	form.RemoveMainImage()
	assert.Nil(t, form.MainImage)
}
