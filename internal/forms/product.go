package forms

import (
	"context"
	"fmt"
	"math"

	"grocery_admin/internal/api"

	"go.uber.org/zap"
)

// ProductForm is the create/edit draft for a product, including the
// main image and the gallery as two independent staged-file lists and
// the weight-variant rows.
type ProductForm struct {
	client  *api.Client
	refresh RefreshFunc
	notify  NotifyFunc
	logger  *zap.Logger

	state  State
	editID int
	errs   FieldErrors

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
	WeightMeasurement string
	Weights           []api.WeightOption

	MainImage *api.Upload
	Gallery   []api.Upload

	// Message carries the last submit failure, derived from the server
	// error body when one was available.
	Message string
}

func NewProductForm(client *api.Client, logger *zap.Logger, refresh RefreshFunc, notify NotifyFunc) *ProductForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductForm{
		client:    client,
		refresh:   refresh,
		notify:    notify,
		logger:    logger.Named("product_form"),
		state:     StateEmpty,
		errs:      FieldErrors{},
		Available: true,
	}
}

func (f *ProductForm) State() State { return f.state }

func (f *ProductForm) Errors() FieldErrors { return f.errs }

func (f *ProductForm) Editing() {
	if f.state == StateEmpty {
		f.state = StateEditing
	}
}

// Seed pre-fills the draft from an existing product for the edit flow.
func (f *ProductForm) Seed(p api.Product) {
	f.editID = p.ID
	f.Name = p.Name
	f.Category = p.Category
	f.SubCategory = p.SubCategory
	f.Price = p.Price
	f.OfferPrice = p.OfferPrice
	f.Discount = p.Discount
	f.Quantity = p.Quantity
	f.Description = p.Description
	f.Available = p.Available
	f.IsPopular = p.IsPopular
	f.IsOffer = p.IsOffer
	f.WeightMeasurement = p.WeightMeasurement
	f.Weights = append([]api.WeightOption(nil), p.Weights...)
	f.state = StateEditing
}

func (f *ProductForm) SetName(name string) {
	f.Name = name
	f.Editing()
}

func (f *ProductForm) SetPrice(price float64) {
	f.Price = price
	f.Editing()
}

// SetDiscount recomputes the offer price from the discount. When the
// actual price is zero or unset the recomputation is skipped so no NaN
// reaches the draft.
func (f *ProductForm) SetDiscount(discount float64) {
	f.Discount = discount
	f.Editing()
	if f.Price == 0 {
		return
	}
	f.OfferPrice = round2(f.Price - f.Price*discount/100)
}

// SetOfferPrice recomputes the discount from the offer price, with the
// same zero-price guard.
func (f *ProductForm) SetOfferPrice(offer float64) {
	f.OfferPrice = offer
	f.Editing()
	if f.Price == 0 {
		return
	}
	f.Discount = round2((f.Price - offer) / f.Price * 100)
}

// AddWeight stages a weight variant; incomplete rows are ignored.
func (f *ProductForm) AddWeight(weight string, price float64, quantity int, inStock bool) {
	if weight == "" || price == 0 || quantity == 0 {
		return
	}
	f.Weights = append(f.Weights, api.WeightOption{
		Weight:    weight,
		Price:     price,
		Quantity:  quantity,
		IsInStock: inStock,
	})
	f.Editing()
}

func (f *ProductForm) RemoveWeight(index int) {
	if index < 0 || index >= len(f.Weights) {
		return
	}
	f.Weights = append(f.Weights[:index], f.Weights[index+1:]...)
}

func (f *ProductForm) SetMainImage(file api.Upload) {
	file.FieldName = "image"
	f.MainImage = &file
	f.Editing()
}

// RemoveMainImage unstages the main image; no network call is
// involved for a not-yet-submitted file.
func (f *ProductForm) RemoveMainImage() {
	f.MainImage = nil
}

func (f *ProductForm) AddGalleryImage(file api.Upload) {
	file.FieldName = "image"
	f.Gallery = append(f.Gallery, file)
	f.Editing()
}

func (f *ProductForm) RemoveGalleryImage(index int) {
	if index < 0 || index >= len(f.Gallery) {
		return
	}
	f.Gallery = append(f.Gallery[:index], f.Gallery[index+1:]...)
}

func (f *ProductForm) validate() bool {
	f.errs = FieldErrors{}
	f.errs.requirePresent("name", f.Name)
	f.errs.requireID("category", f.Category)
	f.errs.requirePositive("price", f.Price)
	return len(f.errs) == 0
}

func (f *ProductForm) payload() api.ProductPayload {
	return api.ProductPayload{
		Name:              f.Name,
		Category:          f.Category,
		SubCategory:       f.SubCategory,
		Price:             f.Price,
		OfferPrice:        f.OfferPrice,
		Discount:          f.Discount,
		Quantity:          f.Quantity,
		Description:       f.Description,
		Available:         f.Available,
		IsPopular:         f.IsPopular,
		IsOffer:           f.IsOffer,
		Weights:           f.Weights,
		WeightMeasurement: f.WeightMeasurement,
		Image:             f.MainImage,
	}
}

// Submit validates locally, then creates or updates the product. A
// create with staged gallery images uploads them in a second call; a
// gallery failure does not roll back the created product.
func (f *ProductForm) Submit(ctx context.Context) (api.Product, error) {
	if !f.validate() {
		return api.Product{}, ErrInvalidForm
	}

	f.state = StateSubmitting
	var (
		product api.Product
		err     error
	)
	if f.editID > 0 {
		product, err = f.client.UpdateProduct(ctx, f.editID, f.payload())
	} else {
		product, err = f.client.CreateProduct(ctx, f.payload())
	}
	if err != nil {
		f.fail(err)
		return api.Product{}, err
	}
	notify(f.notify, "Product saved.")

	if f.editID == 0 && len(f.Gallery) > 0 {
		if err := f.client.UploadProductImages(ctx, product.ID, f.Gallery); err != nil {
			// The product itself was created; only the gallery step
			// failed, and the user has to retry it manually.
			f.fail(fmt.Errorf("uploading gallery: %w", err))
			return product, err
		}
		notify(f.notify, "Gallery images uploaded.")
	}

	f.Reset()
	if err := refresh(ctx, f.refresh); err != nil {
		f.logger.Warn("list refresh after submit failed", zap.Error(err))
	}
	return product, nil
}

func (f *ProductForm) fail(err error) {
	f.state = StateEditing
	f.Message = api.ErrorMessage(err)
	f.logger.Warn("product submit failed", zap.Error(err))
}

// Reset returns the draft to its empty defaults; cancel uses it too.
func (f *ProductForm) Reset() {
	client, logger, refreshFn, notifyFn := f.client, f.logger, f.refresh, f.notify
	*f = ProductForm{
		client:    client,
		logger:    logger,
		refresh:   refreshFn,
		notify:    notifyFn,
		state:     StateEmpty,
		errs:      FieldErrors{},
		Available: true,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
