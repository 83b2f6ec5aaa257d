package forms

import (
	"context"

	"grocery_admin/internal/api"

	"go.uber.org/zap"
)

type CategoryForm struct {
	client  *api.Client
	refresh RefreshFunc
	notify  NotifyFunc
	logger  *zap.Logger

	state  State
	editID int
	errs   FieldErrors

	Name    string
	Image   *api.Upload
	Message string
}

func NewCategoryForm(client *api.Client, logger *zap.Logger, refresh RefreshFunc, notify NotifyFunc) *CategoryForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryForm{
		client:  client,
		refresh: refresh,
		notify:  notify,
		logger:  logger.Named("category_form"),
		state:   StateEmpty,
		errs:    FieldErrors{},
	}
}

func (f *CategoryForm) State() State { return f.state }

func (f *CategoryForm) Errors() FieldErrors { return f.errs }

func (f *CategoryForm) Seed(c api.Category) {
	f.editID = c.ID
	f.Name = c.Name
	f.state = StateEditing
}

func (f *CategoryForm) SetName(name string) {
	f.Name = name
	if f.state == StateEmpty {
		f.state = StateEditing
	}
}

func (f *CategoryForm) SetImage(file api.Upload) {
	file.FieldName = "image"
	f.Image = &file
	if f.state == StateEmpty {
		f.state = StateEditing
	}
}

func (f *CategoryForm) RemoveImage() {
	f.Image = nil
}

func (f *CategoryForm) Submit(ctx context.Context) (api.Category, error) {
	f.errs = FieldErrors{}
	f.errs.requirePresent("name", f.Name)
	if len(f.errs) > 0 {
		return api.Category{}, ErrInvalidForm
	}

	f.state = StateSubmitting
	payload := api.CategoryPayload{Name: f.Name, Image: f.Image}

	var (
		category api.Category
		err      error
	)
	if f.editID > 0 {
		category, err = f.client.UpdateCategory(ctx, f.editID, payload)
	} else {
		category, err = f.client.CreateCategory(ctx, payload)
	}
	if err != nil {
		// The entered name and staged image survive for resubmission.
		f.state = StateEditing
		f.Message = api.ErrorMessage(err)
		f.logger.Warn("category submit failed", zap.Error(err))
		return api.Category{}, err
	}

	notify(f.notify, "Category saved.")
	f.Reset()
	if err := refresh(ctx, f.refresh); err != nil {
		f.logger.Warn("list refresh after submit failed", zap.Error(err))
	}
	return category, nil
}

func (f *CategoryForm) Reset() {
	f.editID = 0
	f.Name = ""
	f.Image = nil
	f.Message = ""
	f.errs = FieldErrors{}
	f.state = StateEmpty
}
