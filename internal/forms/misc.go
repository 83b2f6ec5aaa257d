package forms

import (
	"context"

	"grocery_admin/internal/api"

	"go.uber.org/zap"
)

type SubcategoryForm struct {
	client  *api.Client
	refresh RefreshFunc
	notify  NotifyFunc
	logger  *zap.Logger

	state  State
	editID int
	errs   FieldErrors

	Category int
	Name     string
	Enabled  bool
	Image    *api.Upload
	Message  string
}

func NewSubcategoryForm(client *api.Client, logger *zap.Logger, refresh RefreshFunc, notify NotifyFunc) *SubcategoryForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubcategoryForm{
		client:  client,
		refresh: refresh,
		notify:  notify,
		logger:  logger.Named("subcategory_form"),
		state:   StateEmpty,
		errs:    FieldErrors{},
		Enabled: true,
	}
}

func (f *SubcategoryForm) State() State { return f.state }

func (f *SubcategoryForm) Errors() FieldErrors { return f.errs }

func (f *SubcategoryForm) Seed(s api.Subcategory) {
	f.editID = s.ID
	f.Category = s.Category
	f.Name = s.Name
	f.Enabled = s.Enabled
	f.state = StateEditing
}

func (f *SubcategoryForm) Submit(ctx context.Context) (api.Subcategory, error) {
	f.errs = FieldErrors{}
	f.errs.requirePresent("name", f.Name)
	f.errs.requireID("Category", f.Category)
	if len(f.errs) > 0 {
		return api.Subcategory{}, ErrInvalidForm
	}

	f.state = StateSubmitting
	payload := api.SubcategoryPayload{
		Category: f.Category,
		Name:     f.Name,
		Enabled:  f.Enabled,
		Image:    f.Image,
	}

	var (
		sub api.Subcategory
		err error
	)
	if f.editID > 0 {
		sub, err = f.client.UpdateSubcategory(ctx, f.editID, payload)
	} else {
		sub, err = f.client.CreateSubcategory(ctx, payload)
	}
	if err != nil {
		f.state = StateEditing
		f.Message = api.ErrorMessage(err)
		f.logger.Warn("subcategory submit failed", zap.Error(err))
		return api.Subcategory{}, err
	}

	notify(f.notify, "Subcategory saved.")
	f.Reset()
	if err := refresh(ctx, f.refresh); err != nil {
		f.logger.Warn("list refresh after submit failed", zap.Error(err))
	}
	return sub, nil
}

func (f *SubcategoryForm) Reset() {
	f.editID = 0
	f.Category = 0
	f.Name = ""
	f.Enabled = true
	f.Image = nil
	f.Message = ""
	f.errs = FieldErrors{}
	f.state = StateEmpty
}

type DeliveryBoyForm struct {
	client  *api.Client
	refresh RefreshFunc
	notify  NotifyFunc
	logger  *zap.Logger

	state  State
	editID int
	errs   FieldErrors

	Name          string
	Email         string
	MobileNumber  string
	VehicleType   string
	VehicleNumber string
	Gender        string
	DOB           string
	IdentityProof *api.Upload
	Message       string
}

func NewDeliveryBoyForm(client *api.Client, logger *zap.Logger, refresh RefreshFunc, notify NotifyFunc) *DeliveryBoyForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliveryBoyForm{
		client:  client,
		refresh: refresh,
		notify:  notify,
		logger:  logger.Named("delivery_form"),
		state:   StateEmpty,
		errs:    FieldErrors{},
	}
}

func (f *DeliveryBoyForm) State() State { return f.state }

func (f *DeliveryBoyForm) Errors() FieldErrors { return f.errs }

func (f *DeliveryBoyForm) Seed(d api.DeliveryBoy) {
	f.editID = d.ID
	f.Name = d.Name
	f.Email = d.Email
	f.MobileNumber = d.MobileNumber
	f.VehicleType = d.VehicleType
	f.VehicleNumber = d.VehicleNumber
	f.Gender = d.Gender
	f.DOB = d.DOB
	f.state = StateEditing
}

func (f *DeliveryBoyForm) Submit(ctx context.Context) (api.DeliveryBoy, error) {
	f.errs = FieldErrors{}
	f.errs.requirePresent("name", f.Name)
	f.errs.requirePresent("email", f.Email)
	f.errs.requirePresent("mobile_number", f.MobileNumber)
	if len(f.errs) > 0 {
		return api.DeliveryBoy{}, ErrInvalidForm
	}

	f.state = StateSubmitting
	payload := api.DeliveryBoyPayload{
		Name:          f.Name,
		Email:         f.Email,
		MobileNumber:  f.MobileNumber,
		VehicleType:   f.VehicleType,
		VehicleNumber: f.VehicleNumber,
		Gender:        f.Gender,
		DOB:           f.DOB,
		IdentityProof: f.IdentityProof,
	}

	var (
		boy api.DeliveryBoy
		err error
	)
	if f.editID > 0 {
		boy, err = f.client.UpdateDeliveryBoy(ctx, f.editID, payload)
	} else {
		boy, err = f.client.CreateDeliveryBoy(ctx, payload)
	}
	if err != nil {
		f.state = StateEditing
		f.Message = api.ErrorMessage(err)
		f.logger.Warn("delivery boy submit failed", zap.Error(err))
		return api.DeliveryBoy{}, err
	}

	notify(f.notify, "Delivery boy saved.")
	f.Reset()
	if err := refresh(ctx, f.refresh); err != nil {
		f.logger.Warn("list refresh after submit failed", zap.Error(err))
	}
	return boy, nil
}

func (f *DeliveryBoyForm) Reset() {
	*f = DeliveryBoyForm{
		client:  f.client,
		refresh: f.refresh,
		notify:  f.notify,
		logger:  f.logger,
		state:   StateEmpty,
		errs:    FieldErrors{},
	}
}

type NotificationForm struct {
	client *api.Client
	notify NotifyFunc
	logger *zap.Logger

	state State
	errs  FieldErrors

	Message    string
	Image      *api.Upload
	CustomerID int
	FailReason string
}

func NewNotificationForm(client *api.Client, logger *zap.Logger, notify NotifyFunc) *NotificationForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationForm{
		client: client,
		notify: notify,
		logger: logger.Named("notification_form"),
		state:  StateEmpty,
		errs:   FieldErrors{},
	}
}

func (f *NotificationForm) State() State { return f.state }

func (f *NotificationForm) Errors() FieldErrors { return f.errs }

// Submit broadcasts when no customer is targeted, otherwise sends to
// just that customer.
func (f *NotificationForm) Submit(ctx context.Context) error {
	f.errs = FieldErrors{}
	f.errs.requirePresent("message", f.Message)
	if len(f.errs) > 0 {
		return ErrInvalidForm
	}

	f.state = StateSubmitting
	var err error
	if f.CustomerID > 0 {
		err = f.client.SendUserNotification(ctx, f.CustomerID, f.Message)
	} else {
		err = f.client.SendNotification(ctx, f.Message, f.Image)
	}
	if err != nil {
		f.state = StateEditing
		f.FailReason = api.ErrorMessage(err)
		f.logger.Warn("notification submit failed", zap.Error(err))
		return err
	}

	notify(f.notify, "Notification sent.")
	f.Message = ""
	f.Image = nil
	f.CustomerID = 0
	f.FailReason = ""
	f.state = StateEmpty
	return nil
}
