package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"grocery_admin/internal/api"
	"grocery_admin/internal/forms"

	"github.com/AlecAivazis/survey/v2"
)

func promptInput(message string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: message}, &value, survey.WithValidator(survey.Required))
	return strings.TrimSpace(value), err
}

func promptOptional(message string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Input{Message: message}, &value)
	return strings.TrimSpace(value), err
}

func promptPassword(message string) (string, error) {
	var value string
	err := survey.AskOne(&survey.Password{Message: message}, &value, survey.WithValidator(survey.Required))
	return value, err
}

func promptConfirm(message string) (bool, error) {
	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &ok)
	return ok, err
}

func promptFloat(message string) (float64, error) {
	value, err := promptOptional(message)
	if err != nil || value == "" {
		return 0, err
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return parsed, nil
}

func promptInt(message string) (int, error) {
	value, err := promptOptional(message)
	if err != nil || value == "" {
		return 0, err
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return parsed, nil
}

// promptFile stages a local file as a multipart attachment; a blank
// path skips the attachment.
func promptFile(message string) (*api.Upload, error) {
	path, err := promptOptional(message)
	if err != nil || path == "" {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &api.Upload{FileName: filepath.Base(path), Content: content}, nil
}

// promptCategory lists the known categories and returns the chosen id.
func promptCategory(ctx context.Context, client *api.Client) (int, error) {
	categories, err := client.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	if len(categories) == 0 {
		return 0, fmt.Errorf("no categories exist yet; add one first")
	}

	labels := make([]string, len(categories))
	for i, category := range categories {
		labels[i] = fmt.Sprintf("%d: %s", category.ID, category.Name)
	}
	var picked string
	if err := survey.AskOne(&survey.Select{Message: "Category:", Options: labels}, &picked); err != nil {
		return 0, err
	}
	for i, label := range labels {
		if label == picked {
			return categories[i].ID, nil
		}
	}
	return 0, fmt.Errorf("no category selected")
}

func promptProductForm(ctx context.Context, client *api.Client, form *forms.ProductForm) error {
	name, err := promptInput("Product name:")
	if err != nil {
		return err
	}
	form.SetName(name)

	categoryID, err := promptCategory(ctx, client)
	if err != nil {
		return err
	}
	form.Category = categoryID

	subs, err := client.ListSubcategoriesByCategory(ctx, categoryID)
	if err == nil && len(subs) > 0 {
		labels := make([]string, len(subs))
		for i, sub := range subs {
			labels[i] = fmt.Sprintf("%d: %s", sub.ID, sub.Name)
		}
		var picked string
		if err := survey.AskOne(&survey.Select{Message: "Subcategory:", Options: labels}, &picked); err != nil {
			return err
		}
		for i, label := range labels {
			if label == picked {
				form.SubCategory = subs[i].ID
			}
		}
	}

	price, err := promptFloat("Price:")
	if err != nil {
		return err
	}
	form.SetPrice(price)

	discount, err := promptFloat("Discount % (blank for none):")
	if err != nil {
		return err
	}
	if discount > 0 {
		form.SetDiscount(discount)
	}

	quantity, err := promptInt("Quantity:")
	if err != nil {
		return err
	}
	form.Quantity = quantity

	description, err := promptOptional("Description:")
	if err != nil {
		return err
	}
	form.Description = description

	measurement, err := promptOptional("Weight measurement (g/kg/ml/l):")
	if err != nil {
		return err
	}
	form.WeightMeasurement = measurement

	for {
		more, err := promptConfirm("Add a weight variant?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		weight, err := promptInput("Weight:")
		if err != nil {
			return err
		}
		variantPrice, err := promptFloat("Variant price:")
		if err != nil {
			return err
		}
		variantQty, err := promptInt("Variant quantity:")
		if err != nil {
			return err
		}
		inStock, err := promptConfirm("Variant in stock?")
		if err != nil {
			return err
		}
		form.AddWeight(weight, variantPrice, variantQty, inStock)
	}

	popular, err := promptConfirm("Popular product?")
	if err != nil {
		return err
	}
	form.IsPopular = popular

	offer, err := promptConfirm("Offer product?")
	if err != nil {
		return err
	}
	form.IsOffer = offer

	image, err := promptFile("Main image path (blank to skip):")
	if err != nil {
		return err
	}
	if image != nil {
		form.SetMainImage(*image)
	}

	for {
		gallery, err := promptFile("Gallery image path (blank to finish):")
		if err != nil {
			return err
		}
		if gallery == nil {
			break
		}
		form.AddGalleryImage(*gallery)
	}

	return nil
}

func promptSubcategoryForm(form *forms.SubcategoryForm) error {
	categoryID, err := promptInt("Category id:")
	if err != nil {
		return err
	}
	form.Category = categoryID

	name, err := promptInput("Subcategory name:")
	if err != nil {
		return err
	}
	form.Name = name

	enabled, err := promptConfirm("Enabled?")
	if err != nil {
		return err
	}
	form.Enabled = enabled

	image, err := promptFile("Image path (blank to skip):")
	if err != nil {
		return err
	}
	form.Image = image
	return nil
}

func promptDeliveryBoyForm(form *forms.DeliveryBoyForm) error {
	var err error
	if form.Name, err = promptInput("Name:"); err != nil {
		return err
	}
	if form.Email, err = promptInput("Email:"); err != nil {
		return err
	}
	if form.MobileNumber, err = promptInput("Mobile number:"); err != nil {
		return err
	}
	if form.VehicleType, err = promptOptional("Vehicle type:"); err != nil {
		return err
	}
	if form.VehicleNumber, err = promptOptional("Vehicle number:"); err != nil {
		return err
	}
	if form.Gender, err = promptOptional("Gender:"); err != nil {
		return err
	}
	if form.DOB, err = promptOptional("Date of birth (YYYY-MM-DD):"); err != nil {
		return err
	}
	proof, err := promptFile("Identity proof path (blank to skip):")
	if err != nil {
		return err
	}
	form.IdentityProof = proof
	return nil
}

func promptSubAdmin() (api.SubAdminPayload, error) {
	var payload api.SubAdminPayload
	var err error

	if payload.Name, err = promptOptional("Name:"); err != nil {
		return payload, err
	}
	if payload.Email, err = promptInput("Email:"); err != nil {
		return payload, err
	}
	if payload.Password, err = promptPassword("Password:"); err != nil {
		return payload, err
	}
	return payload, nil
}
