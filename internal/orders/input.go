package orders

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type LineInput struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	CustomerName  string      `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string      `json:"customer_email" validate:"omitempty,email"`
	Products      []LineInput `json:"products" validate:"required,min=1,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the request shape before any storage is touched.
func (in CreateOrderInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) || len(ferrs) == 0 {
		return invalidf("invalid request")
	}
	return invalidf("%s", message(ferrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "customer_name":
		return "customer_name is required and must be between 2 and 100 characters"
	case "customer_email":
		return "customer_email must be a valid email address"
	case "products":
		return "products must contain at least one item"
	case "product_id":
		return "product_id must be a positive integer"
	case "quantity":
		return "quantity must be at least 1"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
