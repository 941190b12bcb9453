package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterInput holds the fields accepted by registration.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JobInput holds the fields accepted when creating a job. An empty status
// means pending.
type JobInput struct {
	Company  string `json:"company" validate:"required,max=50"`
	Position string `json:"position" validate:"required,max=100"`
	Status   string `json:"status" validate:"omitempty,oneof=interview declined pending"`
}

// JobUpdateInput holds the fields of a partial update; nil fields are left alone.
type JobUpdateInput struct {
	Company  *string `json:"company" validate:"omitnil,max=50"`
	Position *string `json:"position" validate:"omitnil,max=100"`
	Status   *string `json:"status" validate:"omitnil,oneof=interview declined pending"`
}

var validate = newValidator()

// newValidator reports fields under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "Struct.Field.tag" to the message shown to clients.
var fieldMessages = map[string]string{
	"RegisterInput.Name.required":     "Please provide name",
	"RegisterInput.Name.min":          "Name must be at least 3 characters",
	"RegisterInput.Name.max":          "Name must be at most 50 characters",
	"RegisterInput.Email.required":    "Please provide email",
	"RegisterInput.Email.email":       "Please provide a valid email",
	"RegisterInput.Password.required": "Please provide password",
	"RegisterInput.Password.min":      "Password must be at least 6 characters",
	"JobInput.Company.required":       "Please provide company name",
	"JobInput.Company.max":            "Company must be at most 50 characters",
	"JobInput.Position.required":      "Please provide position",
	"JobInput.Position.max":           "Position must be at most 100 characters",
	"JobInput.Status.oneof":           "Status must be one of interview, declined, pending",
	"JobUpdateInput.Company.max":      "Company must be at most 50 characters",
	"JobUpdateInput.Position.max":     "Position must be at most 100 characters",
	"JobUpdateInput.Status.oneof":     "Status must be one of interview, declined, pending",
}

// ValidateRegistration checks the credential record rules before any write.
func ValidateRegistration(in RegisterInput) error {
	return validateStruct(in)
}

// ValidateJob checks the job record rules before any write.
func ValidateJob(in JobInput) error {
	return validateStruct(in)
}

// ValidateJobUpdate rejects explicitly emptied company/position fields and then
// re-applies the job record rules to whatever fields are present.
func ValidateJobUpdate(in JobUpdateInput) error {
	if (in.Company != nil && *in.Company == "") || (in.Position != nil && *in.Position == "") {
		return ErrEmptyJobFields
	}
	return validateStruct(in)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", fe.Field())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Msg: msg})
	}
	return out
}
