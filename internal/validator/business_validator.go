package validator

import (
	"github.com/go-playground/validator/v10"
)

// streamRequiredStandards are the standards where a student must pick a
// stream.
var streamRequiredStandards = map[int]bool{11: true, 12: true}

// BusinessValidator handles business rule validation that cannot be expressed
// with struct tags alone.
type BusinessValidator struct {
	validate *validator.Validate
}

func newBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateCompleteStudent validates student profile completion.
// Stream is required only for standards 11 and 12; lower standards must not
// carry one.
func (bv *BusinessValidator) ValidateCompleteStudent(req *CompleteStudentRequest) ValidationErrors {
	errors := bv.Validate(req)

	if streamRequiredStandards[req.Std] {
		if req.Stream == nil || *req.Stream == "" {
			errors = append(errors, ValidationError{
				Field:   "Stream",
				Message: "is required for standards 11 and 12",
				Rule:    "stream_required",
			})
		}
	}

	return errors
}

// ValidateCompleteTeacher validates teacher profile completion.
func (bv *BusinessValidator) ValidateCompleteTeacher(req *CompleteTeacherRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateCompleteHOD validates HOD profile completion. The PIN value itself
// is checked by the profile service, not here; validation only ensures one
// was submitted.
func (bv *BusinessValidator) ValidateCompleteHOD(req *CompleteHODRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateCompleteAdmin validates admin profile completion.
func (bv *BusinessValidator) ValidateCompleteAdmin(req *CompleteAdminRequest) ValidationErrors {
	return bv.Validate(req)
}
