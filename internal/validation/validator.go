package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/blacknovastudio/briefing-portal/internal/orders"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for BriefingInput to ensure the
	// categorical fields stay inside their fixed enumerations.
	v.RegisterStructValidation(briefingStructValidation, BriefingInput{})

	return v
}

// briefingStructValidation verifies projectType and deliveryMethod against the fixed option lists.
func briefingStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(BriefingInput)

	if in.ProjectType != "" && !orders.ValidProjectType(in.ProjectType) {
		sl.ReportError(in.ProjectType, "project_type", "ProjectType", "project_type_known", "")
	}
	if in.DeliveryMethod != "" && !orders.ValidDeliveryMethod(in.DeliveryMethod) {
		sl.ReportError(in.DeliveryMethod, "delivery_method", "DeliveryMethod", "delivery_method_known", "")
	}
}
