package validation

// BriefingInput is the payload for POST /orders.
type BriefingInput struct {
	ProjectName        string   `json:"project_name" validate:"required,min=2"`         // minimum length 2
	ProjectDescription string   `json:"project_description" validate:"required,min=10"` // describe the vision
	ProjectType        string   `json:"project_type" validate:"required"`               // one of the fixed project types
	Checklist          []string `json:"checklist,omitempty"`                            // capability tags, unknown entries dropped later
	DeliveryMethod     string   `json:"delivery_method" validate:"required"`            // GitHub | Google Drive
	ExtraNotes         string   `json:"extra_notes,omitempty"`                          // optional free text
}
