package validation

import (
	"testing"
)

func validInput() BriefingInput {
	return BriefingInput{
		ProjectName:        "Nova Cloud",
		ProjectDescription: "A launch site for a cloud tooling startup",
		ProjectType:        "Website",
		Checklist:          []string{"Database"},
		DeliveryMethod:     "GitHub",
	}
}

func TestBriefingInput_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validInput()); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestBriefingInput_ShortProjectName(t *testing.T) {
	v := New()

	in := validInput()
	in.ProjectName = "N"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected validation error for one-character project name, got nil")
	}
}

func TestBriefingInput_ShortDescription(t *testing.T) {
	v := New()

	in := validInput()
	in.ProjectDescription = "too short"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected validation error for short description, got nil")
	}
}

func TestBriefingInput_UnknownProjectType(t *testing.T) {
	v := New()

	in := validInput()
	in.ProjectType = "Mobile App"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected validation error for unknown project type, got nil")
	}
}

func TestBriefingInput_UnknownDeliveryMethod(t *testing.T) {
	v := New()

	in := validInput()
	in.DeliveryMethod = "FTP"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected validation error for unknown delivery method, got nil")
	}
}

func TestBriefingInput_MissingFields(t *testing.T) {
	v := New()

	err := v.Struct(BriefingInput{})
	if err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
	fields := ErrorsToMap(err)
	if len(fields) < 4 {
		t.Fatalf("expected at least 4 field errors, got %d: %v", len(fields), fields)
	}
}
