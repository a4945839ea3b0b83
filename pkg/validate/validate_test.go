package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/dukaan/pkg/validate"
)

type registration struct {
	Username string `json:"username" validate:"required,alpha_num,not_digits,between=4,8"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registration{
		Username: "riya1",
		Password: "secret99",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registration{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["username"]; !ok {
		t.Error("expected username to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestBetweenRule(t *testing.T) {
	for _, name := range []string{"abc", "abcdefghi"} {
		errs := validate.Struct(registration{Username: name, Password: "secret99"})
		if _, ok := errs["username"]; !ok {
			t.Errorf("expected %q to fail the length check", name)
		}
	}
	for _, name := range []string{"abcd", "abcdefgh"} {
		errs := validate.Struct(registration{Username: name, Password: "secret99"})
		if _, ok := errs["username"]; ok {
			t.Errorf("expected %q to pass the length check, got: %v", name, errs)
		}
	}
}

func TestAlphaNumRule(t *testing.T) {
	errs := validate.Struct(registration{Username: "ri_ya", Password: "secret99"})
	if _, ok := errs["username"]; !ok {
		t.Error("expected underscore to fail alpha_num")
	}
}

func TestNotDigitsRule(t *testing.T) {
	errs := validate.Struct(registration{Username: "123456", Password: "secret99"})
	if _, ok := errs["username"]; !ok {
		t.Error("expected all-digit username to fail not_digits")
	}

	errs = validate.Struct(registration{Username: "user99", Password: "secret99"})
	if _, ok := errs["username"]; ok {
		t.Errorf("expected mixed username to pass, got: %v", errs)
	}
}

func TestMinRule(t *testing.T) {
	errs := validate.Struct(registration{Username: "riya1", Password: "tiny"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected short password to fail min=6")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Nick string `json:"nick" validate:"nullable,alpha_num,min=3"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Nick: "a!"}); !validate.HasErrors(errs) {
		t.Error("expected non-empty nullable field to be validated")
	}
}
