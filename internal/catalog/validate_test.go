package catalog

import (
	"errors"
	"sort"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	if err := Validate(mustDeal(t, "acme.md", validDeal)); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_ListsEveryFailingField(t *testing.T) {
	t.Parallel()

	d := mustDeal(t, "empty.md", "---\ncodeType: code\n---\n")
	err := Validate(d)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if !errors.Is(err, ErrInvalidDeal) {
		t.Error("error does not wrap ErrInvalidDeal")
	}
	if verr.Source != "empty.md" {
		t.Errorf("Source = %q, want empty.md", verr.Source)
	}

	got := verr.Fields()
	sort.Strings(got)
	want := []string{
		"benefit", "benefitAmount", "category", "categorySlug", "code",
		"company", "metaDescription", "metaTitle", "slug", "url",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("failing fields = %v, want %v", got, want)
	}
}

func TestValidate_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		replace   [2]string
		wantField string
	}{
		{name: "unknown code type", replace: [2]string{"codeType: code", "codeType: voucher"}, wantField: "codeType"},
		{name: "code missing for code type", replace: [2]string{"code: ACME100", "code:"}, wantField: "code"},
		{name: "relative url", replace: [2]string{"url: https://acme.test/join", "url: /join"}, wantField: "url"},
		{name: "non-http url", replace: [2]string{"url: https://acme.test/join", "url: ftp://acme.test"}, wantField: "url"},
		{name: "slug with spaces", replace: [2]string{"slug: acme-bank", "slug: Acme Bank!"}, wantField: "slug"},
		{name: "success rate above range", replace: [2]string{"slug: acme-bank", "slug: acme-bank\nsuccessRate: 140"}, wantField: "successRate"},
		{name: "success rate not numeric", replace: [2]string{"slug: acme-bank", "slug: acme-bank\nsuccessRate: high"}, wantField: "successRate"},
		{name: "priority not numeric", replace: [2]string{"slug: acme-bank", "slug: acme-bank\npriority: first"}, wantField: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := strings.Replace(validDeal, tt.replace[0], tt.replace[1], 1)
			err := Validate(mustDeal(t, "acme.md", raw))

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Errors[tt.wantField]; !ok {
				t.Errorf("Errors = %v, want entry for %q", verr.Errors, tt.wantField)
			}
			if len(verr.Errors) != 1 {
				t.Errorf("Errors = %v, want only %q", verr.Errors, tt.wantField)
			}
		})
	}
}

func TestValidate_LinkNeedsNoCode(t *testing.T) {
	t.Parallel()

	raw := strings.Replace(validDeal, "codeType: code\ncode: ACME100", "codeType: link", 1)
	if err := Validate(mustDeal(t, "acme.md", raw)); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_SlugSuggestion(t *testing.T) {
	t.Parallel()

	raw := strings.Replace(validDeal, "slug: acme-bank", "slug: Acme Bank", 1)
	err := Validate(mustDeal(t, "acme.md", raw))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	var eo validation.Error
	if !errors.As(verr.Errors["slug"], &eo) {
		t.Fatalf("slug error = %T, want validation.Error", verr.Errors["slug"])
	}
	if !strings.Contains(eo.Error(), "acme-bank") {
		t.Errorf("slug error %q does not suggest acme-bank", eo.Error())
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	a := mustDeal(t, "a.md", validDeal)
	b := mustDeal(t, "b.md", validDeal)
	c := mustDeal(t, "c.md", strings.Replace(validDeal, "category: Food & Drink!", "category: Deal", 1))
	c.Slug = "other"
	broken := mustDeal(t, "broken.md", "---\ncodeType: link\n---\n")

	err := ValidateAll([]*Deal{a, b, c, broken})
	if err == nil {
		t.Fatal("ValidateAll() expected error, got nil")
	}
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Error("ValidateAll() missing ErrDuplicateSlug")
	}
	if !errors.Is(err, ErrReservedSlug) {
		t.Error("ValidateAll() missing ErrReservedSlug")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Source != "broken.md" {
		t.Errorf("ValidateAll() missing ValidationError for broken.md: %v", err)
	}
	for _, name := range []string{"a.md", "b.md", "c.md", "broken.md"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not mention %s", name)
		}
	}

	if err := ValidateAll([]*Deal{a}); err != nil {
		t.Errorf("ValidateAll() single valid deal error = %v", err)
	}
}
