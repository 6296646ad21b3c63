package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-dealsite/internal/frontmatter"
)

// Sentinel errors for deal validation.
var (
	ErrInvalidDeal   = errors.New("invalid deal")
	ErrDuplicateSlug = errors.New("duplicate deal slug")
	ErrReservedSlug  = errors.New("reserved category slug")
)

// ReservedSlugs are output directories a category page may not use.
var ReservedSlugs = []string{"deal"}

// ValidationError lists every failing field of one source file.
type ValidationError struct {
	Source string
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v %s: %s", ErrInvalidDeal, e.Source, e.Errors.Error())
}

// Unwrap allows errors.Is(err, ErrInvalidDeal).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDeal
}

// Fields returns the failing field names.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		out = append(out, k)
	}
	return out
}

var (
	errSlug    = validation.NewError("validation_slug", "must be a lower-case URL slug (try {{.suggestion}})")
	errHTTPURL = validation.NewError("validation_http_url", "must be an absolute http or https URL")
	errNumeric = validation.NewError("validation_numeric", "must be a number")
)

// Validate checks the fields pages depend on and returns a
// *ValidationError naming every failing field, or nil.
func Validate(d *Deal) error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.Company, validation.Required),
		validation.Field(&d.Category, validation.Required),
		validation.Field(&d.CategorySlug, validation.Required, validation.By(slugRule)),
		validation.Field(&d.Benefit, validation.Required),
		validation.Field(&d.BenefitAmount, validation.Required),
		validation.Field(&d.CodeType, validation.Required, validation.In(CodeTypeCode, CodeTypeLink)),
		validation.Field(&d.Code, validation.When(d.CodeType == CodeTypeCode, validation.Required)),
		validation.Field(&d.URL, validation.Required, validation.By(httpURLRule)),
		validation.Field(&d.Slug, validation.Required, validation.By(slugRule)),
		validation.Field(&d.MetaTitle, validation.Required),
		validation.Field(&d.MetaDescription, validation.Required),
		validation.Field(&d.SuccessRate,
			validation.By(numericKeyRule(d.Meta, KeySuccessRate)),
			validation.Min(0.0),
			validation.Max(100.0),
		),
		validation.Field(&d.Priority, validation.By(numericKeyRule(d.Meta, KeyPriority))),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		return &ValidationError{Source: d.Source, Errors: errs}
	}
	return fmt.Errorf("validating %s: %w", d.Source, err)
}

// ValidateAll validates every deal and checks that slugs are unique and
// that no category uses a reserved slug. Errors are joined.
func ValidateAll(deals []*Deal) error {
	var errs []error
	seen := make(map[string]string, len(deals))

	for _, d := range deals {
		if err := Validate(d); err != nil {
			errs = append(errs, err)
		}
		if d.Slug != "" {
			if first, dup := seen[d.Slug]; dup {
				errs = append(errs, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateSlug, d.Slug, first, d.Source))
			} else {
				seen[d.Slug] = d.Source
			}
		}
		for _, reserved := range ReservedSlugs {
			if d.CategorySlug == reserved {
				errs = append(errs, fmt.Errorf("%w: %q in %s", ErrReservedSlug, reserved, d.Source))
			}
		}
	}
	return errors.Join(errs...)
}

func slugRule(value any) error {
	s, _ := value.(string)
	if s == "" || IsSlug(s) {
		return nil
	}
	return errSlug.SetParams(map[string]any{"suggestion": SuggestSlug(s)})
}

func httpURLRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errHTTPURL
	}
	return nil
}

// numericKeyRule fails when key is present in meta with a non-number value.
func numericKeyRule(meta *frontmatter.Record, key string) validation.RuleFunc {
	return func(any) error {
		if meta == nil {
			return nil
		}
		v, ok := meta.Get(key)
		if !ok || v.Kind == frontmatter.KindNumber {
			return nil
		}
		if strings.TrimSpace(v.String()) == "" {
			return nil
		}
		return errNumeric
	}
}
