package generator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidCatalog wraps every structural or invariant violation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrDuplicateID is returned by CheckUnique.
	ErrDuplicateID = errors.New("duplicate topic id")
)

var numberingPattern = regexp.MustCompile(`^\d[\d.]*$`)

// validate is shared by all catalog checks and reports fields by their JSON names.
var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("numbering", func(fl validator.FieldLevel) bool {
		return numberingPattern.MatchString(fl.Field().String())
	})
}

// Validate checks the version policy, the struct tags, and the derived-field
// invariants of every topic.
func Validate(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	if err := c.Version.Compatible(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, describe(err))
	}
	for i, t := range c.Topics {
		if err := checkTopic(t); err != nil {
			return fmt.Errorf("%w: topics[%d] %q: %v", ErrInvalidCatalog, i, t.ID, err)
		}
	}
	return nil
}

// CheckUnique fails when two topics share an id.
func CheckUnique(c *Catalog) error {
	if dups := c.DuplicateIDs(); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, strings.Join(dups, ", "))
	}
	return nil
}

func checkTopic(t Topic) error {
	if want := len(segments(t.Numbering)); t.Level != want {
		return fmt.Errorf("level %d does not match numbering %q (%d segments)", t.Level, t.Numbering, want)
	}
	want, err := folderPath(t.Numbering, t.ID)
	if err != nil {
		return fmt.Errorf("numbering %q: %w", t.Numbering, err)
	}
	if t.FolderPath != want {
		return fmt.Errorf("folderPath %q, want %q", t.FolderPath, want)
	}
	for i, l := range t.Lessons {
		n := i + 1
		if l.Number != n {
			return fmt.Errorf("lessons[%d] has number %d, want %d", i, l.Number, n)
		}
		if wantID := fmt.Sprintf("%s-part-%d", t.ID, n); l.ID != wantID {
			return fmt.Errorf("lessons[%d] has id %q, want %q", i, l.ID, wantID)
		}
	}
	return nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Catalog.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
