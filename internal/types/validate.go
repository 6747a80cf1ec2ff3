package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the whole resume graph and returns nil or a single
// *ValidationError describing every violation found. It runs three passes:
// struct-tag validation over all records, phone verification on the contact,
// and rank-collision detection across the skill groups. The resume is never
// modified.
func (r *Resume) Validate() error {
	verr := &ValidationError{}

	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fieldErr := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   fieldPath(fieldErr),
				Message: tagMessage(fieldErr),
			})
		}
	}

	if r.Contact.Phone != "" {
		if err := verifyPhone(r.Contact.Phone); err != nil {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   "contact.phone",
				Message: err.Error(),
			})
		}
	}

	if dups := r.duplicateRanks(); len(dups) > 0 {
		verr.DuplicateRanks = dups
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// duplicateRanks walks the skill groups in document order building a
// rank -> last-seen-category mapping. The first time a rank repeats, the
// collision list is seeded with the category that held the rank first; every
// later collider is appended. The result is empty when all ranks are unique.
func (r *Resume) duplicateRanks() map[int][]string {
	lastSeen := make(map[int]string)
	dups := make(map[int][]string)
	for _, name := range r.Skills.Names() {
		group, _ := r.Skills.Get(name)
		if previous, seen := lastSeen[group.Rank]; seen {
			if _, tracked := dups[group.Rank]; !tracked {
				dups[group.Rank] = []string{previous}
			}
			dups[group.Rank] = append(dups[group.Rank], name)
		}
		lastSeen[group.Rank] = name
	}
	return dups
}

// fieldPath converts a validator namespace like "Resume.Contact.Email" into
// the document path "contact.email".
func fieldPath(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// tagMessage renders a human-readable message for a failed validator tag.
func tagMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fieldErr.Tag() + " validation"
	}
}
