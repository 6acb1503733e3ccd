// Package forms validates user-submitted post and comment data before
// anything is persisted. Validation is explicit: each form has a
// Validate function returning a field→message map, empty on success.
package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a form field name to its validation message
type Errors map[string]string

// Any reports whether any field failed validation
func (e Errors) Any() bool { return len(e) > 0 }

// GroupChecker resolves a submitted group reference to an existing group
type GroupChecker interface {
	GroupExists(id uint) (bool, error)
}

// PostForm carries the submitted fields of the post creation/edit form.
// RawGroup holds the group selector value as submitted; Validate resolves
// it into GroupID.
type PostForm struct {
	Text     string `validate:"required"`
	RawGroup string
	GroupID  *uint
}

// Validate checks required fields and resolves the group reference.
// A non-nil error means the existence check itself failed, not the form.
func (f *PostForm) Validate(groups GroupChecker) (Errors, error) {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Field() == "Text" {
				errs["text"] = "Text is required."
			}
		}
	}

	f.GroupID = nil
	if f.RawGroup != "" {
		id, err := strconv.ParseUint(f.RawGroup, 10, 32)
		if err != nil {
			errs["group"] = "Select a valid group."
			return errs, nil
		}
		gid := uint(id)
		exists, err := groups.GroupExists(gid)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs["group"] = "Select a valid group."
			return errs, nil
		}
		f.GroupID = &gid
	}
	return errs, nil
}

// CommentForm carries the submitted fields of the comment form
type CommentForm struct {
	Text string `validate:"required"`
}

// Validate checks the comment text is non-empty
func (f *CommentForm) Validate() Errors {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Field() == "Text" {
				errs["text"] = "Text is required."
			}
		}
	}
	return errs
}
