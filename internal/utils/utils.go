package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/errors"
)

type ForumValidator struct{}

func New() *ForumValidator {
	return &ForumValidator{}
}

func (v *ForumValidator) Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &errors.ErrorWithStatusCode{Message: "Name is required", StatusCode: 400}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &errors.ErrorWithStatusCode{Message: "Name is too long", StatusCode: 400}
	}
	return nil
}

func (v *ForumValidator) Description(description string) error {
	if utf8.RuneCountInString(description) > 500 {
		return &errors.ErrorWithStatusCode{Message: "Description is too long", StatusCode: 400}
	}
	return nil
}

func (v *ForumValidator) Tags(tags domain.Tags) error {
	if len(tags) > 10 {
		return &errors.ErrorWithStatusCode{Message: "Too many tags", StatusCode: 400}
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return &errors.ErrorWithStatusCode{Message: "Tags cannot be empty", StatusCode: 400}
		}
		if utf8.RuneCountInString(tag) > 30 {
			return &errors.ErrorWithStatusCode{Message: "Tag is too long", StatusCode: 400}
		}
	}
	return nil
}

type PostValidator struct{}

func (v *PostValidator) Content(content string) error {
	if len(content) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Content is too short", StatusCode: 400}
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return &errors.ErrorWithStatusCode{Message: "Content is too long", StatusCode: 400}
	}
	return nil
}

func (v *PostValidator) Title(title string) error {
	if utf8.RuneCountInString(title) > 120 {
		return &errors.ErrorWithStatusCode{Message: "Title is too long", StatusCode: 400}
	}
	return nil
}

func (v *PostValidator) PollOptions(options []string) error {
	if len(options) < 2 {
		return &errors.ErrorWithStatusCode{Message: "A poll needs at least two options", StatusCode: 400}
	}
	if len(options) > 10 {
		return &errors.ErrorWithStatusCode{Message: "Too many poll options", StatusCode: 400}
	}
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return &errors.ErrorWithStatusCode{Message: "Poll options cannot be empty", StatusCode: 400}
		}
		if utf8.RuneCountInString(o) > 100 {
			return &errors.ErrorWithStatusCode{Message: "Poll option is too long", StatusCode: 400}
		}
	}
	return nil
}
