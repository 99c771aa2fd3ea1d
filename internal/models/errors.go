package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrRuleDescriptionNotUnique = errors.New("the description of the rule must be unique")
)
