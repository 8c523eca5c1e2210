package setting

import "errors"

var (
	// ErrSettingNotFound indicates an unknown key with no stored value.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrInvalidInput indicates an empty key.
	ErrInvalidInput = errors.New("invalid setting input")
	// ErrInvalidAnchor indicates the stored anchor is not a YYYY-MM-DD date.
	ErrInvalidAnchor = errors.New("stored pay-week anchor is not a valid date")
)
