// Package forms holds the per-operation request DTOs and their local
// validation. Validation runs before anything touches the network; a
// request that fails here never produces an API call.
package forms

import (
	"errors"
	"regexp"
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

// ErrNoChanges is returned by edit-form validation when every editable
// field matches the snapshot, so a vacuous update is never issued.
var ErrNoChanges = errors.New("ไม่มีการเปลี่ยนแปลงข้อมูล")

// numericPattern is the allow-list for numeric-entry fields: digits plus
// the punctuation the forms accept (decimal point, comma, dash, slash,
// space).
var numericPattern = regexp.MustCompile(`^[0-9.,\-/ ]+$`)

// validNumeric reports whether a filled numeric field contains only
// allowed characters. Empty input is the caller's requiredness concern.
func validNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return numericPattern.MatchString(s)
}

func required(field, value, msg string) error {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationError{Field: field, Msg: msg}
	}
	return nil
}

func numeric(field, value string) error {
	if !validNumeric(value) {
		return domain.ValidationError{Field: field, Msg: "ต้องเป็นตัวเลขเท่านั้น"}
	}
	return nil
}

func domainDateError() error {
	return domain.ValidationError{Field: "recordedAt", Msg: "รูปแบบวันที่ไม่ถูกต้อง"}
}
