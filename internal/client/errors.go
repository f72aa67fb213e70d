package client

import "fmt"

// Status values for failures that never reached (or never understood) the
// server. Real HTTP statuses are passed through as-is.
const (
	StatusNetwork = 0
	StatusTimeout = 408
	StatusUnknown = 500
)

// Error is the single error type every API call fails with. Callers branch
// on Status; Message prefers what the server said.
type Error struct {
	Message string
	Status  int
	Errors  []string
}

func (e *Error) Error() string {
	if e.Status == StatusNetwork {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsNetwork reports a connectivity-level failure (no response at all).
func (e *Error) IsNetwork() bool { return e.Status == StatusNetwork }

// IsTimeout reports that the request was aborted by the client deadline.
func (e *Error) IsTimeout() bool { return e.Status == StatusTimeout }

func newNetworkError(err error) *Error {
	return &Error{
		Message: "ไม่สามารถเชื่อมต่อเครือข่ายได้ กรุณาตรวจสอบการเชื่อมต่อ",
		Status:  StatusNetwork,
		Errors:  []string{err.Error()},
	}
}

func newTimeoutError() *Error {
	return &Error{
		Message: "คำขอหมดเวลา กรุณาลองใหม่อีกครั้ง",
		Status:  StatusTimeout,
	}
}

func newUnknownError(err error) *Error {
	return &Error{
		Message: "เกิดข้อผิดพลาดที่ไม่คาดคิด",
		Status:  StatusUnknown,
		Errors:  []string{err.Error()},
	}
}
