package errors

import "errors"

// Reasons a facility refuses an operation. The entity is left untouched whenever one of these
// is returned.
var (
	ErrServiceNotOffered    = errors.New("service not offered at this facility")
	ErrUnderage             = errors.New("registrant is under the minimum age")
	ErrNoPermit             = errors.New("registrant has no permit")
	ErrWrittenTestNotPassed = errors.New("written test not passed")
	ErrNotLicensed          = errors.New("registrant is not licensed")
	ErrAlreadyRegistered    = errors.New("vehicle already registered")
)

// ErrRecordNotFound is returned by the in-memory repositories on a lookup miss.
var ErrRecordNotFound = errors.New("record not found")

var reasonCodes = []struct {
	err  error
	code string
}{
	{ErrServiceNotOffered, "service_not_offered"},
	{ErrUnderage, "underage"},
	{ErrNoPermit, "no_permit"},
	{ErrWrittenTestNotPassed, "written_test_not_passed"},
	{ErrNotLicensed, "not_licensed"},
	{ErrAlreadyRegistered, "already_registered"},
}

// ReasonCode returns the stable code for a rule rejection, or "" if err is not one.
func ReasonCode(err error) string {
	for _, rc := range reasonCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return ""
}
