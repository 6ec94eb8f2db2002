package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonCode(t *testing.T) {
	assert.Equal(t, "underage", ReasonCode(ErrUnderage))
	assert.Equal(t, "service_not_offered", ReasonCode(fmt.Errorf("road test at DMV: %w", ErrServiceNotOffered)))
	assert.Equal(t, "", ReasonCode(fmt.Errorf("boom")))
	assert.Equal(t, "", ReasonCode(nil))
}

func TestFromError(t *testing.T) {
	httpErr := FromError(fmt.Errorf("written test: %w", ErrNoPermit))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
	assert.Equal(t, "no_permit", httpErr.Reason)

	httpErr = FromError(fmt.Errorf("facility abc: %w", ErrRecordNotFound))
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	httpErr = FromError(ErrUnauthorized("nope"))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	httpErr = FromError(fmt.Errorf("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, "internal error", httpErr.Message)
}
