package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
)

func TestValidatePayloadListsMissingJSONFields(t *testing.T) {
	err := validatePayload(NewValidator(), dto.StudentCreateRequest{Name: "Zoe"})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, []string{"username", "password", "roll_number"}, validationErr.Missing)
	require.Equal(t, "missing required fields: username, password, roll_number", err.Error())
}

func TestValidatePayloadReportsInvalidFields(t *testing.T) {
	err := validatePayload(NewValidator(), dto.AttendanceMarkRequest{Records: []dto.AttendanceRecord{
		{StudentID: 1, ClassID: 1, Date: "2024-09-02", Status: "present"},
		{StudentID: 2, ClassID: 1, Date: "02/09/2024", Status: "sick"},
	}})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Empty(t, validationErr.Missing)
	require.Equal(t, []string{"records[1].date", "records[1].status"}, validationErr.Invalid)
}

func TestValidationErrorFixedMessage(t *testing.T) {
	require.Equal(t, "records array required", NewValidationError("records array required").Error())
	require.Equal(t, "invalid request", (&ValidationError{}).Error())
}
