package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShift(t *testing.T) {
	assert.Nil(t, ValidateShift("08:00", "18:00"))
	assert.Nil(t, ValidateShift("22:00", "06:00"))

	// A full-day 18h shift is the allowed maximum.
	assert.Nil(t, ValidateShift("04:00", "22:00"))

	err := ValidateShift("08:00", "08:00")
	require.NotNil(t, err)
	assert.Equal(t, "start and end time cannot be the same", err.Message)

	// 19h in one day.
	err = ValidateShift("04:00", "23:00")
	require.NotNil(t, err)
	assert.Equal(t, "shift cannot exceed 18 hours", err.Message)

	require.NotNil(t, ValidateShift("0800", "18:00"))
	require.NotNil(t, ValidateShift("08:00", "25:00"))
}

func TestCheckInRequestValidate(t *testing.T) {
	valid := CheckInRequest{
		Date:      "2026-03-02",
		ClientID:  "c1",
		SiteID:    "s1",
		StartTime: "10:00",
		EndTime:   "20:00",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Date = "02/03/2026"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.SiteID = " "
	assert.Error(t, bad.Validate())

	bad = valid
	bad.EndTime = bad.StartTime
	assert.Error(t, bad.Validate())
}

func TestMarkPresentRequestValidate(t *testing.T) {
	start, end := "10:00", "20:00"

	valid := MarkPresentRequest{LabourID: "l1", Date: "2026-03-02", ClientID: "c1", SiteID: "s1"}
	assert.NoError(t, valid.Validate(), "times are optional together")

	withTimes := valid
	withTimes.StartTime, withTimes.EndTime = &start, &end
	assert.NoError(t, withTimes.Validate())

	halfTimes := valid
	halfTimes.StartTime = &start
	assert.Error(t, halfTimes.Validate(), "one-sided times are rejected")
}
