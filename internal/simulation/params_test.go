package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateSuccess(t *testing.T) {
	req := RunRequest{
		AvailableDrivers:  intPtr(3),
		RouteStartTime:    strPtr("09:30"),
		MaxHoursPerDriver: floatPtr(8),
	}

	params, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, 3, params.AvailableDrivers)
	assert.Equal(t, "09:30", params.RouteStartTime)
	assert.Equal(t, 8.0, params.MaxHoursPerDriver)
}

func TestValidateMissingParameters(t *testing.T) {
	req := RunRequest{RouteStartTime: strPtr("09:30")}

	_, err := req.Validate()

	var missing *MissingParametersError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"available_drivers", "max_hours_per_driver"}, missing.Missing)
}

// Presence is checked before format: an absent field wins over a malformed one.
func TestValidatePresenceBeforeFormat(t *testing.T) {
	req := RunRequest{RouteStartTime: strPtr("not-a-time"), MaxHoursPerDriver: floatPtr(8)}

	_, err := req.Validate()

	var missing *MissingParametersError
	assert.ErrorAs(t, err, &missing)
}

func TestValidateInvalidParameters(t *testing.T) {
	valid := func() RunRequest {
		return RunRequest{
			AvailableDrivers:  intPtr(3),
			RouteStartTime:    strPtr("09:30"),
			MaxHoursPerDriver: floatPtr(8),
		}
	}

	cases := []struct {
		name      string
		mutate    func(*RunRequest)
		wantField string
	}{
		{"zero drivers", func(r *RunRequest) { r.AvailableDrivers = intPtr(0) }, "available_drivers"},
		{"negative drivers", func(r *RunRequest) { r.AvailableDrivers = intPtr(-2) }, "available_drivers"},
		{"bad time format", func(r *RunRequest) { r.RouteStartTime = strPtr("9:30") }, "route_start_time"},
		{"hour out of range", func(r *RunRequest) { r.RouteStartTime = strPtr("24:00") }, "route_start_time"},
		{"minute out of range", func(r *RunRequest) { r.RouteStartTime = strPtr("12:60") }, "route_start_time"},
		{"not a time at all", func(r *RunRequest) { r.RouteStartTime = strPtr("morning") }, "route_start_time"},
		{"zero max hours", func(r *RunRequest) { r.MaxHoursPerDriver = floatPtr(0) }, "max_hours_per_driver"},
		{"negative max hours", func(r *RunRequest) { r.MaxHoursPerDriver = floatPtr(-1) }, "max_hours_per_driver"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(&req)

			_, err := req.Validate()

			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.wantField, invalid.Field)
			assert.NotEmpty(t, invalid.Rule)
		})
	}
}
