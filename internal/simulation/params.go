package simulation

import (
	"regexp"

	"fleetsim-backend/internal/models"
)

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RunRequest is the raw boundary payload of a simulation run. Pointer
// fields distinguish "absent" from "zero" so presence can be validated
// separately from format.
type RunRequest struct {
	AvailableDrivers  *int     `json:"available_drivers"`
	RouteStartTime    *string  `json:"route_start_time"`
	MaxHoursPerDriver *float64 `json:"max_hours_per_driver"`
}

// Validate checks presence first, then format and range, per field. On
// success it returns the typed parameters used for the run.
func (r *RunRequest) Validate() (models.SimulationParameters, error) {
	var missing []string
	if r.AvailableDrivers == nil {
		missing = append(missing, "available_drivers")
	}
	if r.RouteStartTime == nil {
		missing = append(missing, "route_start_time")
	}
	if r.MaxHoursPerDriver == nil {
		missing = append(missing, "max_hours_per_driver")
	}
	if len(missing) > 0 {
		return models.SimulationParameters{}, &MissingParametersError{Missing: missing}
	}

	if *r.AvailableDrivers <= 0 {
		return models.SimulationParameters{}, &InvalidParameterError{
			Field: "available_drivers",
			Rule:  "must be a positive integer",
		}
	}
	if !startTimePattern.MatchString(*r.RouteStartTime) {
		return models.SimulationParameters{}, &InvalidParameterError{
			Field: "route_start_time",
			Rule:  "must be a string in HH:MM format",
		}
	}
	if *r.MaxHoursPerDriver <= 0 {
		return models.SimulationParameters{}, &InvalidParameterError{
			Field: "max_hours_per_driver",
			Rule:  "must be a positive number",
		}
	}

	return models.SimulationParameters{
		AvailableDrivers:  *r.AvailableDrivers,
		RouteStartTime:    *r.RouteStartTime,
		MaxHoursPerDriver: *r.MaxHoursPerDriver,
	}, nil
}
