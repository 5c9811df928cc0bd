package entity

import (
	"regexp"

	"github.com/pkg/errors"
)

// Weekday identifies one of the seven fixed day keys in a weekly schedule.
type Weekday string

// The seven day keys, in display order.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every day key in display order. Maps do not preserve order,
// so anything rendering or serializing a schedule iterates over this slice.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Default working hours applied when a day is opened without prior times.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// timeOfDayPattern accepts 24-hour HH:MM with hour 00-23 and minute 00-59.
var timeOfDayPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidTimeOfDay reports whether s is a well-formed 24-hour HH:MM string.
func ValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// DaySchedule describes a single day of a weekly schedule. When IsOpen is
// true both times must be valid HH:MM strings; when it is false both must be
// empty.
type DaySchedule struct {
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// WeeklySchedule maps each day key to its working hours. A schedule is always
// replaced wholesale, never merged day by day.
type WeeklySchedule map[Weekday]DaySchedule

// DefaultWeeklySchedule returns the schedule used when no prior schedule
// exists: Monday through Friday open 09:00-18:00, weekends closed.
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		switch day {
		case Saturday, Sunday:
			schedule[day] = DaySchedule{IsOpen: false}
		default:
			schedule[day] = DaySchedule{
				IsOpen:    true,
				StartTime: DefaultOpenTime,
				EndTime:   DefaultCloseTime,
			}
		}
	}

	return schedule
}

// Validate checks the schedule invariant: every open day carries two valid
// HH:MM times and every closed day carries none. Unknown day keys are
// rejected as well.
func (s WeeklySchedule) Validate() error {
	known := make(map[Weekday]bool, len(Weekdays))
	for _, day := range Weekdays {
		known[day] = true
	}

	for day, hours := range s {
		if !known[day] {
			return errors.Errorf("unknown day key %q", day)
		}

		if !hours.IsOpen {
			if hours.StartTime != "" || hours.EndTime != "" {
				return errors.Errorf("%s is closed but still has times set", day)
			}

			continue
		}

		if !ValidTimeOfDay(hours.StartTime) {
			return errors.Errorf("%s has invalid start time %q", day, hours.StartTime)
		}
		if !ValidTimeOfDay(hours.EndTime) {
			return errors.Errorf("%s has invalid end time %q", day, hours.EndTime)
		}
	}

	return nil
}

// Clone returns an independent copy of the schedule.
func (s WeeklySchedule) Clone() WeeklySchedule {
	if s == nil {
		return nil
	}

	clone := make(WeeklySchedule, len(s))
	for day, hours := range s {
		clone[day] = hours
	}

	return clone
}
