package form

import (
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

// dayForm is the editable state of one day: an open flag plus two time
// inputs.
type dayForm struct {
	isOpen bool
	start  TimeField
	end    TimeField
}

// ScheduleForm is the editable counterpart of an entity.WeeklySchedule. The
// schedule is replaced wholesale on save; closing a day clears its hours for
// good (reopening restores the defaults, not the prior times).
type ScheduleForm struct {
	days map[entity.Weekday]*dayForm
}

// NewScheduleForm starts a form from an existing schedule, or from the
// default weekly pattern when schedule is nil.
func NewScheduleForm(schedule entity.WeeklySchedule) *ScheduleForm {
	if schedule == nil {
		schedule = entity.DefaultWeeklySchedule()
	}

	days := make(map[entity.Weekday]*dayForm, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		hours := schedule[day]
		days[day] = &dayForm{
			isOpen: hours.IsOpen,
			start:  NewTimeField(hours.StartTime),
			end:    NewTimeField(hours.EndTime),
		}
	}

	return &ScheduleForm{days: days}
}

// IsOpen reports whether the day is currently toggled open.
func (f *ScheduleForm) IsOpen(day entity.Weekday) bool {
	return f.days[day].isOpen
}

// SetOpen toggles a day. Opening a day without prior times fills in the
// default 09:00-18:00 hours; closing a day clears both times. This is a
// deliberate one-way reset: closing a day forgets its hours.
func (f *ScheduleForm) SetOpen(day entity.Weekday, open bool) {
	d := f.days[day]
	d.isOpen = open

	if !open {
		d.start.Reset("")
		d.end.Reset("")

		return
	}

	if d.start.Committed() == "" {
		d.start.Reset(entity.DefaultOpenTime)
	}
	if d.end.Committed() == "" {
		d.end.Reset(entity.DefaultCloseTime)
	}
}

// TypeStart feeds raw input into the start-time field of a day.
func (f *ScheduleForm) TypeStart(day entity.Weekday, raw string) {
	f.days[day].start.Type(raw)
}

// TypeEnd feeds raw input into the end-time field of a day.
func (f *ScheduleForm) TypeEnd(day entity.Weekday, raw string) {
	f.days[day].end.Type(raw)
}

// LiveStart returns the in-progress start-time display value of a day.
func (f *ScheduleForm) LiveStart(day entity.Weekday) string {
	return f.days[day].start.Live()
}

// LiveEnd returns the in-progress end-time display value of a day.
func (f *ScheduleForm) LiveEnd(day entity.Weekday) string {
	return f.days[day].end.Live()
}

// Schedule materializes the committed state of the form into a weekly
// schedule. It fails when any open day is missing a committed time.
func (f *ScheduleForm) Schedule() (entity.WeeklySchedule, error) {
	schedule := make(entity.WeeklySchedule, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		d := f.days[day]
		if !d.isOpen {
			schedule[day] = entity.DaySchedule{IsOpen: false}

			continue
		}

		if d.start.Committed() == "" || d.end.Committed() == "" {
			return nil, errors.Errorf("%s is open but its hours are incomplete", day)
		}

		schedule[day] = entity.DaySchedule{
			IsOpen:    true,
			StartTime: d.start.Committed(),
			EndTime:   d.end.Committed(),
		}
	}

	return schedule, nil
}
