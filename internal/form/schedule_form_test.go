package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

func TestNewScheduleForm_Defaults(t *testing.T) {
	f := NewScheduleForm(nil)

	assert.True(t, f.IsOpen(entity.Monday))
	assert.Equal(t, "09:00", f.LiveStart(entity.Monday))
	assert.Equal(t, "18:00", f.LiveEnd(entity.Monday))
	assert.False(t, f.IsOpen(entity.Saturday))
	assert.Empty(t, f.LiveStart(entity.Saturday))
}

func TestNewScheduleForm_FromExisting(t *testing.T) {
	existing := entity.DefaultWeeklySchedule()
	existing[entity.Monday] = entity.DaySchedule{IsOpen: true, StartTime: "07:30", EndTime: "16:00"}
	existing[entity.Saturday] = entity.DaySchedule{IsOpen: true, StartTime: "10:00", EndTime: "14:00"}

	f := NewScheduleForm(existing)

	assert.Equal(t, "07:30", f.LiveStart(entity.Monday))
	assert.Equal(t, "16:00", f.LiveEnd(entity.Monday))
	assert.True(t, f.IsOpen(entity.Saturday))
	assert.Equal(t, "10:00", f.LiveStart(entity.Saturday))
}

func TestScheduleForm_CloseForgetsHours(t *testing.T) {
	f := NewScheduleForm(nil)
	f.TypeStart(entity.Monday, "07:15")
	f.TypeEnd(entity.Monday, "15:45")

	f.SetOpen(entity.Monday, false)
	assert.Empty(t, f.LiveStart(entity.Monday))
	assert.Empty(t, f.LiveEnd(entity.Monday))

	// Reopening restores the defaults, not the typed hours.
	f.SetOpen(entity.Monday, true)
	assert.Equal(t, entity.DefaultOpenTime, f.LiveStart(entity.Monday))
	assert.Equal(t, entity.DefaultCloseTime, f.LiveEnd(entity.Monday))
}

func TestScheduleForm_OpenFillsDefaultsOnlyWhenEmpty(t *testing.T) {
	f := NewScheduleForm(nil)

	f.SetOpen(entity.Sunday, true)
	assert.Equal(t, entity.DefaultOpenTime, f.LiveStart(entity.Sunday))
	assert.Equal(t, entity.DefaultCloseTime, f.LiveEnd(entity.Sunday))

	// A day that already has committed hours keeps them on a redundant open.
	f.TypeStart(entity.Sunday, "11:00")
	f.SetOpen(entity.Sunday, true)
	assert.Equal(t, "11:00", f.LiveStart(entity.Sunday))
}

func TestScheduleForm_Schedule(t *testing.T) {
	f := NewScheduleForm(nil)
	f.SetOpen(entity.Saturday, true)
	f.TypeStart(entity.Saturday, "10:00")
	f.TypeEnd(entity.Saturday, "14:00")

	schedule, err := f.Schedule()
	require.NoError(t, err)
	require.NoError(t, schedule.Validate())

	assert.Equal(t, entity.DaySchedule{IsOpen: true, StartTime: "10:00", EndTime: "14:00"}, schedule[entity.Saturday])
	assert.Equal(t, entity.DaySchedule{IsOpen: false}, schedule[entity.Sunday])
}

func TestScheduleForm_ScheduleRejectsIncompleteOpenDay(t *testing.T) {
	// An open day loaded without hours never had a committed time, and typing
	// only a prefix does not provide one.
	existing := entity.DefaultWeeklySchedule()
	existing[entity.Sunday] = entity.DaySchedule{IsOpen: true}

	f := NewScheduleForm(existing)
	f.TypeStart(entity.Sunday, "10:0")

	_, err := f.Schedule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sunday")
}
