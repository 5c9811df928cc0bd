package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklySchedule(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.Len(t, schedule, 7)
	require.NoError(t, schedule.Validate())

	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} {
		assert.True(t, schedule[day].IsOpen, "%s should be open", day)
		assert.Equal(t, "09:00", schedule[day].StartTime)
		assert.Equal(t, "18:00", schedule[day].EndTime)
	}

	for _, day := range []Weekday{Saturday, Sunday} {
		assert.False(t, schedule[day].IsOpen, "%s should be closed", day)
		assert.Empty(t, schedule[day].StartTime)
		assert.Empty(t, schedule[day].EndTime)
	}
}

func TestWeeklySchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule WeeklySchedule
		wantErr  bool
	}{
		{
			name:     "valid open day",
			schedule: WeeklySchedule{Monday: {IsOpen: true, StartTime: "09:00", EndTime: "18:00"}},
		},
		{
			name:     "valid closed day",
			schedule: WeeklySchedule{Sunday: {IsOpen: false}},
		},
		{
			name:     "open day missing end time",
			schedule: WeeklySchedule{Monday: {IsOpen: true, StartTime: "09:00"}},
			wantErr:  true,
		},
		{
			name:     "open day with out-of-range hour",
			schedule: WeeklySchedule{Monday: {IsOpen: true, StartTime: "24:00", EndTime: "18:00"}},
			wantErr:  true,
		},
		{
			name:     "open day with out-of-range minute",
			schedule: WeeklySchedule{Monday: {IsOpen: true, StartTime: "09:60", EndTime: "18:00"}},
			wantErr:  true,
		},
		{
			name:     "closed day keeping times",
			schedule: WeeklySchedule{Monday: {IsOpen: false, StartTime: "09:00", EndTime: "18:00"}},
			wantErr:  true,
		},
		{
			name:     "unknown day key",
			schedule: WeeklySchedule{Weekday("funday"): {IsOpen: false}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidTimeOfDay(s), s)
	}

	invalid := []string{"", "9:30", "24:00", "23:60", "99:99", "09-30", "09:300"}
	for _, s := range invalid {
		assert.False(t, ValidTimeOfDay(s), s)
	}
}

func TestWeeklySchedule_Clone(t *testing.T) {
	original := DefaultWeeklySchedule()
	clone := original.Clone()

	clone[Monday] = DaySchedule{IsOpen: false}

	assert.True(t, original[Monday].IsOpen, "mutating the clone must not touch the original")
}
