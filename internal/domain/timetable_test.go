package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLunchHour(t *testing.T) {
	config := &TimetableConfig{
		DaysPerWeek:        5,
		HoursPerDay:        7,
		LunchBreakStart:    3,
		LunchBreakDuration: 2,
	}

	assert.False(t, config.IsLunchHour(2))
	assert.True(t, config.IsLunchHour(3))
	assert.True(t, config.IsLunchHour(4))
	assert.False(t, config.IsLunchHour(5))

	// 午休持续为 0 时窗口为空
	noLunch := &TimetableConfig{DaysPerWeek: 5, HoursPerDay: 7}
	assert.False(t, noLunch.IsLunchHour(0))
}

func TestBuildOccupancyViews(t *testing.T) {
	timetable := &Timetable{
		Entries: []TimetableEntry{
			{Day: 0, Hour: 0, SubjectName: "数据结构", Faculty: "陈老师", Room: "东教学楼201"},
			{Day: 0, Hour: 1, SubjectName: "操作系统", Faculty: "李老师", Room: "东教学楼201"},
			{Day: 1, Hour: 0, SubjectName: "数据结构", Faculty: "陈老师", Room: "东教学楼201"},
		},
	}

	timetable.BuildOccupancyViews()

	assert.Equal(t, []TimeSlot{{Day: 0, Hour: 0}, {Day: 1, Hour: 0}}, timetable.FacultyOccupancy["陈老师"])
	assert.Equal(t, []TimeSlot{{Day: 0, Hour: 1}}, timetable.FacultyOccupancy["李老师"])
	assert.Len(t, timetable.RoomOccupancy["东教学楼201"], 3)
}
