package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

func TestValidateTimetableConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *domain.TimetableConfig
		wantErr bool
	}{
		{
			name:    "配置为空",
			config:  nil,
			wantErr: true,
		},
		{
			name: "标准配置",
			config: &domain.TimetableConfig{
				DaysPerWeek:        5,
				HoursPerDay:        7,
				LunchBreakStart:    3,
				LunchBreakDuration: 1,
			},
			wantErr: false,
		},
		{
			name: "没有午休",
			config: &domain.TimetableConfig{
				DaysPerWeek:        5,
				HoursPerDay:        4,
				LunchBreakStart:    0,
				LunchBreakDuration: 0,
			},
			wantErr: false,
		},
		{
			name: "每周天数为 0",
			config: &domain.TimetableConfig{
				DaysPerWeek: 0,
				HoursPerDay: 7,
			},
			wantErr: true,
		},
		{
			name: "每天课时数为负数",
			config: &domain.TimetableConfig{
				DaysPerWeek: 5,
				HoursPerDay: -1,
			},
			wantErr: true,
		},
		{
			name: "午休开始课时为负数",
			config: &domain.TimetableConfig{
				DaysPerWeek:        5,
				HoursPerDay:        7,
				LunchBreakStart:    -1,
				LunchBreakDuration: 1,
			},
			wantErr: true,
		},
		{
			name: "午休窗口超出全天范围",
			config: &domain.TimetableConfig{
				DaysPerWeek:        5,
				HoursPerDay:        4,
				LunchBreakStart:    3,
				LunchBreakDuration: 2,
			},
			wantErr: true,
		},
		{
			name: "午休占满全天",
			config: &domain.TimetableConfig{
				DaysPerWeek:        5,
				HoursPerDay:        4,
				LunchBreakStart:    0,
				LunchBreakDuration: 4,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimetableConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSubjects(t *testing.T) {
	tests := []struct {
		name     string
		subjects []*domain.Subject
		wantErr  bool
	}{
		{
			name:     "课程列表为空",
			subjects: nil,
			wantErr:  true,
		},
		{
			name: "正常的课程",
			subjects: []*domain.Subject{
				{Name: "数据结构", Faculty: "陈老师", Room: "101", HoursPerWeek: 4},
				{Name: "数据结构实验", Faculty: "陈老师", Room: "实验楼403", HoursPerWeek: 3, IsLab: true},
			},
			wantErr: false,
		},
		{
			name: "周课时数为 0",
			subjects: []*domain.Subject{
				{Name: "数据结构", Faculty: "陈老师", Room: "101", HoursPerWeek: 0},
			},
			wantErr: true,
		},
		{
			name: "课程名称为空",
			subjects: []*domain.Subject{
				{Name: "", Faculty: "陈老师", Room: "101", HoursPerWeek: 2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubjects(tt.subjects)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
