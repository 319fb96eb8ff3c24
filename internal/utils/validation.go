package utils

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

func ValidateTimetableConfig(config *domain.TimetableConfig) error {
	if config == nil {
		return errors.New("课表配置不能为空")
	}

	if config.DaysPerWeek <= 0 {
		return fmt.Errorf("每周天数必须为正数（收到 %d）", config.DaysPerWeek)
	}
	if config.HoursPerDay <= 0 {
		return fmt.Errorf("每天课时数必须为正数（收到 %d）", config.HoursPerDay)
	}
	if config.LunchBreakStart < 0 {
		return fmt.Errorf("午休开始课时不能为负数（收到 %d）", config.LunchBreakStart)
	}
	if config.LunchBreakDuration < 0 {
		return fmt.Errorf("午休持续课时数不能为负数（收到 %d）", config.LunchBreakDuration)
	}
	if config.LunchBreakStart+config.LunchBreakDuration > config.HoursPerDay {
		return fmt.Errorf("午休窗口 [%d, %d) 超出了每天的课时范围 [0, %d)",
			config.LunchBreakStart, config.LunchBreakStart+config.LunchBreakDuration, config.HoursPerDay)
	}
	if config.LunchBreakDuration >= config.HoursPerDay {
		return errors.New("午休时间占满了全天，没有可以排课的课时")
	}

	return nil
}

func ValidateSubjects(subjects []*domain.Subject) error {
	if len(subjects) == 0 {
		return errors.New("课程列表不能为空")
	}

	for i, subject := range subjects {
		if subject.HoursPerWeek <= 0 {
			return fmt.Errorf("课程 %s 的周课时数必须为正数（收到 %d）", subject.Name, subject.HoursPerWeek)
		}
		if subject.Name == "" {
			return fmt.Errorf("第 %d 门课程的名称不能为空", i+1)
		}
	}

	return nil
}
