package scheduler

import "github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"

/**
 * 计算染色体的适应度
 * fitness = 100 - 各项惩罚之和（最低为 0），其中：
 * 		1. 教师冲突：同一个教师在同一个 (day, hour) 出现多于一次，每次多余的出现扣 30 分
 * 		2. 教室冲突：规则和教师冲突一样，每次扣 30 分
 * 		3. 午休冲突：每个被占用的午休格子扣 20 分
 * 		4. 实验课连续性：实验课占用的格子后面两个课时不是同一门课的，每处扣 30 分
 * 		5. 排课缺口：每个没能排进课表的周课时扣 10 分
 * 对相同的网格内容这个函数总是给出相同的分数
 */
func (s *Scheduler) calcFitness(ch *Chromosome) {
	fitness := int32(MaxFitness)

	// 教师冲突和教室冲突
	// 基因是按课程独立记录的，所以这里能发现被网格覆盖掩盖的重复占用
	type occupancyKey struct {
		identifier string
		slot       slotKey
	}

	facultySeen := make(map[occupancyKey]bool)
	roomSeen := make(map[occupancyKey]bool)

	for _, g := range ch.genes {
		slot := slotKey{day: g.day, hour: g.hour}

		facultyKey := occupancyKey{identifier: g.subject.Faculty, slot: slot}
		if facultySeen[facultyKey] {
			fitness -= conflictPenalty
		}
		facultySeen[facultyKey] = true

		roomKey := occupancyKey{identifier: g.subject.Room, slot: slot}
		if roomSeen[roomKey] {
			fitness -= conflictPenalty
		}
		roomSeen[roomKey] = true
	}

	// 午休冲突
	for day := int32(0); day < s.config.DaysPerWeek; day++ {
		for hour := s.config.LunchBreakStart; hour < s.config.LunchBreakStart+s.config.LunchBreakDuration; hour++ {
			if ch.grid[day][hour] != nil {
				fitness -= lunchViolationPenalty
			}
		}
	}

	// 实验课连续性
	for day := int32(0); day < s.config.DaysPerWeek; day++ {
		for hour := int32(0); hour <= s.config.HoursPerDay-labBlockHours; hour++ {
			subject := ch.grid[day][hour]
			if subject == nil || !subject.IsLab {
				continue
			}
			if ch.grid[day][hour+1] != subject || ch.grid[day][hour+2] != subject {
				fitness -= labContinuityPenalty
			}
		}
	}

	// 排课缺口（按基因统计，和冲突检测使用同一份安排记录）
	scheduledHours := make(map[*domain.Subject]int32)
	for _, g := range ch.genes {
		scheduledHours[g.subject]++
	}
	for _, subject := range s.subjects {
		if missing := subject.HoursPerWeek - scheduledHours[subject]; missing > 0 {
			fitness -= missing * unscheduledHourPenalty
		}
	}

	if fitness < 0 {
		fitness = 0
	}

	ch.fitness = fitness
}
