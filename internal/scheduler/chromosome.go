package scheduler

import "github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"

func newChromosome(config *domain.TimetableConfig) *Chromosome {
	grid := make([][]*domain.Subject, config.DaysPerWeek)
	for day := range grid {
		grid[day] = make([]*domain.Subject, config.HoursPerDay)
	}

	return &Chromosome{
		genes:        make([]*gene, 0),
		grid:         grid,
		facultySlots: make(map[string]map[slotKey]bool),
		roomSlots:    make(map[string]map[slotKey]bool),
	}
}

// isSlotAvailable 检查课程 subject 能否被安排到 (day, hour)
// 注意这里只基于占用索引检查教师和教室，不检查这个格子是否已经被
// 另一门毫不相干的课程占用，网格层面的重复占用由适应度函数兜底
func (s *Scheduler) isSlotAvailable(ch *Chromosome, day int32, hour int32, subject *domain.Subject) bool {
	key := slotKey{day: day, hour: hour}

	if ch.facultySlots[subject.Faculty][key] {
		return false
	}
	if ch.roomSlots[subject.Room][key] {
		return false
	}
	if s.config.IsLunchHour(hour) {
		return false
	}

	return true
}

// assign 将课程安排到 (day, hour)：写入网格、追加基因并更新两个占用索引
// 这里不做任何冲突检查，调用方必须先用 isSlotAvailable 校验
func (ch *Chromosome) assign(day int32, hour int32, subject *domain.Subject) {
	key := slotKey{day: day, hour: hour}

	ch.grid[day][hour] = subject
	ch.genes = append(ch.genes, &gene{day: day, hour: hour, subject: subject})

	if _, exists := ch.facultySlots[subject.Faculty]; !exists {
		ch.facultySlots[subject.Faculty] = make(map[slotKey]bool)
	}
	ch.facultySlots[subject.Faculty][key] = true

	if _, exists := ch.roomSlots[subject.Room]; !exists {
		ch.roomSlots[subject.Room] = make(map[slotKey]bool)
	}
	ch.roomSlots[subject.Room][key] = true
}

// relocate 将课程 subject 的一次安排从 from 移动到 to，增量更新基因和占用索引
// 网格由调用方负责更新（变异交换两个格子时需要先读出两门课程再写回）
func (ch *Chromosome) relocate(subject *domain.Subject, from slotKey, to slotKey) {
	for _, g := range ch.genes {
		if g.day == from.day && g.hour == from.hour && g.subject == subject {
			g.day = to.day
			g.hour = to.hour
			break
		}
	}

	delete(ch.facultySlots[subject.Faculty], from)
	delete(ch.roomSlots[subject.Room], from)

	if _, exists := ch.facultySlots[subject.Faculty]; !exists {
		ch.facultySlots[subject.Faculty] = make(map[slotKey]bool)
	}
	ch.facultySlots[subject.Faculty][to] = true

	if _, exists := ch.roomSlots[subject.Room]; !exists {
		ch.roomSlots[subject.Room] = make(map[slotKey]bool)
	}
	ch.roomSlots[subject.Room][to] = true
}

// rebuildFromGrid 清空基因和两个占用索引，然后扫描整个网格重新派生它们
// 交叉会整块地替换网格，此时一次性重建比增量更新简单得多
func (ch *Chromosome) rebuildFromGrid() {
	ch.genes = make([]*gene, 0, len(ch.genes))
	ch.facultySlots = make(map[string]map[slotKey]bool)
	ch.roomSlots = make(map[string]map[slotKey]bool)

	for day := range ch.grid {
		for hour, subject := range ch.grid[day] {
			if subject == nil {
				continue
			}

			key := slotKey{day: int32(day), hour: int32(hour)}
			ch.genes = append(ch.genes, &gene{day: key.day, hour: key.hour, subject: subject})

			if _, exists := ch.facultySlots[subject.Faculty]; !exists {
				ch.facultySlots[subject.Faculty] = make(map[slotKey]bool)
			}
			ch.facultySlots[subject.Faculty][key] = true

			if _, exists := ch.roomSlots[subject.Room]; !exists {
				ch.roomSlots[subject.Room] = make(map[slotKey]bool)
			}
			ch.roomSlots[subject.Room][key] = true
		}
	}
}

// randomInitChromosome 随机初始化一个染色体
// 这是一个贪心的启发式：每门课程在尝试次数用完之前随机挑选非午休的
// (day, hour) 放置课时，实验课在剩余课时 >= 3 时尝试放置连续 3 个课时的块；
// 尝试次数耗尽后这门课程剩下的课时就不再安排，只会体现为适应度下降
func (s *Scheduler) randomInitChromosome() *Chromosome {
	ch := newChromosome(s.config)

	for _, subject := range s.subjects {
		hoursLeft := subject.HoursPerWeek
		attempts := int32(0)

		for hoursLeft > 0 && attempts < s.parameters.MaxPlacementAttempts {
			attempts++

			day, hour := s.randomNonLunchSlot()

			if subject.IsLab && hoursLeft >= labBlockHours {
				// 实验课需要在同一天内连排 3 个课时
				if hour+labBlockHours-1 >= s.config.HoursPerDay {
					continue
				}

				blockAvailable := true
				for offset := int32(0); offset < labBlockHours; offset++ {
					if !s.isSlotAvailable(ch, day, hour+offset, subject) {
						blockAvailable = false
						break
					}
				}
				if !blockAvailable {
					continue
				}

				for offset := int32(0); offset < labBlockHours; offset++ {
					ch.assign(day, hour+offset, subject)
				}
				hoursLeft -= labBlockHours
			} else {
				if !s.isSlotAvailable(ch, day, hour, subject) {
					continue
				}

				ch.assign(day, hour, subject)
				hoursLeft--
			}
		}
	}

	return ch
}

// randomNonLunchSlot 从所有非午休的格子中等概率地抽取一个 (day, hour)
func (s *Scheduler) randomNonLunchSlot() (int32, int32) {
	slot := s.nonLunchSlots[s.rng.Intn(len(s.nonLunchSlots))]
	return slot.day, slot.hour
}
