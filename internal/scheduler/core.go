package scheduler

// 单点交叉（以天为粒度）
// 在 [1, daysPerWeek-1] 中随机选择一个分割点，分割点之前的天整天继承
// parent1，其余的天整天继承 parent2，一天之内的格子永远不会被拆开；
// 拼接完成后子代的占用索引已经失效，需要从网格整体重建
func (s *Scheduler) crossover(parent1 *Chromosome, parent2 *Chromosome) *Chromosome {
	child := newChromosome(s.config)

	split := int32(1)
	if s.config.DaysPerWeek > 1 {
		split = int32(s.rng.Intn(int(s.config.DaysPerWeek)-1)) + 1
	}

	for day := int32(0); day < s.config.DaysPerWeek; day++ {
		source := parent1
		if day >= split {
			source = parent2
		}
		copy(child.grid[day], source.grid[day])
	}

	child.rebuildFromGrid()

	return child
}

// 变异
// 以 MutationRate 的概率随机选择两个格子，如果它们被两门不同的课程占用
// 并且交换不会在任何一端引入新的教师或教室冲突，就交换这两个格子；
// 不满足条件时直接放弃，不做重试
func (s *Scheduler) mutate(ch *Chromosome) {
	if s.rng.Float64() >= s.parameters.MutationRate {
		return
	}

	day1 := int32(s.rng.Intn(int(s.config.DaysPerWeek)))
	hour1 := int32(s.rng.Intn(int(s.config.HoursPerDay)))
	day2 := int32(s.rng.Intn(int(s.config.DaysPerWeek)))
	hour2 := int32(s.rng.Intn(int(s.config.HoursPerDay)))

	subject1 := ch.grid[day1][hour1]
	subject2 := ch.grid[day2][hour2]

	if subject1 == nil || subject2 == nil || subject1 == subject2 {
		return
	}

	key1 := slotKey{day: day1, hour: hour1}
	key2 := slotKey{day: day2, hour: hour2}

	// 检查交换是否会在目标位置引入新的冲突
	if ch.facultySlots[subject1.Faculty][key2] || ch.roomSlots[subject1.Room][key2] {
		return
	}
	if ch.facultySlots[subject2.Faculty][key1] || ch.roomSlots[subject2.Room][key1] {
		return
	}

	ch.grid[day1][hour1] = subject2
	ch.grid[day2][hour2] = subject1

	// 变异只动了两个格子，增量更新索引即可，不需要整体重建
	ch.relocate(subject1, key1, key2)
	ch.relocate(subject2, key2, key1)
}

// pickParents 从父代集合中等概率地选出两个互不相同的父代
func (s *Scheduler) pickParents(parents []*Chromosome) (*Chromosome, *Chromosome) {
	i := s.rng.Intn(len(parents))
	j := s.rng.Intn(len(parents) - 1)
	if j >= i {
		j++
	}
	return parents[i], parents[j]
}
