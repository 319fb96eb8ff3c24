package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

func TestFitnessPerfectScheduleScores100(t *testing.T) {
	subject1 := newTestSubject(1, "张老师", "101", 2)
	subject2 := newTestSubject(2, "李老师", "102", 2)
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject1, subject2}, 1)

	ch := newChromosome(s.config)
	ch.assign(0, 0, subject1)
	ch.assign(0, 1, subject1)
	ch.assign(1, 0, subject2)
	ch.assign(1, 1, subject2)

	s.calcFitness(ch)
	assert.Equal(t, int32(MaxFitness), ch.fitness)
	assert.EqualValues(t, 100, MaxFitness)
}

func TestFitnessFacultyConflictCostsExactly30(t *testing.T) {
	subject1 := newTestSubject(1, "张老师", "101", 1)
	subject2 := newTestSubject(2, "张老师", "102", 1) // 共享教师，不共享教室
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject1, subject2}, 1)

	// 无冲突的基准：两门课在不同的格子
	baseline := newChromosome(s.config)
	baseline.assign(0, 0, subject1)
	baseline.assign(1, 0, subject2)
	s.calcFitness(baseline)

	// 绕过 isSlotAvailable 直接把两门课塞进同一个 (day, hour)
	conflicted := newChromosome(s.config)
	conflicted.assign(0, 0, subject1)
	conflicted.assign(0, 0, subject2)
	s.calcFitness(conflicted)

	assert.Equal(t, baseline.fitness-30, conflicted.fitness)
}

func TestFitnessRoomConflictCostsExactly30(t *testing.T) {
	subject1 := newTestSubject(1, "张老师", "101", 1)
	subject2 := newTestSubject(2, "李老师", "101", 1) // 共享教室，不共享教师
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject1, subject2}, 1)

	baseline := newChromosome(s.config)
	baseline.assign(0, 0, subject1)
	baseline.assign(1, 0, subject2)
	s.calcFitness(baseline)

	conflicted := newChromosome(s.config)
	conflicted.assign(0, 0, subject1)
	conflicted.assign(0, 0, subject2)
	s.calcFitness(conflicted)

	assert.Equal(t, baseline.fitness-30, conflicted.fitness)
}

func TestFitnessLunchViolationCosts20PerSlot(t *testing.T) {
	subject := newTestSubject(1, "张老师", "101", 2)
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject}, 1)

	// 午休窗口是 [3, 4)，assign 自己不做检查
	ch := newChromosome(s.config)
	ch.assign(0, 3, subject)
	ch.assign(1, 3, subject)
	s.calcFitness(ch)

	assert.Equal(t, int32(100-2*20), ch.fitness)
}

func TestFitnessLabContinuity(t *testing.T) {
	lab := newTestSubject(1, "张老师", "实验楼403", 3)
	lab.IsLab = true
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{lab}, 1)

	// 排在一天末尾的连排块不受惩罚：只有 (0,4) 落在扫描范围内，
	// 它后面两个课时都是同一门课
	endOfDay := newChromosome(s.config)
	endOfDay.assign(0, 4, lab)
	endOfDay.assign(0, 5, lab)
	endOfDay.assign(0, 6, lab)
	s.calcFitness(endOfDay)
	assert.Equal(t, int32(100), endOfDay.fitness)

	// 连续性规则检查每一个实验课格子的后两个课时，
	// 排在一天开头的块里 (0,1) 和 (0,2) 的后两个课时都不完整，各扣 30
	startOfDay := newChromosome(s.config)
	startOfDay.assign(0, 0, lab)
	startOfDay.assign(0, 1, lab)
	startOfDay.assign(0, 2, lab)
	s.calcFitness(startOfDay)
	assert.Equal(t, int32(100-2*30), startOfDay.fitness)

	// 彻底拆开的块：(0,0)、(0,1)、(0,4) 三个格子全都扣 30
	split := newChromosome(s.config)
	split.assign(0, 0, lab)
	split.assign(0, 1, lab)
	split.assign(0, 4, lab)
	s.calcFitness(split)
	assert.Equal(t, int32(100-3*30), split.fitness)
}

func TestFitnessUnscheduledHoursArePenalized(t *testing.T) {
	subject := newTestSubject(1, "张老师", "101", 3)
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject}, 1)

	// 只排了 3 个课时中的 1 个，缺口 2 个课时
	ch := newChromosome(s.config)
	ch.assign(0, 0, subject)
	s.calcFitness(ch)

	assert.Equal(t, int32(100-2*10), ch.fitness)
}

func TestFitnessNeverGoesNegative(t *testing.T) {
	subjects := make([]*domain.Subject, 0, 10)
	for i := int64(1); i <= 10; i++ {
		subjects = append(subjects, newTestSubject(i, "张老师", "101", 10))
	}
	s := newTestScheduler(t, newTestConfig(), subjects, 1)

	// 10 门课全都没有排，缺口惩罚远超 100 分
	ch := newChromosome(s.config)
	s.calcFitness(ch)

	assert.Equal(t, int32(0), ch.fitness)
}

func TestFitnessIsDeterministicAndIdempotent(t *testing.T) {
	subject1 := newTestSubject(1, "张老师", "101", 2)
	subject2 := newTestSubject(2, "张老师", "102", 1)
	s := newTestScheduler(t, newTestConfig(), []*domain.Subject{subject1, subject2}, 1)

	ch := newChromosome(s.config)
	ch.assign(0, 0, subject1)
	ch.assign(0, 3, subject1) // 一处午休冲突
	ch.assign(2, 1, subject2)

	s.calcFitness(ch)
	first := ch.fitness
	s.calcFitness(ch)
	second := ch.fitness

	assert.Equal(t, first, second)
}
