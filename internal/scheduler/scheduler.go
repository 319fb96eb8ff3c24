package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/utils"
)

type Scheduler struct {
	parameters *Parameters
	config     *domain.TimetableConfig
	subjects   []*domain.Subject
	rng        *rand.Rand // 所有随机数都从这里来，注入固定种子即可复现整次排课
	// 预先算好的所有非午休格子，随机初始化时从中抽取
	nonLunchSlots []slotKey
}

// New 创建一个排课器，所有的配置错误都在这里被发现，开始搜索之后不会再失败
// rng 传 nil 时使用当前时间作为种子
func New(parameters *Parameters, config *domain.TimetableConfig, subjects []*domain.Subject, rng *rand.Rand) (*Scheduler, error) {
	if parameters == nil {
		parameters = DefaultParameters()
	}

	if err := validateParameters(parameters); err != nil {
		return nil, err
	}
	if err := utils.ValidateTimetableConfig(config); err != nil {
		return nil, err
	}
	if err := utils.ValidateSubjects(subjects); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Scheduler{
		parameters: parameters,
		config:     config,
		subjects:   subjects,
		rng:        rng,
	}

	for day := int32(0); day < config.DaysPerWeek; day++ {
		for hour := int32(0); hour < config.HoursPerDay; hour++ {
			if !config.IsLunchHour(hour) {
				s.nonLunchSlots = append(s.nonLunchSlots, slotKey{day: day, hour: hour})
			}
		}
	}

	return s, nil
}

func validateParameters(parameters *Parameters) error {
	if parameters.PopulationSize < 4 {
		return fmt.Errorf("种群大小不能小于 4（收到 %d），否则无法选出两个不同的父代", parameters.PopulationSize)
	}
	if parameters.MaxGenerations < 1 {
		return fmt.Errorf("最大迭代次数必须为正数（收到 %d）", parameters.MaxGenerations)
	}
	if parameters.MutationRate < 0 || parameters.MutationRate > 1 {
		return fmt.Errorf("变异概率必须在 [0, 1] 之间（收到 %f）", parameters.MutationRate)
	}
	if parameters.MaxPlacementAttempts < 1 {
		return fmt.Errorf("每门课程的最大尝试次数必须为正数（收到 %d）", parameters.MaxPlacementAttempts)
	}
	return nil
}

// Schedule 运行遗传算法并返回找到的最优课表
// 每一代：评估 -> 排序 -> 截断选择前一半作为父代 -> 交叉和变异补齐种群；
// 任何一代出现满分（100）的课表就提前结束；
// 输入过约束时不保证（也不可能）返回无冲突的课表，只保证返回找到的最优解
func (s *Scheduler) Schedule() *domain.Timetable {
	popSize := int(s.parameters.PopulationSize)

	// 生成初始种群
	pop := make([]*Chromosome, popSize)
	for i := 0; i < popSize; i++ {
		pop[i] = s.randomInitChromosome()
	}

	for gen := 0; gen < int(s.parameters.MaxGenerations); gen++ {
		// 评估
		for _, ch := range pop {
			s.calcFitness(ch)
		}

		// 按适应度从高到低排序
		// 这里用稳定排序，分数相同的染色体保持先来后到的顺序
		sort.SliceStable(pop, func(i, j int) bool {
			return pop[i].fitness > pop[j].fitness
		})

		// 已经找到满分课表，提前结束
		if pop[0].fitness == MaxFitness {
			break
		}

		// 截断选择：前一半直接成为父代
		parents := pop[:popSize/2]

		// 交叉和变异补齐剩下的名额
		offspring := make([]*Chromosome, 0, popSize-len(parents))
		for len(offspring) < popSize-len(parents) {
			p1, p2 := s.pickParents(parents)
			child := s.crossover(p1, p2)
			s.mutate(child)
			offspring = append(offspring, child)
		}

		newPop := make([]*Chromosome, 0, popSize)
		newPop = append(newPop, parents...)
		newPop = append(newPop, offspring...)
		pop = newPop
	}

	// 最后一代的子代还没有被评估过，这里统一再评估一遍
	// （calcFitness 是幂等的，对已评估过的染色体不会产生不同的结果）
	for _, ch := range pop {
		s.calcFitness(ch)
	}

	best := pop[0]
	for _, ch := range pop[1:] {
		if ch.fitness > best.fitness {
			best = ch
		}
	}

	return s.buildTimetable(best)
}

// buildTimetable 把最优染色体转换成对外暴露的课表
func (s *Scheduler) buildTimetable(ch *Chromosome) *domain.Timetable {
	timetable := &domain.Timetable{
		Branch:             s.config.Branch,
		Semester:           s.config.Semester,
		Year:               s.config.Year,
		DaysPerWeek:        s.config.DaysPerWeek,
		HoursPerDay:        s.config.HoursPerDay,
		LunchBreakStart:    s.config.LunchBreakStart,
		LunchBreakDuration: s.config.LunchBreakDuration,
		Score:              ch.fitness,
		Entries:            make([]domain.TimetableEntry, 0),
	}

	for day := int32(0); day < s.config.DaysPerWeek; day++ {
		for hour := int32(0); hour < s.config.HoursPerDay; hour++ {
			subject := ch.grid[day][hour]
			if subject == nil {
				continue
			}

			timetable.Entries = append(timetable.Entries, domain.TimetableEntry{
				Day:         day,
				Hour:        hour,
				SubjectID:   subject.ID,
				SubjectName: subject.Name,
				SubjectCode: subject.Code,
				Faculty:     subject.Faculty,
				Room:        subject.Room,
				IsLab:       subject.IsLab,
			})
		}
	}

	timetable.BuildOccupancyViews()

	return timetable
}
