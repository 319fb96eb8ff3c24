package scheduler

import "github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"

// slotKey: (day, hour) 组成的复合键，用于占用索引
type slotKey struct {
	day  int32
	hour int32
}

// gene: 一次课程安排，即课程 subject 占用了 (day, hour) 这个格子
// 基因是按课程独立记录的：两门既不共享教师也不共享教室的课程有可能
// 先后占用同一个格子（网格中只保留后来者），冲突检测以基因序列为准
type gene struct {
	day     int32
	hour    int32
	subject *domain.Subject
}

// Chromosome: 一张候选课表
// grid 是 daysPerWeek × hoursPerDay 的网格，每个格子要么为空要么指向一门课程；
// facultySlots 和 roomSlots 是派生出来的占用索引，
// 每次修改网格之后都必须保持索引和网格一致（见 assign / relocate / rebuildFromGrid）
type Chromosome struct {
	genes        []*gene
	grid         [][]*domain.Subject
	facultySlots map[string]map[slotKey]bool
	roomSlots    map[string]map[slotKey]bool
	fitness      int32 // 缓存的适应度，只有在 calcFitness 之后才有效
}

// 遗传算法参数
type Parameters struct {
	PopulationSize       int32   // 种群大小
	MaxGenerations       int32   // 最大迭代次数
	MutationRate         float64 // 变异概率
	MaxPlacementAttempts int32   // 随机初始化时每门课程的最大尝试次数
}

func DefaultParameters() *Parameters {
	return &Parameters{
		PopulationSize:       50,
		MaxGenerations:       100,
		MutationRate:         0.1,
		MaxPlacementAttempts: 1000,
	}
}

// MaxFitness: 无任何冲突的课表的分数，调用方用它判断结果是否完美
const MaxFitness = 100

const (
	conflictPenalty        = 30 // 教师或教室冲突
	lunchViolationPenalty  = 20 // 占用午休时间
	labContinuityPenalty   = 30 // 实验课不连续
	unscheduledHourPenalty = 10 // 每个未能排入课表的课时
	labBlockHours          = 3  // 实验课一次连排的课时数
)
