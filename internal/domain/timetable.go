package domain

import "time"

// TimetableConfig: 一周课表的形状参数，创建后不可变
type TimetableConfig struct {
	DaysPerWeek        int32  `json:"daysPerWeek"`
	HoursPerDay        int32  `json:"hoursPerDay"`
	LunchBreakStart    int32  `json:"lunchBreakStart"`    // 从 0 开始计数的课时下标
	LunchBreakDuration int32  `json:"lunchBreakDuration"` // 午休持续的课时数
	Branch             string `json:"branch"`
	Semester           int32  `json:"semester"`
	Year               int32  `json:"year"`
}

// IsLunchHour 判断某个课时是否落在午休窗口 [start, start+duration) 内
func (c *TimetableConfig) IsLunchHour(hour int32) bool {
	return hour >= c.LunchBreakStart && hour < c.LunchBreakStart+c.LunchBreakDuration
}

type TimeSlot struct {
	Day  int32 `json:"day"`
	Hour int32 `json:"hour"`
}

// TimetableEntry: 课表中一个被占用的格子，冗余了课程信息方便前端直接渲染
type TimetableEntry struct {
	Day         int32  `json:"day"`
	Hour        int32  `json:"hour"`
	SubjectID   int64  `json:"subjectID"`
	SubjectName string `json:"subjectName"`
	SubjectCode string `json:"subjectCode"`
	Faculty     string `json:"faculty"`
	Room        string `json:"room"`
	IsLab       bool   `json:"isLab"`
}

type Timetable struct {
	ID                 int64                 `json:"id"`
	Branch             string                `json:"branch"`
	Semester           int32                 `json:"semester"`
	Year               int32                 `json:"year"`
	DaysPerWeek        int32                 `json:"daysPerWeek"`
	HoursPerDay        int32                 `json:"hoursPerDay"`
	LunchBreakStart    int32                 `json:"lunchBreakStart"`
	LunchBreakDuration int32                 `json:"lunchBreakDuration"`
	Score              int32                 `json:"score"`
	Entries            []TimetableEntry      `json:"entries"`
	FacultyOccupancy   map[string][]TimeSlot `json:"facultyOccupancy,omitempty"`
	RoomOccupancy      map[string][]TimeSlot `json:"roomOccupancy,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	Version            int32                 `json:"-"`
}

// BuildOccupancyViews 根据 Entries 重新计算教师和教室的占用视图
// （从数据库中读出来的课表没有这两个视图，需要调用这个方法补上）
func (t *Timetable) BuildOccupancyViews() {
	t.FacultyOccupancy = make(map[string][]TimeSlot)
	t.RoomOccupancy = make(map[string][]TimeSlot)

	for _, entry := range t.Entries {
		slot := TimeSlot{Day: entry.Day, Hour: entry.Hour}
		t.FacultyOccupancy[entry.Faculty] = append(t.FacultyOccupancy[entry.Faculty], slot)
		t.RoomOccupancy[entry.Room] = append(t.RoomOccupancy[entry.Room], slot)
	}
}
