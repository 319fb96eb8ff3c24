package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/repository"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/utils"
)

// 一套手工整理的示例课程，排在标准的 5 天 x 7 课时、午休 1 课时的课表里刚好排得下
var sampleSubjects = []domain.Subject{
	{Name: "数据结构", Code: "SJJG101", Faculty: "陈老师", Room: "东教学楼201", HoursPerWeek: 4, IsLab: false},
	{Name: "操作系统", Code: "CZXT201", Faculty: "李老师", Room: "东教学楼201", HoursPerWeek: 4, IsLab: false},
	{Name: "计算机网络", Code: "JSJWL202", Faculty: "王老师", Room: "西教学楼305", HoursPerWeek: 3, IsLab: false},
	{Name: "离散数学", Code: "LSSX102", Faculty: "张老师", Room: "西教学楼305", HoursPerWeek: 3, IsLab: false},
	{Name: "数据结构实验", Code: "SJJG111", Faculty: "陈老师", Room: "实验楼403", HoursPerWeek: 3, IsLab: true},
	{Name: "计算机网络实验", Code: "JSJWL212", Faculty: "王老师", Room: "实验楼403", HoursPerWeek: 3, IsLab: true},
}

// InsertSampleSubjects 插入示例课程，用于快速体验排课流程
func InsertSampleSubjects(repo *repository.Repository) {
	for i := range sampleSubjects {
		subject := sampleSubjects[i]
		if err := repo.CreateSubject(&subject); err != nil {
			slog.Error("插入示例课程失败", "name", subject.Name, "error", err)
			continue
		}
		slog.Info("插入示例课程成功", "name", subject.Name, "id", subject.ID)
	}
}

// InsertRandomSubjects 插入 n 门随机课程
func InsertRandomSubjects(repo *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		subject := utils.GenerateRandomSubject()
		if err := repo.CreateSubject(subject); err != nil {
			slog.Error("插入随机课程失败", "name", subject.Name, "error", err)
			continue
		}
		slog.Info("插入随机课程成功", "name", subject.Name, "id", subject.ID)
	}
}
