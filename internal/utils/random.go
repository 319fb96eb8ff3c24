package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

var sampleSubjectNames = []string{
	"数据结构", "操作系统", "计算机网络", "离散数学", "概率统计",
	"编译原理", "数据库系统", "软件工程", "算法设计", "计算机组成原理",
	"大学物理", "线性代数", "人工智能导论", "数字逻辑",
}

var sampleBuildings = []string{"东教学楼", "西教学楼", "实验楼", "理科楼"}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// GenerateSubjectCodeFromName 用课程中文名的拼音首字母加随机数字生成课程代码
// 例如 数据结构 -> SJJG101
func GenerateSubjectCodeFromName(name string) string {
	pinyinArray := pinyin.LazyConvert(name, nil)

	code := ""
	for _, p := range pinyinArray {
		code += strings.ToUpper(p[:1])
	}

	return fmt.Sprintf("%s%03d", code, rand.Intn(900)+100)
}

func GenerateRandomRoom() string {
	building := sampleBuildings[rand.Intn(len(sampleBuildings))]
	floor := rand.Intn(5) + 1
	room := rand.Intn(20) + 1
	return fmt.Sprintf("%s%d%02d", building, floor, room)
}

// GenerateRandomSubject 生成一门随机课程，用于往数据库中填充测试数据
func GenerateRandomSubject() *domain.Subject {
	name := sampleSubjectNames[rand.Intn(len(sampleSubjectNames))]
	isLab := rand.Intn(4) == 0 // 大约四分之一的课程是实验课

	hoursPerWeek := int32(rand.Intn(3) + 2) // 2~4
	if isLab {
		hoursPerWeek = 3 // 实验课固定一周一个连排块
	}

	subject := &domain.Subject{
		Name:         name,
		Code:         GenerateSubjectCodeFromName(name),
		Faculty:      GenerateRandomChineseName() + "老师",
		Room:         GenerateRandomRoom(),
		HoursPerWeek: hoursPerWeek,
		IsLab:        isLab,
	}

	if isLab {
		subject.Name += "实验"
	}

	return subject
}
