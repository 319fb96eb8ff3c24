package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSubjectCodeFromName(t *testing.T) {
	code := GenerateSubjectCodeFromName("数据结构")

	assert.True(t, strings.HasPrefix(code, "SJJG"), "代码前缀应该是拼音首字母，实际是 %s", code)
	assert.Len(t, code, len("SJJG")+3)
}

func TestGenerateRandomSubject(t *testing.T) {
	for i := 0; i < 50; i++ {
		subject := GenerateRandomSubject()

		assert.NotEmpty(t, subject.Name)
		assert.NotEmpty(t, subject.Code)
		assert.NotEmpty(t, subject.Faculty)
		assert.NotEmpty(t, subject.Room)

		if subject.IsLab {
			assert.Equal(t, int32(3), subject.HoursPerWeek, "实验课固定一周一个连排块")
			assert.True(t, strings.HasSuffix(subject.Name, "实验"))
		} else {
			assert.GreaterOrEqual(t, subject.HoursPerWeek, int32(2))
			assert.LessOrEqual(t, subject.HoursPerWeek, int32(4))
		}
	}
}
