package domain

import "time"

// Subject: 一门课程（或实验课）的开课信息
type Subject struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Faculty      string    `json:"faculty"`
	Room         string    `json:"room"`
	HoursPerWeek int32     `json:"hoursPerWeek"`
	IsLab        bool      `json:"isLab"` // 实验课需要连续 3 个课时
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
