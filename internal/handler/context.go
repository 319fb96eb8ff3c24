package handler

type ContextKey string

var (
	SubjectCtx   ContextKey = "subject"
	TimetableCtx ContextKey = "timetable"
)
