package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/scheduler"
)

const latestTimetableCacheKey = "timetable_latest"

func (h *Handler) GenerateTimetable(w http.ResponseWriter, r *http.Request) {
	// 获取参数，遗传算法参数可以不传，不传时使用配置中的默认值
	var req struct {
		DaysPerWeek        int32  `json:"daysPerWeek" validate:"required,min=1,max=7"`
		HoursPerDay        int32  `json:"hoursPerDay" validate:"required,min=1,max=12"`
		LunchBreakStart    int32  `json:"lunchBreakStart" validate:"min=0"`
		LunchBreakDuration int32  `json:"lunchBreakDuration" validate:"min=0,max=2"`
		Branch             string `json:"branch" validate:"required"`
		Semester           int32  `json:"semester" validate:"required,min=1,max=8"`
		Year               int32  `json:"year" validate:"required,min=1,max=4"`

		PopulationSize       *int32   `json:"populationSize" validate:"omitempty,min=4"`
		MaxGenerations       *int32   `json:"maxGenerations" validate:"omitempty,min=1"`
		MutationRate         *float64 `json:"mutationRate" validate:"omitempty,min=0,max=1"`
		MaxPlacementAttempts *int32   `json:"maxPlacementAttempts" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 构建参数
	parameters := &scheduler.Parameters{
		PopulationSize:       h.config.Scheduler.PopulationSize,
		MaxGenerations:       h.config.Scheduler.MaxGenerations,
		MutationRate:         h.config.Scheduler.MutationRate,
		MaxPlacementAttempts: h.config.Scheduler.MaxPlacementAttempts,
	}
	if req.PopulationSize != nil {
		parameters.PopulationSize = *req.PopulationSize
	}
	if req.MaxGenerations != nil {
		parameters.MaxGenerations = *req.MaxGenerations
	}
	if req.MutationRate != nil {
		parameters.MutationRate = *req.MutationRate
	}
	if req.MaxPlacementAttempts != nil {
		parameters.MaxPlacementAttempts = *req.MaxPlacementAttempts
	}

	timetableConfig := &domain.TimetableConfig{
		DaysPerWeek:        req.DaysPerWeek,
		HoursPerDay:        req.HoursPerDay,
		LunchBreakStart:    req.LunchBreakStart,
		LunchBreakDuration: req.LunchBreakDuration,
		Branch:             req.Branch,
		Semester:           req.Semester,
		Year:               req.Year,
	}

	// 获取当前的课程列表
	subjects, err := h.repository.GetAllSubjects()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 自动排课
	s, err := scheduler.New(parameters, timetableConfig, subjects, nil)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	timetable := s.Schedule()

	// 保存结果并更新缓存
	if err := h.repository.InsertTimetable(timetable); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.cacheLatestTimetable(r.Context(), timetable)

	// 分数不满分不算错误，只是提醒调用方约束可能过紧
	if timetable.Score < scheduler.MaxFitness {
		h.successResponse(w, r, "未能生成无冲突的完美课表，请检查约束或减少课时", timetable)
		return
	}

	h.successResponse(w, r, "生成课表成功", timetable)
}

func (h *Handler) GetLatestTimetable(w http.ResponseWriter, r *http.Request) {
	// 先查缓存
	cached, err := h.redisClient.Get(r.Context(), latestTimetableCacheKey).Result()
	if err == nil {
		timetable := &domain.Timetable{}
		if err := json.Unmarshal([]byte(cached), timetable); err == nil {
			h.successResponse(w, r, "获取最新课表成功", timetable)
			return
		}
		// 缓存内容损坏时回退到数据库
	} else if !errors.Is(err, redis.Nil) {
		// 缓存读取失败时回退到数据库
		slog.Error("读取最新课表缓存失败", "error", err)
	}

	timetable, err := h.repository.GetLatestTimetable()
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "还没有生成过课表", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	timetable.BuildOccupancyViews()
	h.cacheLatestTimetable(r.Context(), timetable)

	h.successResponse(w, r, "获取最新课表成功", timetable)
}

func (h *Handler) cacheLatestTimetable(ctx context.Context, timetable *domain.Timetable) {
	data, err := json.Marshal(timetable)
	if err != nil {
		return
	}

	// 缓存失败不影响主流程，数据库里始终有完整数据
	expiration := time.Duration(h.config.Redis.CacheExpiration) * time.Second
	_ = h.redisClient.Set(ctx, latestTimetableCacheKey, data, expiration).Err()
}

func (h *Handler) GetAllTimetables(w http.ResponseWriter, r *http.Request) {
	timetables, err := h.repository.GetAllTimetables()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有课表成功", timetables)
}

func (h *Handler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(TimetableCtx).(*domain.Timetable)

	timetable.BuildOccupancyViews()

	h.successResponse(w, r, "获取课表成功", timetable)
}

func (h *Handler) DeleteTimetable(w http.ResponseWriter, r *http.Request) {
	timetable := r.Context().Value(TimetableCtx).(*domain.Timetable)

	if err := h.repository.DeleteTimetable(timetable.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 删除的可能正是缓存中的最新课表，直接让缓存失效
	_ = h.redisClient.Del(r.Context(), latestTimetableCacheKey).Err()

	h.successResponse(w, r, "删除课表成功", nil)
}
