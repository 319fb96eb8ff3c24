package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/domain"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/utils"
)

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name" validate:"required"`
		Code         string `json:"code" validate:"required"`
		Faculty      string `json:"faculty" validate:"required"`
		Room         string `json:"room" validate:"required"`
		HoursPerWeek int32  `json:"hoursPerWeek" validate:"required,min=1,max=10"`
		IsLab        bool   `json:"isLab"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	subject := &domain.Subject{
		Name:         req.Name,
		Code:         req.Code,
		Faculty:      req.Faculty,
		Room:         req.Room,
		HoursPerWeek: req.HoursPerWeek,
		IsLab:        req.IsLab,
	}

	if err := h.repository.CreateSubject(subject); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "subjects_code_key":
				h.errorResponse(w, r, "课程代码已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "添加课程成功", subject)
}

func (h *Handler) GetAllSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.repository.GetAllSubjects()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有课程成功", subjects)
}

func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subject := r.Context().Value(SubjectCtx).(*domain.Subject)

	h.successResponse(w, r, "获取课程成功", subject)
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	subject := r.Context().Value(SubjectCtx).(*domain.Subject)

	var req struct {
		Name         *string `json:"name"`
		Code         *string `json:"code"`
		Faculty      *string `json:"faculty"`
		Room         *string `json:"room"`
		HoursPerWeek *int32  `json:"hoursPerWeek" validate:"omitempty,min=1,max=10"`
		IsLab        *bool   `json:"isLab"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 将输入的参数解析到 subject 中
	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Faculty != nil {
		subject.Faculty = *req.Faculty
	}
	if req.Room != nil {
		subject.Room = *req.Room
	}
	if req.HoursPerWeek != nil {
		subject.HoursPerWeek = *req.HoursPerWeek
	}
	if req.IsLab != nil {
		subject.IsLab = *req.IsLab
	}

	if err := utils.ValidateSubjects([]*domain.Subject{subject}); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateSubject(subject); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "subjects_code_key":
				h.errorResponse(w, r, "课程代码已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新课程成功", subject)
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	subject := r.Context().Value(SubjectCtx).(*domain.Subject)

	if err := h.repository.DeleteSubject(subject.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除课程成功", nil)
}

func (h *Handler) ResetSubjects(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.DeleteAllSubjects(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已清空所有课程", nil)
}
