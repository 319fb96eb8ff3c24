package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	h, err := NewHandler(&config.Config{}, nil, nil)
	require.NoError(t, err)

	return h
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestSuccessResponse(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/subjects", nil)
	h.successResponse(rec, r, "获取所有课程成功", []string{"数据结构"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "获取所有课程成功", resp.Message)
	assert.NotNil(t, resp.Data)
}

// 业务上的失败也返回 200，由 success 字段区分
func TestErrorResponseUses200(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/subjects/999", nil)
	h.errorResponse(rec, r, "课程不存在")

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "课程不存在", resp.Message)
}

func TestInternalServerErrorUses500(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/timetables/generate", nil)
	h.internalServerError(rec, r, errors.New("数据库连接断开"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	// 内部错误的细节不透出给调用方
	assert.NotContains(t, resp.Message, "数据库")
}

func TestBadRequestTranslatesValidationErrors(t *testing.T) {
	h := newTestHandler(t)

	var req struct {
		Name string `json:"name" validate:"required"`
	}
	err := h.validate.Struct(req)
	require.Error(t, err)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/subjects", nil)
	h.badRequest(rec, r, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	// 校验错误被翻译成中文提示而不是英文的原始信息
	assert.NotEmpty(t, resp.Message)
	assert.NotContains(t, resp.Message, "required")
}

func TestBadRequestPassesThroughPlainErrors(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/subjects", nil)
	h.badRequest(rec, r, errors.New("课程列表不能为空"))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "课程列表不能为空", resp.Message)
}
