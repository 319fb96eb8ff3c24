package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/config"
	"github.com/sysu-ecnc-dev/timetable-generator/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 课程相关
	h.Mux.Route("/subjects", func(r chi.Router) {
		r.Post("/", h.CreateSubject)
		r.Get("/", h.GetAllSubjects)
		r.Delete("/", h.ResetSubjects)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.subject)
			r.Get("/", h.GetSubject)
			r.Patch("/", h.UpdateSubject)
			r.Delete("/", h.DeleteSubject)
		})
	})

	// 课表相关
	h.Mux.Route("/timetables", func(r chi.Router) {
		r.Post("/generate", h.GenerateTimetable)
		r.Get("/", h.GetAllTimetables)
		r.Get("/latest", h.GetLatestTimetable)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.timetable)
			r.Get("/", h.GetTimetable)
			r.Delete("/", h.DeleteTimetable)
		})
	})
}
