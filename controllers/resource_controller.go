package controllers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-console/export"
	"hotel-console/middleware"
	"hotel-console/models"
	"hotel-console/services"
	"hotel-console/storage"
	"hotel-console/utils"
)

// Resource is the service behind one management screen.
type Resource[V any] interface {
	List(ctx context.Context, f services.ListFilter) []V
	Get(ctx context.Context, id string) (V, error)
	Create(ctx context.Context, sess *models.Session, form services.Form) (V, error)
	Update(ctx context.Context, sess *models.Session, id string, form services.Form) (V, error)
	Delete(ctx context.Context, sess *models.Session, id string) error
	Export() (basename, title string, cols []export.Column)
}

type ResourceController[V any] struct {
	Svc Resource[V]
	log *slog.Logger
	now func() time.Time
}

func NewResourceController[V any](svc Resource[V], log *slog.Logger) *ResourceController[V] {
	return &ResourceController[V]{Svc: svc, log: log, now: time.Now}
}

// GET /api/<entity>?q=&status=&type=
func (rc *ResourceController[V]) List(c *gin.Context) {
	var f services.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.Svc.List(c.Request.Context(), f))
}

// GET /api/<entity>/:id
func (rc *ResourceController[V]) Get(c *gin.Context) {
	item, err := rc.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

// POST /api/<entity>
func (rc *ResourceController[V]) Create(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	item, err := rc.Svc.Create(c.Request.Context(), middleware.CurrentSession(c), form)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

// PUT /api/<entity>/:id
func (rc *ResourceController[V]) Update(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}
	item, err := rc.Svc.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), form)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

// DELETE /api/<entity>/:id
func (rc *ResourceController[V]) Delete(c *gin.Context) {
	if err := rc.Svc.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		rc.fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GET /api/<entity>/export.csv
func (rc *ResourceController[V]) ExportCSV(c *gin.Context) {
	rc.export(c, "csv", "text/csv; charset=utf-8", func(w io.Writer, _ string, recs []map[string]any, cols []export.Column) error {
		return export.WriteCSV(w, recs, cols)
	})
}

// GET /api/<entity>/export.pdf
func (rc *ResourceController[V]) ExportPDF(c *gin.Context) {
	rc.export(c, "pdf", "application/pdf", func(w io.Writer, title string, recs []map[string]any, cols []export.Column) error {
		return export.WritePDF(w, title, recs, cols, rc.now())
	})
}

type writeFunc func(w io.Writer, title string, recs []map[string]any, cols []export.Column) error

func (rc *ResourceController[V]) export(c *gin.Context, ext, contentType string, write writeFunc) {
	var f services.ListFilter
	_ = c.ShouldBindQuery(&f)

	items := rc.Svc.List(c.Request.Context(), f)
	if len(items) == 0 {
		utils.JSONError(c, http.StatusNotFound, export.ErrNoData.Error())
		return
	}
	recs := make([]map[string]any, 0, len(items))
	for _, it := range items {
		fields, err := storage.ToFields(it)
		if err != nil {
			rc.fail(c, err)
			return
		}
		recs = append(recs, fields)
	}

	base, title, cols := rc.Svc.Export()
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(base, ext, rc.now())+`"`)
	c.Status(http.StatusOK)
	if err := write(c.Writer, title, recs, cols); err != nil {
		rc.log.Error("export failed", slog.String("format", ext), slog.Any("error", err))
	}
}

func (rc *ResourceController[V]) fail(c *gin.Context, err error) {
	respondError(c, rc.log, err)
}

func bindForm(c *gin.Context) (services.Form, bool) {
	var form services.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return nil, false
	}
	return form, true
}

func respondError(c *gin.Context, log *slog.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONInvalid(c, verr.Errors)
	case errors.Is(err, storage.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrAccessDenied):
		utils.JSONError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, storage.ErrUnknownField):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", slog.String("path", c.FullPath()), slog.Any("error", err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
