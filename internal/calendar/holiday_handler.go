package calendar

import (
	"net/http"
	"strconv"
	"time"

	calendarerrors "go-leave/internal/calendar/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("calendar.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("holiday request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	year := h.now().UTC().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, calendarerrors.ErrInvalidYear)
			return
		}
		year = parsed
	}

	resp, err := h.service.ListYear(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) WorkingDays(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		h.writeServiceError(c, calendarerrors.ErrInvalidHolidayDate)
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		h.writeServiceError(c, calendarerrors.ErrInvalidHolidayDate)
		return
	}

	days, err := h.service.WorkingDays(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	total := 0
	if !end.Before(start) {
		total = int(end.Sub(start).Hours()/24) + 1
	}
	response.Success(c, http.StatusOK, WorkingDaysResponse{
		StartDate:   start.Format(dateLayout),
		EndDate:     end.Format(dateLayout),
		TotalDays:   total,
		WorkingDays: days,
	}, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Holiday deleted.", nil)
}
