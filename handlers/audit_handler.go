package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/response"
	"github.com/fumiya-dev/entrymarket-go/services"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query audit logs (admin only)
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Filter by acting user"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Max rows (default 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := repositories.AuditQueryParams{Limit: 100}

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		params.UserID = &uid
	} else if !errors.Is(err, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
		return
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if action := c.Query("action"); action != "" {
		params.Action = &action
	}

	if raw := c.Query("start_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if raw := c.Query("end_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid limit"})
			return
		}
		params.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid offset"})
			return
		}
		params.Offset = offset
	}

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
