package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fumiya-dev/entrymarket-go/dto"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/response"
	"github.com/fumiya-dev/entrymarket-go/services"
	"github.com/fumiya-dev/entrymarket-go/utils"
	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{svc: svc}
}

// CreateEntry godoc
// @Summary Apply to a project (or re-apply after withdrawing)
// @Tags entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateEntryDTO true "Application info"
// @Success 201 {object} models.Entry
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Entry already reviewed"
// @Router /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var input dto.CreateEntryDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var entryDate *time.Time
	if input.EntryDate != nil && *input.EntryDate != "" {
		t, err := time.Parse(time.RFC3339, *input.EntryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid entry_date"})
			return
		}
		entryDate = &t
	}

	entry, err := h.svc.ApplyOrReactivate(c, input.PID, uid, entryDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "project not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateEntryStatus godoc
// @Summary Change an entry's status (withdraw, re-apply, approve, reject)
// @Tags entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.UpdateEntryStatusDTO true "Target status"
// @Success 200 {object} models.Entry
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Entry not found"
// @Failure 409 {object} response.ErrorResponse "Invalid transition"
// @Router /entries [put]
func (h *EntryHandler) UpdateEntryStatus(c *gin.Context) {
	var input dto.UpdateEntryStatusDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	role := utils.RoleFromClaims(claims)
	if role != models.UserRoleAdmin {
		// Regular users may only operate on their own entry.
		input.UID = claims.UserID
	}

	entry, err := h.svc.Transition(c, input.PID, input.UID, models.EntryStatus(input.Status), role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "entry not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// FindEntry godoc
// @Summary Get the entry for a (project, user) pair
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param p_id query uint true "Project ID"
// @Param u_id query uint false "User ID (admin only; others always read their own)"
// @Success 200 {object} models.Entry "null when no application exists"
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /entries/find [get]
func (h *EntryHandler) FindEntry(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	pid, err := utils.ParseQueryUintParam(c, "p_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid p_id"})
		return
	}

	// Regular users may only read their own entry.
	uid := claims.UserID
	if claims.IsAdmin {
		if qid, err := utils.ParseQueryUintParam(c, "u_id"); err == nil {
			uid = qid
		} else if !errors.Is(err, utils.ErrEmptyParameter) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid u_id"})
			return
		}
	}

	entry, err := h.svc.Find(pid, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	// Absence is a valid result, rendered as null rather than 404.
	c.JSON(http.StatusOK, entry)
}

// ListEntries godoc
// @Summary List entries, newest application first
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED, WITHDRAWN)
// @Param u_id query uint false "Filter by user (admin only; others see their own)"
// @Param p_id query uint false "Filter by project"
// @Success 200 {array} models.Entry
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var filter repositories.EntryFilter

	if raw := c.Query("status"); raw != "" {
		status := models.EntryStatus(raw)
		if !models.ValidEntryStatus(status) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid status"})
			return
		}
		filter.Status = &status
	}

	if uid, err := utils.ParseQueryUintParam(c, "u_id"); err == nil {
		filter.UID = &uid
	} else if !errors.Is(err, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid u_id"})
		return
	}

	if pid, err := utils.ParseQueryUintParam(c, "p_id"); err == nil {
		filter.PID = &pid
	} else if !errors.Is(err, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid p_id"})
		return
	}

	if !claims.IsAdmin {
		filter.UID = &claims.UserID
	}

	entries, err := h.svc.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteEntry godoc
// @Summary Remove an entry outright (administrative cleanup)
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param p_id query uint true "Project ID"
// @Param u_id query uint true "User ID"
// @Success 200 {object} response.MessageResponse "Entry deleted"
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Entry not found"
// @Router /entries [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	pid, err := utils.ParseQueryUintParam(c, "p_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid p_id"})
		return
	}
	uid, err := utils.ParseQueryUintParam(c, "u_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid u_id"})
		return
	}

	if err := h.svc.Delete(c, pid, uid); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "entry not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "entry deleted"})
}
