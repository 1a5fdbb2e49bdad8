package handlers

import (
	"errors"
	"net/http"

	"github.com/fumiya-dev/entrymarket-go/response"
	"github.com/fumiya-dev/entrymarket-go/services"
	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	svc *services.SkillService
}

func NewSkillHandler(svc *services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// GetSkills godoc
// @Summary List the skill catalog
// @Tags skills
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Skill
// @Router /skills [get]
func (h *SkillHandler) GetSkills(c *gin.Context) {
	skills, err := h.svc.ListSkills()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetSkillByName godoc
// @Summary Look up a skill by name
// @Tags skills
// @Security BearerAuth
// @Produce json
// @Param name query string true "Skill name"
// @Success 200 {object} models.Skill
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Skill not found"
// @Router /skills/find [get]
func (h *SkillHandler) GetSkillByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "name is required"})
		return
	}

	skill, err := h.svc.FindByName(name)
	if err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, skill)
}
