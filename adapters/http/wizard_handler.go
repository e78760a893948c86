package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/application/wizard"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type WizardHandler struct {
	wizard *wizard.Controller
	logger logger.Logger
}

func NewWizardHandler(c *wizard.Controller, log logger.Logger) *WizardHandler {
	return &WizardHandler{wizard: c, logger: log}
}

// respond sends body after an edit. A storage failure does not fail the
// request: the edit is live in memory, so the client gets its result plus a
// warning header.
func respond(c *gin.Context, log logger.Logger, err error, status int, body any) {
	if err != nil {
		if errors.Is(err, wizard.ErrSectionNotInStep) {
			_ = c.Error(apperror.NewInternal("editor wrote outside its step", err))
			return
		}
		log.Warn("Edit applied but not saved", zap.String("path", c.FullPath()), zap.Error(err))
		c.Header(HeaderWarning, "changes could not be saved")
	}
	c.JSON(status, body)
}

func (h *WizardHandler) GetWizard(c *gin.Context) {
	c.JSON(http.StatusOK, ToWizardDTO(h.wizard))
}

func (h *WizardHandler) Next(c *gin.Context) {
	h.wizard.Advance()
	c.JSON(http.StatusOK, ToWizardDTO(h.wizard))
}

func (h *WizardHandler) Prev(c *gin.Context) {
	h.wizard.Retreat()
	c.JSON(http.StatusOK, ToWizardDTO(h.wizard))
}

// JumpTo ignores out-of-range steps and reports the unchanged position.
func (h *WizardHandler) JumpTo(c *gin.Context) {
	var req JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("step must be a number", err))
		return
	}
	h.wizard.JumpTo(*req.Step)
	c.JSON(http.StatusOK, ToWizardDTO(h.wizard))
}

// Step 1

func (h *WizardHandler) GetPersonalInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizard.PersonalInfo().Value())
}

func (h *WizardHandler) PatchPersonalInfo(c *gin.Context) {
	var req PersonalInfoPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid personal info", err))
		return
	}
	ed := h.wizard.PersonalInfo()
	var err error
	if updates := req.Updates(); len(updates) > 0 {
		err = ed.Update(c.Request.Context(), updates...)
	}
	respond(c, h.logger, err, http.StatusOK, ed.Value())
}

// Step 2

func (h *WizardHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizard.Projects().Items())
}

func (h *WizardHandler) AddProject(c *gin.Context) {
	created, err := h.wizard.Projects().Add(c.Request.Context())
	respond(c, h.logger, err, http.StatusCreated, created)
}

func (h *WizardHandler) PatchProject(c *gin.Context) {
	var req ProjectPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid project", err))
		return
	}
	ed := h.wizard.Projects()
	var err error
	if updates := req.Updates(); len(updates) > 0 {
		err = ed.Update(c.Request.Context(), c.Param("id"), updates...)
	}
	respond(c, h.logger, err, http.StatusOK, ed.Items())
}

func (h *WizardHandler) DeleteProject(c *gin.Context) {
	ed := h.wizard.Projects()
	err := ed.Remove(c.Request.Context(), c.Param("id"))
	respond(c, h.logger, err, http.StatusOK, ed.Items())
}

func (h *WizardHandler) AddTechnology(c *gin.Context) {
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid technology", err))
		return
	}
	ed := h.wizard.Projects()
	err := ed.AddTechnology(c.Request.Context(), c.Param("id"), req.Value)
	respond(c, h.logger, err, http.StatusOK, ed.Items())
}

func (h *WizardHandler) RemoveTechnology(c *gin.Context) {
	var req RemoveValueQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("value is required", err))
		return
	}
	ed := h.wizard.Projects()
	err := ed.RemoveTechnology(c.Request.Context(), c.Param("id"), req.Value)
	respond(c, h.logger, err, http.StatusOK, ed.Items())
}

// Step 3

func experienceStep(ed *wizard.ExperienceEditor) ExperienceStepDTO {
	return ExperienceStepDTO{Experience: ed.Items(), Skills: ed.Skills()}
}

func (h *WizardHandler) GetExperience(c *gin.Context) {
	c.JSON(http.StatusOK, experienceStep(h.wizard.Experience()))
}

func (h *WizardHandler) AddExperience(c *gin.Context) {
	created, err := h.wizard.Experience().Add(c.Request.Context())
	respond(c, h.logger, err, http.StatusCreated, created)
}

func (h *WizardHandler) PatchExperience(c *gin.Context) {
	var req ExperiencePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid experience", err))
		return
	}
	ed := h.wizard.Experience()
	var err error
	if updates := req.Updates(); len(updates) > 0 {
		err = ed.Update(c.Request.Context(), c.Param("id"), updates...)
	}
	respond(c, h.logger, err, http.StatusOK, experienceStep(ed))
}

func (h *WizardHandler) DeleteExperience(c *gin.Context) {
	ed := h.wizard.Experience()
	err := ed.Remove(c.Request.Context(), c.Param("id"))
	respond(c, h.logger, err, http.StatusOK, experienceStep(ed))
}

func (h *WizardHandler) AddSkill(c *gin.Context) {
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid skill", err))
		return
	}
	ed := h.wizard.Experience()
	err := ed.AddSkill(c.Request.Context(), req.Value)
	respond(c, h.logger, err, http.StatusOK, experienceStep(ed))
}

func (h *WizardHandler) RemoveSkill(c *gin.Context) {
	var req RemoveValueQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("value is required", err))
		return
	}
	ed := h.wizard.Experience()
	err := ed.RemoveSkill(c.Request.Context(), req.Value)
	respond(c, h.logger, err, http.StatusOK, experienceStep(ed))
}

// Step 4

func contactStep(ed *wizard.ContactEditor) ContactStepDTO {
	return ContactStepDTO{Social: ed.Social(), Testimonials: ed.Testimonials()}
}

func (h *WizardHandler) GetContact(c *gin.Context) {
	c.JSON(http.StatusOK, contactStep(h.wizard.Contact()))
}

func (h *WizardHandler) PatchSocial(c *gin.Context) {
	var req SocialPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid social links", err))
		return
	}
	ed := h.wizard.Contact()
	var err error
	if updates := req.Updates(); len(updates) > 0 {
		err = ed.UpdateSocial(c.Request.Context(), updates...)
	}
	respond(c, h.logger, err, http.StatusOK, contactStep(ed))
}

func (h *WizardHandler) AddTestimonial(c *gin.Context) {
	created, err := h.wizard.Contact().AddTestimonial(c.Request.Context())
	respond(c, h.logger, err, http.StatusCreated, created)
}

func (h *WizardHandler) PatchTestimonial(c *gin.Context) {
	var req TestimonialPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid testimonial", err))
		return
	}
	ed := h.wizard.Contact()
	var err error
	if updates := req.Updates(); len(updates) > 0 {
		err = ed.UpdateTestimonial(c.Request.Context(), c.Param("id"), updates...)
	}
	respond(c, h.logger, err, http.StatusOK, contactStep(ed))
}

func (h *WizardHandler) DeleteTestimonial(c *gin.Context) {
	ed := h.wizard.Contact()
	err := ed.RemoveTestimonial(c.Request.Context(), c.Param("id"))
	respond(c, h.logger, err, http.StatusOK, contactStep(ed))
}
