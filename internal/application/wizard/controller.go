// Package wizard sequences the builder's steps and connects each step's
// editor to the store.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/idgen"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var ErrSectionNotInStep = errors.New("section is not governed by this step")

// SectionStore is the slice of the store the wizard needs.
type SectionStore interface {
	Section(key portfolio.SectionKey) portfolio.SectionValue
	UpdateSection(ctx context.Context, v portfolio.SectionValue) error
}

// changeFunc is the onChange callback an editor emits its new section through.
type changeFunc func(ctx context.Context, v portfolio.SectionValue) error

// Controller owns one editor per step for its whole life. Navigation and
// wholesale replaces unmount them: the next call on any handle re-reads the
// store first, so a handle taken earlier never writes back an outdated list.
type Controller struct {
	mu      sync.Mutex
	store   SectionStore
	ids     idgen.Generator
	logger  logger.Logger
	steps   []Step
	current int

	personal   *PersonalInfoEditor
	projects   *ProjectsEditor
	experience *ExperienceEditor
	contact    *ContactEditor
}

func NewController(st SectionStore, ids idgen.Generator, log logger.Logger) *Controller {
	c := &Controller{
		store:   st,
		ids:     ids,
		logger:  log,
		steps:   Steps,
		current: 1,
	}
	c.personal = newPersonalInfoEditor(st, c.commitFor(StepPersonalInfo))
	c.projects = newProjectsEditor(st, ids, c.commitFor(StepProjects))
	c.experience = newExperienceEditor(st, ids, c.commitFor(StepExperience))
	c.contact = newContactEditor(st, ids, c.commitFor(StepContact))
	return c
}

func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) StepCount() int {
	return len(c.steps)
}

// Step returns the metadata of the current step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.current-1]
}

func (c *Controller) Steps() []Step {
	return append([]Step{}, c.steps...)
}

// Progress is the completed fraction, current / count.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.current) / float64(len(c.steps))
}

// Advance moves one step forward; at the last step it does nothing.
func (c *Controller) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current < len(c.steps) {
		c.moveLocked(c.current + 1)
	}
	return c.current
}

// Retreat moves one step back; at the first step it does nothing.
func (c *Controller) Retreat() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current > 1 {
		c.moveLocked(c.current - 1)
	}
	return c.current
}

// JumpTo goes straight to step. Out-of-range values are ignored and false is
// returned.
func (c *Controller) JumpTo(step int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if step < 1 || step > len(c.steps) {
		c.logger.Debug("Ignoring jump to unknown step", zap.Int("step", step))
		return false
	}
	c.moveLocked(step)
	return true
}

// moveLocked changes step and unmounts every editor, so the next access
// mirrors the store again.
func (c *Controller) moveLocked(step int) {
	if step == c.current {
		return
	}
	c.current = step
	c.personal.unmount()
	c.projects.unmount()
	c.experience.unmount()
	c.contact.unmount()
}

// ReplaceSection overwrites one section wholesale. Repeated or blank skills
// and technologies are dropped and list entries with an empty or repeated id
// get a fresh one. The editor mirroring the section is held for the whole
// write, so no edit can land between the write and its unmount.
func (c *Controller) ReplaceSection(ctx context.Context, v portfolio.SectionValue) error {
	v = portfolio.SanitizeSection(v, c.ids.NewID)
	write := func() error { return c.store.UpdateSection(ctx, v) }

	switch v.SectionKey() {
	case portfolio.SectionPersonalInfo:
		return c.personal.replace(write)
	case portfolio.SectionProjects:
		return c.projects.replace(write)
	case portfolio.SectionExperience, portfolio.SectionSkills:
		return c.experience.replace(write)
	case portfolio.SectionSocial, portfolio.SectionTestimonials:
		return c.contact.replace(write)
	}
	return write()
}

// commitFor builds the onChange callback of the editor owning step.
func (c *Controller) commitFor(step int) changeFunc {
	governing := c.steps[step-1]
	return func(ctx context.Context, v portfolio.SectionValue) error {
		if !governing.Governs(v.SectionKey()) {
			return fmt.Errorf("%w: %s in step %d", ErrSectionNotInStep, v.SectionKey(), step)
		}
		return c.store.UpdateSection(ctx, v)
	}
}

func (c *Controller) PersonalInfo() *PersonalInfoEditor { return c.personal }

func (c *Controller) Projects() *ProjectsEditor { return c.projects }

func (c *Controller) Experience() *ExperienceEditor { return c.experience }

func (c *Controller) Contact() *ContactEditor { return c.contact }
