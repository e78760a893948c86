package wizard

import (
	"slices"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

type Step struct {
	Index       int                    `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Sections    []portfolio.SectionKey `json:"sections"`
}

func (s Step) Governs(key portfolio.SectionKey) bool {
	return slices.Contains(s.Sections, key)
}

const (
	StepPersonalInfo = 1
	StepProjects     = 2
	StepExperience   = 3
	StepContact      = 4
)

// Steps is the fixed wizard sequence. Contact info has no step of its own.
var Steps = []Step{
	{
		Index:       StepPersonalInfo,
		Title:       "Personal Info",
		Description: "Basic information about you",
		Sections:    []portfolio.SectionKey{portfolio.SectionPersonalInfo},
	},
	{
		Index:       StepProjects,
		Title:       "Projects",
		Description: "Your best work and projects",
		Sections:    []portfolio.SectionKey{portfolio.SectionProjects},
	},
	{
		Index:       StepExperience,
		Title:       "Experience",
		Description: "Work experience and skills",
		Sections:    []portfolio.SectionKey{portfolio.SectionExperience, portfolio.SectionSkills},
	},
	{
		Index:       StepContact,
		Title:       "Contact",
		Description: "How people can reach you",
		Sections:    []portfolio.SectionKey{portfolio.SectionSocial, portfolio.SectionTestimonials},
	},
}
