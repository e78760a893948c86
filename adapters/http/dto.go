package http

import (
	"github.com/khoahotran/portfolio-builder/internal/application/wizard"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

// Patch requests carry only the fields the client changed. A nil pointer
// leaves the field as it is.

type PersonalInfoPatch struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

func (p PersonalInfoPatch) Updates() []portfolio.PersonalInfoUpdate {
	var out []portfolio.PersonalInfoUpdate
	if p.Name != nil {
		out = append(out, portfolio.PersonalName(*p.Name))
	}
	if p.Title != nil {
		out = append(out, portfolio.PersonalTitle(*p.Title))
	}
	if p.Bio != nil {
		out = append(out, portfolio.PersonalBio(*p.Bio))
	}
	if p.Email != nil {
		out = append(out, portfolio.PersonalEmail(*p.Email))
	}
	if p.Phone != nil {
		out = append(out, portfolio.PersonalPhone(*p.Phone))
	}
	if p.Location != nil {
		out = append(out, portfolio.PersonalLocation(*p.Location))
	}
	if p.ProfileImage != nil {
		out = append(out, portfolio.PersonalProfileImage(*p.ProfileImage))
	}
	return out
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     *bool     `json:"featured"`
}

func (p ProjectPatch) Updates() []portfolio.ProjectUpdate {
	var out []portfolio.ProjectUpdate
	if p.Title != nil {
		out = append(out, portfolio.ProjectTitle(*p.Title))
	}
	if p.Description != nil {
		out = append(out, portfolio.ProjectDescription(*p.Description))
	}
	if p.Image != nil {
		out = append(out, portfolio.ProjectImage(*p.Image))
	}
	if p.Technologies != nil {
		out = append(out, portfolio.ProjectTechnologies(portfolio.UniqueStrings(*p.Technologies)))
	}
	if p.LiveURL != nil {
		out = append(out, portfolio.ProjectLiveURL(*p.LiveURL))
	}
	if p.GithubURL != nil {
		out = append(out, portfolio.ProjectGithubURL(*p.GithubURL))
	}
	if p.Featured != nil {
		out = append(out, portfolio.ProjectFeatured(*p.Featured))
	}
	return out
}

type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	Current     *bool   `json:"current"`
}

func (p ExperiencePatch) Updates() []portfolio.ExperienceUpdate {
	var out []portfolio.ExperienceUpdate
	if p.Company != nil {
		out = append(out, portfolio.ExperienceCompany(*p.Company))
	}
	if p.Position != nil {
		out = append(out, portfolio.ExperiencePosition(*p.Position))
	}
	if p.Duration != nil {
		out = append(out, portfolio.ExperienceDuration(*p.Duration))
	}
	if p.Description != nil {
		out = append(out, portfolio.ExperienceDescription(*p.Description))
	}
	if p.Current != nil {
		out = append(out, portfolio.ExperienceCurrent(*p.Current))
	}
	return out
}

type SocialPatch struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Website  *string `json:"website"`
}

func (p SocialPatch) Updates() []portfolio.SocialUpdate {
	var out []portfolio.SocialUpdate
	if p.Github != nil {
		out = append(out, portfolio.SocialGithub(*p.Github))
	}
	if p.Linkedin != nil {
		out = append(out, portfolio.SocialLinkedin(*p.Linkedin))
	}
	if p.Twitter != nil {
		out = append(out, portfolio.SocialTwitter(*p.Twitter))
	}
	if p.Website != nil {
		out = append(out, portfolio.SocialWebsite(*p.Website))
	}
	return out
}

type TestimonialPatch struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Company *string `json:"company"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

func (p TestimonialPatch) Updates() []portfolio.TestimonialUpdate {
	var out []portfolio.TestimonialUpdate
	if p.Name != nil {
		out = append(out, portfolio.TestimonialName(*p.Name))
	}
	if p.Role != nil {
		out = append(out, portfolio.TestimonialRole(*p.Role))
	}
	if p.Company != nil {
		out = append(out, portfolio.TestimonialCompany(*p.Company))
	}
	if p.Content != nil {
		out = append(out, portfolio.TestimonialContent(*p.Content))
	}
	if p.Image != nil {
		out = append(out, portfolio.TestimonialImage(*p.Image))
	}
	return out
}

// ValueRequest adds one skill or technology. Blank values are accepted and
// ignored by the editors.
type ValueRequest struct {
	Value string `json:"value"`
}

// RemoveValueQuery names the skill or technology to remove. It travels in the
// query string because values may contain "/".
type RemoveValueQuery struct {
	Value string `form:"value" binding:"required"`
}

type JumpRequest struct {
	Step *int `json:"step" binding:"required"`
}

// Responses

type WizardDTO struct {
	Current  int           `json:"current"`
	Total    int           `json:"total"`
	Progress float64       `json:"progress"`
	Step     wizard.Step   `json:"step"`
	Steps    []wizard.Step `json:"steps"`
}

func ToWizardDTO(c *wizard.Controller) WizardDTO {
	return WizardDTO{
		Current:  c.CurrentStep(),
		Total:    c.StepCount(),
		Progress: c.Progress(),
		Step:     c.Step(),
		Steps:    c.Steps(),
	}
}

type ExperienceStepDTO struct {
	Experience portfolio.Experiences `json:"experience"`
	Skills     portfolio.Skills      `json:"skills"`
}

type ContactStepDTO struct {
	Social       portfolio.SocialLinks  `json:"social"`
	Testimonials portfolio.Testimonials `json:"testimonials"`
}

type PortfolioDTO struct {
	Data    portfolio.Record `json:"data"`
	HasData bool             `json:"has_data"`
	Status  string           `json:"load_status"`
}
