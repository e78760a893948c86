package portfolio

// Typed single-field updates. Each variant replaces exactly one field of its
// entity, so an edit can never name a field that does not exist.

type PersonalInfoUpdate interface {
	Apply(PersonalInfo) PersonalInfo
	personalInfoUpdate()
}

type (
	PersonalName         string
	PersonalTitle        string
	PersonalBio          string
	PersonalEmail        string
	PersonalPhone        string
	PersonalLocation     string
	PersonalProfileImage string
)

func (v PersonalName) Apply(p PersonalInfo) PersonalInfo     { p.Name = string(v); return p }
func (v PersonalTitle) Apply(p PersonalInfo) PersonalInfo    { p.Title = string(v); return p }
func (v PersonalBio) Apply(p PersonalInfo) PersonalInfo      { p.Bio = string(v); return p }
func (v PersonalEmail) Apply(p PersonalInfo) PersonalInfo    { p.Email = string(v); return p }
func (v PersonalPhone) Apply(p PersonalInfo) PersonalInfo    { p.Phone = string(v); return p }
func (v PersonalLocation) Apply(p PersonalInfo) PersonalInfo { p.Location = string(v); return p }
func (v PersonalProfileImage) Apply(p PersonalInfo) PersonalInfo {
	p.ProfileImageURL = string(v)
	return p
}

func (PersonalName) personalInfoUpdate()         {}
func (PersonalTitle) personalInfoUpdate()        {}
func (PersonalBio) personalInfoUpdate()          {}
func (PersonalEmail) personalInfoUpdate()        {}
func (PersonalPhone) personalInfoUpdate()        {}
func (PersonalLocation) personalInfoUpdate()     {}
func (PersonalProfileImage) personalInfoUpdate() {}

type ProjectUpdate interface {
	Apply(Project) Project
	projectUpdate()
}

type (
	ProjectTitle        string
	ProjectDescription  string
	ProjectImage        string
	ProjectTechnologies []string
	ProjectLiveURL      string
	ProjectGithubURL    string
	ProjectFeatured     bool
)

func (v ProjectTitle) Apply(p Project) Project       { p.Title = string(v); return p }
func (v ProjectDescription) Apply(p Project) Project { p.Description = string(v); return p }
func (v ProjectImage) Apply(p Project) Project       { p.ImageURL = string(v); return p }
func (v ProjectLiveURL) Apply(p Project) Project     { p.LiveURL = string(v); return p }
func (v ProjectGithubURL) Apply(p Project) Project   { p.GithubURL = string(v); return p }
func (v ProjectFeatured) Apply(p Project) Project    { p.Featured = bool(v); return p }

// Apply copies the list so the caller's slice is never shared with the record.
func (v ProjectTechnologies) Apply(p Project) Project {
	p.Technologies = append([]string{}, v...)
	return p
}

func (ProjectTitle) projectUpdate()        {}
func (ProjectDescription) projectUpdate()  {}
func (ProjectImage) projectUpdate()        {}
func (ProjectTechnologies) projectUpdate() {}
func (ProjectLiveURL) projectUpdate()      {}
func (ProjectGithubURL) projectUpdate()    {}
func (ProjectFeatured) projectUpdate()     {}

type ExperienceUpdate interface {
	Apply(Experience) Experience
	experienceUpdate()
}

type (
	ExperienceCompany     string
	ExperiencePosition    string
	ExperienceDuration    string
	ExperienceDescription string
	ExperienceCurrent     bool
)

func (v ExperienceCompany) Apply(e Experience) Experience  { e.Company = string(v); return e }
func (v ExperiencePosition) Apply(e Experience) Experience { e.Position = string(v); return e }
func (v ExperienceDuration) Apply(e Experience) Experience { e.Duration = string(v); return e }
func (v ExperienceDescription) Apply(e Experience) Experience {
	e.Description = string(v)
	return e
}
func (v ExperienceCurrent) Apply(e Experience) Experience { e.Current = bool(v); return e }

func (ExperienceCompany) experienceUpdate()     {}
func (ExperiencePosition) experienceUpdate()    {}
func (ExperienceDuration) experienceUpdate()    {}
func (ExperienceDescription) experienceUpdate() {}
func (ExperienceCurrent) experienceUpdate()     {}

type SocialUpdate interface {
	Apply(SocialLinks) SocialLinks
	socialUpdate()
}

type (
	SocialGithub   string
	SocialLinkedin string
	SocialTwitter  string
	SocialWebsite  string
)

func (v SocialGithub) Apply(s SocialLinks) SocialLinks   { s.Github = string(v); return s }
func (v SocialLinkedin) Apply(s SocialLinks) SocialLinks { s.Linkedin = string(v); return s }
func (v SocialTwitter) Apply(s SocialLinks) SocialLinks  { s.Twitter = string(v); return s }
func (v SocialWebsite) Apply(s SocialLinks) SocialLinks  { s.Website = string(v); return s }

func (SocialGithub) socialUpdate()   {}
func (SocialLinkedin) socialUpdate() {}
func (SocialTwitter) socialUpdate()  {}
func (SocialWebsite) socialUpdate()  {}

type TestimonialUpdate interface {
	Apply(Testimonial) Testimonial
	testimonialUpdate()
}

type (
	TestimonialName    string
	TestimonialRole    string
	TestimonialCompany string
	TestimonialContent string
	TestimonialImage   string
)

func (v TestimonialName) Apply(t Testimonial) Testimonial    { t.Name = string(v); return t }
func (v TestimonialRole) Apply(t Testimonial) Testimonial    { t.Role = string(v); return t }
func (v TestimonialCompany) Apply(t Testimonial) Testimonial { t.Company = string(v); return t }
func (v TestimonialContent) Apply(t Testimonial) Testimonial { t.Content = string(v); return t }
func (v TestimonialImage) Apply(t Testimonial) Testimonial   { t.ImageURL = string(v); return t }

func (TestimonialName) testimonialUpdate()    {}
func (TestimonialRole) testimonialUpdate()    {}
func (TestimonialCompany) testimonialUpdate() {}
func (TestimonialContent) testimonialUpdate() {}
func (TestimonialImage) testimonialUpdate()   {}

type ContactUpdate interface {
	Apply(ContactInfo) ContactInfo
	contactUpdate()
}

type (
	ContactEmail   string
	ContactMessage string
)

func (v ContactEmail) Apply(c ContactInfo) ContactInfo   { c.Email = string(v); return c }
func (v ContactMessage) Apply(c ContactInfo) ContactInfo { c.Message = string(v); return c }

func (ContactEmail) contactUpdate()   {}
func (ContactMessage) contactUpdate() {}

// ApplyAll folds a list of updates over an entity in order.
func ApplyAll[T any, U interface{ Apply(T) T }](v T, updates ...U) T {
	for _, u := range updates {
		v = u.Apply(v)
	}
	return v
}
