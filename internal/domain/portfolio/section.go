package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

type SectionKey string

const (
	SectionPersonalInfo SectionKey = "personalInfo"
	SectionProjects     SectionKey = "projects"
	SectionExperience   SectionKey = "experience"
	SectionSkills       SectionKey = "skills"
	SectionSocial       SectionKey = "social"
	SectionTestimonials SectionKey = "testimonials"
	SectionContact      SectionKey = "contact"
)

var ErrUnknownSection = errors.New("unknown portfolio section")

// SectionKeys lists every top-level section in record order.
var SectionKeys = []SectionKey{
	SectionPersonalInfo,
	SectionProjects,
	SectionExperience,
	SectionSkills,
	SectionSocial,
	SectionTestimonials,
	SectionContact,
}

func ParseSectionKey(s string) (SectionKey, error) {
	for _, k := range SectionKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// SectionValue is implemented only by the seven section types, so a
// SectionValue always knows which field of Record it replaces.
type SectionValue interface {
	SectionKey() SectionKey
	sealed()
}

func (PersonalInfo) SectionKey() SectionKey { return SectionPersonalInfo }
func (Projects) SectionKey() SectionKey     { return SectionProjects }
func (Experiences) SectionKey() SectionKey  { return SectionExperience }
func (Skills) SectionKey() SectionKey       { return SectionSkills }
func (SocialLinks) SectionKey() SectionKey  { return SectionSocial }
func (Testimonials) SectionKey() SectionKey { return SectionTestimonials }
func (ContactInfo) SectionKey() SectionKey  { return SectionContact }

func (PersonalInfo) sealed() {}
func (Projects) sealed()     {}
func (Experiences) sealed()  {}
func (Skills) sealed()       {}
func (SocialLinks) sealed()  {}
func (Testimonials) sealed() {}
func (ContactInfo) sealed()  {}

// With returns a copy of r whose section v.SectionKey() is replaced by v.
// No merge happens; siblings are carried over untouched.
func (r Record) With(v SectionValue) Record {
	switch s := v.(type) {
	case PersonalInfo:
		r.PersonalInfo = s
	case Projects:
		r.Projects = s
	case Experiences:
		r.Experience = s
	case Skills:
		r.Skills = s
	case SocialLinks:
		r.Social = s
	case Testimonials:
		r.Testimonials = s
	case ContactInfo:
		r.Contact = s
	}
	return r
}

func (r Record) Section(key SectionKey) SectionValue {
	switch key {
	case SectionPersonalInfo:
		return r.PersonalInfo
	case SectionProjects:
		return r.Projects
	case SectionExperience:
		return r.Experience
	case SectionSkills:
		return r.Skills
	case SectionSocial:
		return r.Social
	case SectionTestimonials:
		return r.Testimonials
	case SectionContact:
		return r.Contact
	}
	return nil
}

// DecodeSection parses the JSON body of one section. A JSON null list decodes
// to an empty list.
func DecodeSection(key SectionKey, data []byte) (SectionValue, error) {
	var (
		v   SectionValue
		err error
	)
	switch key {
	case SectionPersonalInfo:
		var s PersonalInfo
		err = json.Unmarshal(data, &s)
		v = s
	case SectionProjects:
		var s Projects
		err = json.Unmarshal(data, &s)
		if s == nil {
			s = Projects{}
		}
		for i := range s {
			if s[i].Technologies == nil {
				s[i].Technologies = []string{}
			}
		}
		v = s
	case SectionExperience:
		var s Experiences
		err = json.Unmarshal(data, &s)
		if s == nil {
			s = Experiences{}
		}
		v = s
	case SectionSkills:
		var s Skills
		err = json.Unmarshal(data, &s)
		if s == nil {
			s = Skills{}
		}
		v = s
	case SectionSocial:
		var s SocialLinks
		err = json.Unmarshal(data, &s)
		v = s
	case SectionTestimonials:
		var s Testimonials
		err = json.Unmarshal(data, &s)
		if s == nil {
			s = Testimonials{}
		}
		v = s
	case SectionContact:
		var s ContactInfo
		err = json.Unmarshal(data, &s)
		v = s
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	if err != nil {
		return nil, fmt.Errorf("decode section %s: %w", key, err)
	}
	return v, nil
}
