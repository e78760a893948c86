package portfolio

import (
	"strings"

	"github.com/khoahotran/portfolio-builder/pkg/idgen"
)

// PersonalInfo is the singleton "about me" section.
type PersonalInfo struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	ProfileImageURL string `json:"profileImage"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

// Experience.Duration is free text ("Jan 2020 - Present"), never parsed.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	ImageURL string `json:"image"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type (
	Projects     []Project
	Experiences  []Experience
	Skills       []string
	Testimonials []Testimonial
)

// Record is the whole portfolio. All seven sections are always present.
type Record struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Projects     Projects     `json:"projects"`
	Experience   Experiences  `json:"experience"`
	Skills       Skills       `json:"skills"`
	Social       SocialLinks  `json:"social"`
	Testimonials Testimonials `json:"testimonials"`
	Contact      ContactInfo  `json:"contact"`
}

// Default returns the empty record used when nothing has been saved yet.
func Default() Record {
	return Record{
		Projects:     Projects{},
		Experience:   Experiences{},
		Skills:       Skills{},
		Testimonials: Testimonials{},
	}
}

func NewProject(id string) Project {
	return Project{ID: id, Technologies: []string{}}
}

func NewExperience(id string) Experience {
	return Experience{ID: id}
}

func NewTestimonial(id string) Testimonial {
	return Testimonial{ID: id}
}

func (p Project) EntryID() string     { return p.ID }
func (e Experience) EntryID() string  { return e.ID }
func (t Testimonial) EntryID() string { return t.ID }

// Clone returns a deep copy; slices of the copy never alias the receiver's.
func (r Record) Clone() Record {
	out := r
	out.Projects = make(Projects, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects[i] = p
	}
	out.Experience = append(Experiences{}, r.Experience...)
	out.Skills = append(Skills{}, r.Skills...)
	out.Testimonials = append(Testimonials{}, r.Testimonials...)
	return out
}

// Normalize repairs records decoded from storage: missing lists become empty,
// blank or repeated skills and technologies are dropped, and list entries
// with an empty or repeated id are given a "restored-N" id.
func (r Record) Normalize() Record {
	newID := idgen.NewSequence("restored").NewID
	out := r.Clone()
	out.Projects = SanitizeSection(out.Projects, newID).(Projects)
	out.Experience = SanitizeSection(out.Experience, newID).(Experiences)
	out.Skills = SanitizeSection(out.Skills, newID).(Skills)
	out.Testimonials = SanitizeSection(out.Testimonials, newID).(Testimonials)
	return out
}

// SanitizeSection enforces the list invariants on a section that did not come
// from an editor. Entries whose id is empty or already used earlier in the
// list get a fresh id from newID; the first holder of an id keeps it.
// Singleton sections are returned unchanged.
func SanitizeSection(v SectionValue, newID func() string) SectionValue {
	switch s := v.(type) {
	case Projects:
		out := make(Projects, len(s))
		ids := repairIDs(entryIDs(s), newID)
		for i, p := range s {
			p.ID = ids[i]
			p.Technologies = UniqueStrings(p.Technologies)
			out[i] = p
		}
		return out
	case Experiences:
		out := make(Experiences, len(s))
		ids := repairIDs(entryIDs(s), newID)
		for i, x := range s {
			x.ID = ids[i]
			out[i] = x
		}
		return out
	case Testimonials:
		out := make(Testimonials, len(s))
		ids := repairIDs(entryIDs(s), newID)
		for i, t := range s {
			t.ID = ids[i]
			out[i] = t
		}
		return out
	case Skills:
		return Skills(UniqueStrings(s))
	}
	return v
}

func entryIDs[T interface{ EntryID() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.EntryID()
	}
	return out
}

// repairIDs keeps the first occurrence of every non-empty id and replaces the
// rest with ids from newID that appear nowhere in the list.
func repairIDs(ids []string, newID func() string) []string {
	taken := make(map[string]struct{}, len(ids))
	keep := make([]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := taken[id]; !dup {
			taken[id] = struct{}{}
			keep[i] = true
		}
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		if !keep[i] {
			for {
				id = newID()
				if _, used := taken[id]; id != "" && !used {
					break
				}
			}
			taken[id] = struct{}{}
		}
		out[i] = id
	}
	return out
}

// UniqueStrings drops blank values and keeps the first occurrence of every
// other value, preserving order. Values are not trimmed. The result is never
// nil.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
