package wizard

import (
	"context"
	"slices"
	"sync"

	"github.com/khoahotran/portfolio-builder/internal/application/editor"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/idgen"
)

// mount guards an editor's local copy. A fresh or unmounted editor reloads
// from the store on the next acquire.
type mount struct {
	mu      sync.Mutex
	mounted bool
	load    func()
}

func (m *mount) acquire() {
	m.mu.Lock()
	if !m.mounted {
		m.load()
		m.mounted = true
	}
}

func (m *mount) release() {
	m.mu.Unlock()
}

func (m *mount) unmount() {
	m.mu.Lock()
	m.mounted = false
	m.mu.Unlock()
}

// replace runs write with the editor locked and unmounts it afterwards.
func (m *mount) replace(write func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounted = false
	return write()
}

// mirror is an editor's local copy of one list section. Every mutation
// replaces the copy and hands the full list to emit.
type mirror[T editor.Entry] struct {
	items []T
	list  *editor.List[T]
	min   int
	emit  func(ctx context.Context, items []T) error
}

func (m *mirror[T]) add(ctx context.Context) (T, error) {
	items, created := m.list.Create(m.items)
	m.items = items
	return created, m.emit(ctx, items)
}

// remove refuses to go below min entries and ignores unknown ids.
func (m *mirror[T]) remove(ctx context.Context, id string) error {
	if _, ok := editor.Find(m.items, id); !ok || len(m.items) <= m.min {
		return nil
	}
	m.items = m.list.Remove(m.items, id)
	return m.emit(ctx, m.items)
}

func (m *mirror[T]) update(ctx context.Context, id string, apply func(T) T) error {
	if _, ok := editor.Find(m.items, id); !ok {
		return nil
	}
	m.items = m.list.Update(m.items, id, apply)
	return m.emit(ctx, m.items)
}

func (m *mirror[T]) snapshot() []T {
	return slices.Clone(m.items)
}

// PersonalInfoEditor edits step 1.
type PersonalInfoEditor struct {
	mount
	info     portfolio.PersonalInfo
	onChange changeFunc
}

func newPersonalInfoEditor(st SectionStore, onChange changeFunc) *PersonalInfoEditor {
	e := &PersonalInfoEditor{onChange: onChange}
	e.load = func() {
		e.info, _ = st.Section(portfolio.SectionPersonalInfo).(portfolio.PersonalInfo)
	}
	return e
}

func (e *PersonalInfoEditor) Value() portfolio.PersonalInfo {
	e.acquire()
	defer e.release()
	return e.info
}

func (e *PersonalInfoEditor) Update(ctx context.Context, updates ...portfolio.PersonalInfoUpdate) error {
	e.acquire()
	defer e.release()
	e.info = portfolio.ApplyAll(e.info, updates...)
	return e.onChange(ctx, e.info)
}

// ProjectsEditor edits step 2. It always shows at least one project.
type ProjectsEditor struct {
	mount
	projects mirror[portfolio.Project]
}

func newProjectsEditor(st SectionStore, ids idgen.Generator, onChange changeFunc) *ProjectsEditor {
	list := editor.NewList(ids, portfolio.NewProject)
	e := &ProjectsEditor{
		projects: mirror[portfolio.Project]{
			list: list,
			min:  1,
			emit: func(ctx context.Context, items []portfolio.Project) error {
				return onChange(ctx, portfolio.Projects(slices.Clone(items)))
			},
		},
	}
	e.load = func() {
		items, _ := st.Section(portfolio.SectionProjects).(portfolio.Projects)
		e.projects.items = list.Initial(items)
	}
	return e
}

func (e *ProjectsEditor) Items() portfolio.Projects {
	e.acquire()
	defer e.release()
	return e.projects.snapshot()
}

func (e *ProjectsEditor) Add(ctx context.Context) (portfolio.Project, error) {
	e.acquire()
	defer e.release()
	return e.projects.add(ctx)
}

func (e *ProjectsEditor) Remove(ctx context.Context, id string) error {
	e.acquire()
	defer e.release()
	return e.projects.remove(ctx, id)
}

func (e *ProjectsEditor) Update(ctx context.Context, id string, updates ...portfolio.ProjectUpdate) error {
	e.acquire()
	defer e.release()
	return e.projects.update(ctx, id, func(p portfolio.Project) portfolio.Project {
		return portfolio.ApplyAll(p, updates...)
	})
}

func (e *ProjectsEditor) AddTechnology(ctx context.Context, id, tech string) error {
	e.acquire()
	defer e.release()
	p, ok := editor.Find(e.projects.items, id)
	if !ok {
		return nil
	}
	next := editor.AddToSet(p.Technologies, tech)
	if len(next) == len(p.Technologies) {
		return nil
	}
	return e.projects.update(ctx, id, portfolio.ProjectTechnologies(next).Apply)
}

func (e *ProjectsEditor) RemoveTechnology(ctx context.Context, id, tech string) error {
	e.acquire()
	defer e.release()
	p, ok := editor.Find(e.projects.items, id)
	if !ok {
		return nil
	}
	return e.projects.update(ctx, id, portfolio.ProjectTechnologies(editor.RemoveFromSet(p.Technologies, tech)).Apply)
}

// ExperienceEditor edits step 3: work history plus the skills list.
type ExperienceEditor struct {
	mount
	experience mirror[portfolio.Experience]
	skills     []string
	onChange   changeFunc
}

func newExperienceEditor(st SectionStore, ids idgen.Generator, onChange changeFunc) *ExperienceEditor {
	list := editor.NewList(ids, portfolio.NewExperience)
	e := &ExperienceEditor{
		experience: mirror[portfolio.Experience]{
			list: list,
			min:  1,
			emit: func(ctx context.Context, items []portfolio.Experience) error {
				return onChange(ctx, portfolio.Experiences(slices.Clone(items)))
			},
		},
		onChange: onChange,
	}
	e.load = func() {
		items, _ := st.Section(portfolio.SectionExperience).(portfolio.Experiences)
		skills, _ := st.Section(portfolio.SectionSkills).(portfolio.Skills)
		e.experience.items = list.Initial(items)
		e.skills = append([]string{}, skills...)
	}
	return e
}

func (e *ExperienceEditor) Items() portfolio.Experiences {
	e.acquire()
	defer e.release()
	return e.experience.snapshot()
}

func (e *ExperienceEditor) Skills() portfolio.Skills {
	e.acquire()
	defer e.release()
	return append(portfolio.Skills{}, e.skills...)
}

func (e *ExperienceEditor) Add(ctx context.Context) (portfolio.Experience, error) {
	e.acquire()
	defer e.release()
	return e.experience.add(ctx)
}

func (e *ExperienceEditor) Remove(ctx context.Context, id string) error {
	e.acquire()
	defer e.release()
	return e.experience.remove(ctx, id)
}

func (e *ExperienceEditor) Update(ctx context.Context, id string, updates ...portfolio.ExperienceUpdate) error {
	e.acquire()
	defer e.release()
	return e.experience.update(ctx, id, func(x portfolio.Experience) portfolio.Experience {
		return portfolio.ApplyAll(x, updates...)
	})
}

// AddSkill ignores blank and already-present skills without emitting.
func (e *ExperienceEditor) AddSkill(ctx context.Context, skill string) error {
	e.acquire()
	defer e.release()
	next := editor.AddToSet(e.skills, skill)
	if len(next) == len(e.skills) {
		return nil
	}
	e.skills = next
	return e.onChange(ctx, portfolio.Skills(append([]string{}, next...)))
}

func (e *ExperienceEditor) RemoveSkill(ctx context.Context, skill string) error {
	e.acquire()
	defer e.release()
	e.skills = editor.RemoveFromSet(e.skills, skill)
	return e.onChange(ctx, portfolio.Skills(append([]string{}, e.skills...)))
}

// ContactEditor edits step 4: social links and testimonials. Testimonials
// may be empty.
type ContactEditor struct {
	mount
	social       portfolio.SocialLinks
	testimonials mirror[portfolio.Testimonial]
	onChange     changeFunc
}

func newContactEditor(st SectionStore, ids idgen.Generator, onChange changeFunc) *ContactEditor {
	e := &ContactEditor{
		testimonials: mirror[portfolio.Testimonial]{
			list: editor.NewList(ids, portfolio.NewTestimonial),
			emit: func(ctx context.Context, items []portfolio.Testimonial) error {
				return onChange(ctx, portfolio.Testimonials(slices.Clone(items)))
			},
		},
		onChange: onChange,
	}
	e.load = func() {
		e.social, _ = st.Section(portfolio.SectionSocial).(portfolio.SocialLinks)
		items, _ := st.Section(portfolio.SectionTestimonials).(portfolio.Testimonials)
		e.testimonials.items = slices.Clone([]portfolio.Testimonial(items))
	}
	return e
}

func (e *ContactEditor) Social() portfolio.SocialLinks {
	e.acquire()
	defer e.release()
	return e.social
}

func (e *ContactEditor) Testimonials() portfolio.Testimonials {
	e.acquire()
	defer e.release()
	out := e.testimonials.snapshot()
	if out == nil {
		return portfolio.Testimonials{}
	}
	return out
}

func (e *ContactEditor) UpdateSocial(ctx context.Context, updates ...portfolio.SocialUpdate) error {
	e.acquire()
	defer e.release()
	e.social = portfolio.ApplyAll(e.social, updates...)
	return e.onChange(ctx, e.social)
}

func (e *ContactEditor) AddTestimonial(ctx context.Context) (portfolio.Testimonial, error) {
	e.acquire()
	defer e.release()
	return e.testimonials.add(ctx)
}

func (e *ContactEditor) RemoveTestimonial(ctx context.Context, id string) error {
	e.acquire()
	defer e.release()
	return e.testimonials.remove(ctx, id)
}

func (e *ContactEditor) UpdateTestimonial(ctx context.Context, id string, updates ...portfolio.TestimonialUpdate) error {
	e.acquire()
	defer e.release()
	return e.testimonials.update(ctx, id, func(t portfolio.Testimonial) portfolio.Testimonial {
		return portfolio.ApplyAll(t, updates...)
	})
}
