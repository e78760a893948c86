package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/idgen"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// recordingStore keeps the record in memory and logs which sections were
// written, in order.
type recordingStore struct {
	record  portfolio.Record
	updates []portfolio.SectionKey
}

func newRecordingStore() *recordingStore {
	return &recordingStore{record: portfolio.Default()}
}

func (s *recordingStore) Section(key portfolio.SectionKey) portfolio.SectionValue {
	return s.record.Clone().Section(key)
}

func (s *recordingStore) UpdateSection(_ context.Context, v portfolio.SectionValue) error {
	s.record = s.record.With(v)
	s.updates = append(s.updates, v.SectionKey())
	return nil
}

func newController(st SectionStore) *Controller {
	return NewController(st, idgen.NewSequence("id"), logger.NewNop())
}

func TestNavigationBounds(t *testing.T) {
	c := newController(newRecordingStore())

	assert.Equal(t, 1, c.CurrentStep())
	assert.Equal(t, 4, c.StepCount())

	assert.Equal(t, 1, c.Retreat(), "retreat at first step is a no-op")

	for k := 0; k < 10; k++ {
		c.Advance()
	}
	assert.Equal(t, c.StepCount(), c.CurrentStep())
	assert.Equal(t, 1.0, c.Progress())

	assert.Equal(t, 3, c.Retreat())
	assert.Equal(t, 0.75, c.Progress())
}

func TestAdvanceNeverOverflows(t *testing.T) {
	for k := 0; k < 5; k++ {
		c := newController(newRecordingStore())
		for i := 0; i < c.StepCount()-1+k; i++ {
			c.Advance()
		}
		assert.Equal(t, c.StepCount(), c.CurrentStep(), "k=%d", k)
	}
}

func TestJumpTo(t *testing.T) {
	c := newController(newRecordingStore())

	assert.True(t, c.JumpTo(3))
	assert.Equal(t, 3, c.CurrentStep())
	assert.Equal(t, "Experience", c.Step().Title)

	for _, bad := range []int{0, -1, 5, 100} {
		assert.False(t, c.JumpTo(bad))
		assert.Equal(t, 3, c.CurrentStep())
	}
}

func TestStepsGovernTheirSections(t *testing.T) {
	c := newController(newRecordingStore())
	steps := c.Steps()

	require.Len(t, steps, 4)
	assert.True(t, steps[0].Governs(portfolio.SectionPersonalInfo))
	assert.True(t, steps[2].Governs(portfolio.SectionSkills))
	assert.True(t, steps[3].Governs(portfolio.SectionTestimonials))
	assert.False(t, steps[3].Governs(portfolio.SectionContact))
}

func TestPersonalInfoEditorWritesOnlyItsSection(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()

	err := c.PersonalInfo().Update(ctx, portfolio.PersonalName("Ada"), portfolio.PersonalTitle("Engineer"))

	require.NoError(t, err)
	assert.Equal(t, []portfolio.SectionKey{portfolio.SectionPersonalInfo}, st.updates)
	assert.Equal(t, "Ada", st.record.PersonalInfo.Name)
	assert.Equal(t, "Engineer", c.PersonalInfo().Value().Title)
}

func TestProjectsEditorShowsOneBlankProjectWithoutWriting(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)

	items := c.Projects().Items()

	require.Len(t, items, 1)
	assert.Equal(t, portfolio.NewProject("id-1"), items[0])
	assert.Empty(t, st.updates)
	assert.Empty(t, st.record.Projects)
}

func TestProjectsEditorFlow(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()
	ed := c.Projects()
	first := ed.Items()[0]

	require.NoError(t, ed.Update(ctx, first.ID, portfolio.ProjectTitle("Engine")))
	second, err := ed.Add(ctx)
	require.NoError(t, err)
	require.NoError(t, ed.AddTechnology(ctx, second.ID, "Go"))
	require.NoError(t, ed.AddTechnology(ctx, second.ID, "Go"))
	require.NoError(t, ed.AddTechnology(ctx, second.ID, "  "))

	require.Len(t, st.record.Projects, 2)
	assert.Equal(t, "Engine", st.record.Projects[0].Title)
	assert.Equal(t, []string{"Go"}, st.record.Projects[1].Technologies)
	assert.Len(t, st.updates, 3, "duplicate and blank technologies do not emit")

	require.NoError(t, ed.Remove(ctx, first.ID))
	require.Len(t, st.record.Projects, 1)
	assert.Equal(t, second.ID, st.record.Projects[0].ID)

	require.NoError(t, ed.Remove(ctx, second.ID))
	assert.Len(t, st.record.Projects, 1, "the last project is kept")

	require.NoError(t, ed.RemoveTechnology(ctx, second.ID, "Go"))
	assert.Empty(t, st.record.Projects[0].Technologies)

	before := len(st.updates)
	require.NoError(t, ed.Update(ctx, "missing", portfolio.ProjectTitle("x")))
	require.NoError(t, ed.Remove(ctx, "missing"))
	assert.Len(t, st.updates, before, "unknown ids are silent no-ops")

	for _, k := range st.updates {
		assert.Equal(t, portfolio.SectionProjects, k)
	}
}

func TestExperienceEditorManagesExperienceAndSkills(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()
	ed := c.Experience()

	first := ed.Items()[0]
	require.NoError(t, ed.Update(ctx, first.ID,
		portfolio.ExperienceCompany("Acme"),
		portfolio.ExperienceCurrent(true),
	))
	require.NoError(t, ed.AddSkill(ctx, "Go"))
	require.NoError(t, ed.AddSkill(ctx, "Go"))
	require.NoError(t, ed.AddSkill(ctx, "SQL"))
	require.NoError(t, ed.RemoveSkill(ctx, "Go"))

	assert.Equal(t, portfolio.Skills{"SQL"}, st.record.Skills)
	assert.Equal(t, portfolio.Skills{"SQL"}, ed.Skills())
	require.Len(t, st.record.Experience, 1)
	assert.Equal(t, "Acme", st.record.Experience[0].Company)
	assert.True(t, st.record.Experience[0].Current)
	assert.Equal(t, []portfolio.SectionKey{
		portfolio.SectionExperience,
		portfolio.SectionSkills,
		portfolio.SectionSkills,
		portfolio.SectionSkills,
	}, st.updates)
}

func TestContactEditorAllowsEmptyTestimonials(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()
	ed := c.Contact()

	assert.Empty(t, ed.Testimonials())

	tm, err := ed.AddTestimonial(ctx)
	require.NoError(t, err)
	require.NoError(t, ed.UpdateTestimonial(ctx, tm.ID, portfolio.TestimonialName("Grace"), portfolio.TestimonialContent("Great")))
	require.NoError(t, ed.UpdateSocial(ctx, portfolio.SocialGithub("https://github.com/ada")))

	require.Len(t, st.record.Testimonials, 1)
	assert.Equal(t, "Grace", st.record.Testimonials[0].Name)
	assert.Equal(t, "https://github.com/ada", st.record.Social.Github)

	require.NoError(t, ed.RemoveTestimonial(ctx, tm.ID))
	assert.Equal(t, portfolio.Testimonials{}, st.record.Testimonials)
}

func TestEditorsRemountAfterNavigation(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)

	ed := c.Projects()
	require.Equal(t, "id-1", ed.Items()[0].ID)
	st.record.Projects = portfolio.Projects{{ID: "p1", Title: "Loaded", Technologies: []string{}}}
	assert.Equal(t, "id-1", ed.Items()[0].ID, "a mounted editor keeps its copy")

	c.Advance()
	items := ed.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Loaded", items[0].Title)
}

func TestHandleTakenBeforeReplaceDoesNotOverwriteIt(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()

	ed := c.Projects()
	require.Len(t, ed.Items(), 1)

	replaced := portfolio.Projects{
		{ID: "p1", Title: "kept", Technologies: []string{}},
		{ID: "p2", Title: "also", Technologies: []string{}},
	}
	require.NoError(t, c.ReplaceSection(ctx, replaced))

	created, err := ed.Add(ctx)
	require.NoError(t, err)

	require.Len(t, st.record.Projects, 3)
	assert.Equal(t, "kept", st.record.Projects[0].Title)
	assert.Equal(t, "also", st.record.Projects[1].Title)
	assert.Equal(t, created.ID, st.record.Projects[2].ID)
}

func TestReplaceSectionRepairsLists(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()

	require.NoError(t, c.ReplaceSection(ctx, portfolio.Skills{"Go", "Go", " "}))
	require.NoError(t, c.ReplaceSection(ctx, portfolio.Projects{
		{ID: "x", Technologies: []string{"", "  ", "Go"}},
		{ID: "x"},
		{Title: "c"},
	}))

	assert.Equal(t, portfolio.Skills{"Go"}, st.record.Skills)
	require.Len(t, st.record.Projects, 3)
	ids := map[string]bool{}
	for _, p := range st.record.Projects {
		assert.NotEmpty(t, p.ID)
		ids[p.ID] = true
	}
	assert.Len(t, ids, 3)
	assert.Equal(t, "x", st.record.Projects[0].ID)
	assert.Equal(t, []string{"Go"}, st.record.Projects[0].Technologies)

	require.NoError(t, c.Projects().Update(ctx, "x", portfolio.ProjectTitle("only-first")))
	assert.Equal(t, "only-first", st.record.Projects[0].Title)
	assert.Empty(t, st.record.Projects[1].Title)
}

func TestReplaceSectionRemountsMirror(t *testing.T) {
	st := newRecordingStore()
	c := newController(st)
	ctx := context.Background()

	_ = c.Experience()
	require.NoError(t, c.ReplaceSection(ctx, portfolio.Skills{"Go", "SQL"}))

	assert.Equal(t, portfolio.Skills{"Go", "SQL"}, c.Experience().Skills())
	assert.Equal(t, []portfolio.SectionKey{portfolio.SectionSkills}, st.updates)
}

func TestCommitRejectsForeignSections(t *testing.T) {
	c := newController(newRecordingStore())
	commit := c.commitFor(StepPersonalInfo)

	err := commit(context.Background(), portfolio.Skills{"Go"})

	assert.ErrorIs(t, err, ErrSectionNotInStep)
}
