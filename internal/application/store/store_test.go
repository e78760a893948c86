package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// fakeSlot is an in-memory slot that counts writes and can be told to fail.
type fakeSlot struct {
	mu       sync.Mutex
	data     []byte
	saved    bool
	writes   int
	getErr   error
	putErr   error
	lastRead []byte
}

func (f *fakeSlot) Get(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if !f.saved {
		return nil, portfolio.ErrNoSavedData
	}
	f.lastRead = append([]byte{}, f.data...)
	return f.lastRead, nil
}

func (f *fakeSlot) Put(_ context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.data = append([]byte{}, data...)
	f.saved = true
	f.writes++
	return nil
}

func (f *fakeSlot) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

type recordingPublisher struct {
	events []portfolio.SectionUpdated
	err    error
}

func (p *recordingPublisher) PublishSectionUpdated(_ context.Context, evt portfolio.SectionUpdated) error {
	p.events = append(p.events, evt)
	return p.err
}

type StoreTestSuite struct {
	suite.Suite
	ctx  context.Context
	slot *fakeSlot
	logs *observer.ObservedLogs
	log  logger.Logger
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.slot = &fakeSlot{}
	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.log = logger.FromZap(zap.New(core))
}

func (s *StoreTestSuite) newStore(opts ...Option) *Store {
	return New(s.slot, s.log, opts...)
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) Test_Load_NoSavedData_YieldsDefault() {
	st := s.newStore()

	status, err := st.Load(s.ctx)

	s.Require().NoError(err)
	s.Equal(LoadEmpty, status)
	s.True(st.Ready())
	s.False(st.HasData())
	s.Equal(portfolio.Default(), st.Record())
	s.Zero(s.slot.writeCount(), "loading must not write")
}

func (s *StoreTestSuite) Test_Load_CorruptData_FallsBackToDefault() {
	s.slot.data = []byte("{not json")
	s.slot.saved = true
	st := s.newStore()

	status, err := st.Load(s.ctx)

	s.Require().NoError(err)
	s.Equal(LoadDiscarded, status)
	s.Equal("discarded", status.String())
	s.True(st.Ready())
	s.Equal(portfolio.Default(), st.Record())
	s.Equal(1, s.logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func (s *StoreTestSuite) Test_Load_SlotFailure_StaysNotReady() {
	s.slot.getErr = errors.New("connection refused")
	st := s.newStore()

	_, err := st.Load(s.ctx)
	s.Require().Error(err)
	s.False(st.Ready())

	s.NoError(st.UpdateSection(s.ctx, portfolio.Skills{"Go"}))
	s.Zero(s.slot.writeCount())
	s.ErrorIs(st.Save(s.ctx), ErrNotReady)
}

func (s *StoreTestSuite) Test_Load_NormalizesSavedRecord() {
	s.slot.data = []byte(`{"personalInfo":{"name":"Ada"},"skills":["Go","Go"],"projects":null}`)
	s.slot.saved = true
	st := s.newStore()

	status, err := st.Load(s.ctx)

	s.Require().NoError(err)
	s.Equal(LoadRestored, status)
	s.True(st.HasData())
	rec := st.Record()
	s.Equal("Ada", rec.PersonalInfo.Name)
	s.Equal(portfolio.Skills{"Go"}, rec.Skills)
	s.NotNil(rec.Projects)
	s.NotNil(rec.Testimonials)
}

func (s *StoreTestSuite) Test_UpdateBeforeLoad_DoesNotWrite() {
	s.slot.data = []byte(`{"personalInfo":{"name":"Saved"}}`)
	s.slot.saved = true
	st := s.newStore()

	s.NoError(st.UpdateSection(s.ctx, portfolio.PersonalInfo{Name: "Early"}))
	s.Zero(s.slot.writeCount())
	s.ErrorIs(st.Save(s.ctx), ErrNotReady)

	_, err := st.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("Saved", st.Record().PersonalInfo.Name, "loaded data wins over pre-load edits")
}

func (s *StoreTestSuite) Test_UpdateSection_WritesOncePerCall() {
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)

	s.NoError(st.UpdateSection(s.ctx, portfolio.Skills{"Go"}))
	s.NoError(st.UpdateSection(s.ctx, portfolio.SocialLinks{Github: "https://github.com/ada"}))

	s.Equal(2, s.slot.writeCount())
	s.JSONEq(`{
		"personalInfo":{"name":"","title":"","bio":"","email":"","phone":"","location":"","profileImage":""},
		"projects":[],
		"experience":[],
		"skills":["Go"],
		"social":{"github":"https://github.com/ada","linkedin":"","twitter":"","website":""},
		"testimonials":[],
		"contact":{"email":"","message":""}
	}`, string(s.slot.data))
}

func (s *StoreTestSuite) Test_UpdateSection_ShallowIsolation() {
	s.slot.data = []byte(`{"projects":[{"id":"1","title":"Engine","technologies":["Go"]}],"skills":["Go"],"contact":{"email":"a@b.c"}}`)
	s.slot.saved = true
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)
	before := st.Record()

	experience := portfolio.Experiences{{ID: "e1", Company: "Acme", Current: true}}
	s.NoError(st.UpdateSection(s.ctx, experience))

	after := st.Record()
	s.Equal(experience, after.Experience)
	for _, k := range portfolio.SectionKeys {
		if k == portfolio.SectionExperience {
			continue
		}
		s.Equal(before.Section(k), after.Section(k), "section %s changed", k)
	}
}

func (s *StoreTestSuite) Test_SaveThenReload_RoundTrips() {
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)

	info := portfolio.PersonalInfo{Name: "Ada", Title: "Engineer"}
	s.NoError(st.UpdateSection(s.ctx, info))
	s.NoError(st.Save(s.ctx))

	reloaded := New(s.slot, s.log)
	status, err := reloaded.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(LoadRestored, status)
	s.Equal("Ada", reloaded.Record().PersonalInfo.Name)
	s.Equal(st.Record(), reloaded.Record())
}

func (s *StoreTestSuite) Test_SampleRecordRoundTrips() {
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)

	sample := portfolio.Sample()
	for _, k := range portfolio.SectionKeys {
		s.NoError(st.UpdateSection(s.ctx, sample.Section(k)))
	}

	reloaded := New(s.slot, s.log)
	_, err = reloaded.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(sample, reloaded.Record())
}

func (s *StoreTestSuite) Test_WriteFailure_KeepsMemoryAndReportsError() {
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)
	s.slot.putErr = errors.New("quota exceeded")

	err = st.UpdateSection(s.ctx, portfolio.Skills{"Go"})

	s.Error(err)
	s.Equal(portfolio.Skills{"Go"}, st.Record().Skills)
	s.Equal(1, s.logs.FilterMessage("Failed to save portfolio").Len())
}

func (s *StoreTestSuite) Test_RecordIsACopy() {
	st := s.newStore()
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)
	s.NoError(st.UpdateSection(s.ctx, portfolio.Skills{"Go"}))

	rec := st.Record()
	rec.Skills[0] = "Rust"

	s.Equal(portfolio.Skills{"Go"}, st.Record().Skills)
}

func (s *StoreTestSuite) Test_PublishesAfterSuccessfulWrite() {
	pub := &recordingPublisher{}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	st := s.newStore(WithPublisher(pub), WithClock(func() time.Time { return at }))
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)

	s.NoError(st.UpdateSection(s.ctx, portfolio.ContactInfo{Email: "ada@example.com"}))

	s.Require().Len(pub.events, 1)
	s.Equal(portfolio.SectionContact, pub.events[0].Section)
	s.Equal(at, pub.events[0].SavedAt)
	s.Equal(len(s.slot.data), pub.events[0].Bytes)

	s.slot.putErr = errors.New("down")
	s.Error(st.UpdateSection(s.ctx, portfolio.ContactInfo{}))
	s.Len(pub.events, 1, "no event without a write")
}

func (s *StoreTestSuite) Test_PublishFailure_IsOnlyLogged() {
	pub := &recordingPublisher{err: errors.New("broker down")}
	st := s.newStore(WithPublisher(pub))
	_, err := st.Load(s.ctx)
	s.Require().NoError(err)

	s.NoError(st.UpdateSection(s.ctx, portfolio.Skills{"Go"}))
	s.Equal(1, s.logs.FilterMessage("Failed to publish section update").Len())
}
