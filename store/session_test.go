package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

type SessionTestSuite struct {
	suite.Suite
	kv    KV
	store *MicroCollabStore
}

func (s *SessionTestSuite) SetupTest() {
	s.kv = NewMemoryKV()
	s.store = NewMicroCollabStore(s.kv, event.NewBus(), false)

	s.kv.Set(schema.UsersKey, []schema.User{
		{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: schema.RoleRequester},
		{ID: "u2", Name: "Lin", Email: "lin@example.com", Role: schema.RoleHelper, SessionsCompleted: 3},
	})
	s.kv.Set(schema.RequestsKey, []schema.Request{
		{ID: "r1", Title: "Fix my build", Status: schema.RequestInProgress, CreatedBy: "u1"},
	})
	s.kv.Set(schema.SessionsKey, []schema.Session{
		{
			ID:             "s1",
			RequestID:      "r1",
			OfferID:        "o1",
			HelperID:       "u2",
			RequesterID:    "u1",
			Status:         schema.SessionScheduled,
			ScheduledStart: time.Now().UTC().Add(-30 * time.Minute),
		},
	})
}

func (s *SessionTestSuite) TestStartSession() {
	session, err := s.store.StartSession("s1")
	s.Require().NoError(err)
	s.Equal(schema.SessionActive, session.Status)
	s.Require().NotNil(session.ActualStart)
}

func (s *SessionTestSuite) TestEndSessionCompletesRequest() {
	_, err := s.store.StartSession("s1")
	s.Require().NoError(err)

	session, err := s.store.EndSession("s1", "solved it")
	s.Require().NoError(err)
	s.Equal(schema.SessionCompleted, session.Status)
	s.Equal("solved it", session.Notes)
	s.Require().NotNil(session.EndTime)
	s.True(session.DurationMinutes >= 0)

	detail, err := s.store.GetRequest("r1")
	s.Require().NoError(err)
	s.Equal(schema.RequestCompleted, detail.Status)
}

func (s *SessionTestSuite) TestEndSessionDurationFromScheduledStart() {
	// not started: the duration falls back to the scheduled start
	session, err := s.store.EndSession("s1", "")
	s.Require().NoError(err)
	s.True(session.DurationMinutes >= 29, "expected at least 29 minutes, got %d", session.DurationMinutes)
}

func (s *SessionTestSuite) TestEndSessionBumpsHelperCount() {
	_, err := s.store.EndSession("s1", "")
	s.Require().NoError(err)

	helper, err := s.store.GetUser("u2")
	s.Require().NoError(err)
	s.Equal(4, helper.SessionsCompleted)
}

func (s *SessionTestSuite) TestCancelSessionReopensRequest() {
	session, err := s.store.CancelSession("s1")
	s.Require().NoError(err)
	s.Equal(schema.SessionCancelled, session.Status)

	detail, err := s.store.GetRequest("r1")
	s.Require().NoError(err)
	s.Equal(schema.RequestOpen, detail.Status)
}

func (s *SessionTestSuite) TestGetSessionEnriched() {
	detail, err := s.store.GetSession("s1")
	s.Require().NoError(err)
	s.Require().NotNil(detail.Helper)
	s.Require().NotNil(detail.Requester)
	s.Equal("Lin", detail.Helper.Name)
	s.Equal("Ada", detail.Requester.Name)
}

func (s *SessionTestSuite) TestGetSessionNotFound() {
	_, err := s.store.GetSession("missing")
	s.Equal(ErrSessionNotFound, err)
}

func (s *SessionTestSuite) TestListSessionsEitherSide() {
	helperSide, err := s.store.ListSessions("u2")
	s.Require().NoError(err)
	s.Len(helperSide, 1)

	requesterSide, err := s.store.ListSessions("u1")
	s.Require().NoError(err)
	s.Len(requesterSide, 1)

	stranger, err := s.store.ListSessions("u9")
	s.Require().NoError(err)
	s.Len(stranger, 0)
}

func (s *SessionTestSuite) TestSendAndListMessages() {
	_, err := s.store.SendMessage("s1", "u1", "hello", schema.MessageText)
	s.Require().NoError(err)
	_, err = s.store.SendMessage("s1", "u2", "hey, looking now", "")
	s.Require().NoError(err)

	messages, err := s.store.ListMessages("s1")
	s.Require().NoError(err)
	s.Require().Len(messages, 2)
	s.Equal("hello", messages[0].Content)
	// empty type defaults to text
	s.Equal(schema.MessageText, messages[1].Type)
}

func (s *SessionTestSuite) TestSendMessageUnknownSession() {
	_, err := s.store.SendMessage("missing", "u1", "hello", schema.MessageText)
	s.Equal(ErrSessionNotFound, err)
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
