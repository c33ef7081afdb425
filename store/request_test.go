package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

type RequestTestSuite struct {
	suite.Suite
	kv    KV
	store *MicroCollabStore
}

func (s *RequestTestSuite) SetupTest() {
	s.kv = NewMemoryKV()
	s.store = NewMicroCollabStore(s.kv, event.NewBus(), false)

	now := time.Now().UTC()
	s.kv.Set(schema.RequestsKey, []schema.Request{
		{
			ID:        "r1",
			Title:     "Fix my React hooks",
			Tags:      []string{"React"},
			Urgency:   schema.UrgencyCritical,
			Mode:      schema.ModeLive,
			Status:    schema.RequestOpen,
			CreatedBy: "u1",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:            "r2",
			Title:         "Profile a Python script",
			Tags:          []string{"Python"},
			DurationHours: 4,
			Urgency:       schema.UrgencyLow,
			Mode:          schema.ModeAsync,
			Status:        schema.RequestOpen,
			CreatedBy:     "u2",
			CreatedAt:     now.Add(-1 * time.Hour),
		},
	})
	s.kv.Set(schema.UsersKey, []schema.User{
		{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: schema.RoleBoth},
		{ID: "u2", Name: "Lin", Email: "lin@example.com", Role: schema.RoleHelper},
	})
}

func (s *RequestTestSuite) TestFilterByTags() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Tags: []string{"React"}})
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal("r1", requests[0].ID)
}

func (s *RequestTestSuite) TestFilterByTagsNoMatch() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Tags: []string{"Rust"}})
	s.NoError(err)
	s.Len(requests, 0)
}

func (s *RequestTestSuite) TestSortByUrgency() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Sort: schema.SortUrgent})
	s.NoError(err)
	s.Require().Len(requests, 2)
	s.Equal("r1", requests[0].ID)
	s.Equal("r2", requests[1].ID)
}

func (s *RequestTestSuite) TestSortByNewestDefault() {
	requests, err := s.store.ListRequests(schema.RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 2)
	s.Equal("r2", requests[0].ID)
}

func (s *RequestTestSuite) TestFilterByMaxDuration() {
	requests, err := s.store.ListRequests(schema.RequestFilter{MaxDuration: 2})
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal("r1", requests[0].ID)
}

func (s *RequestTestSuite) TestFilterBySearch() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Search: "python"})
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal("r2", requests[0].ID)
}

func (s *RequestTestSuite) TestFilterByMode() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Mode: schema.ModeAsync})
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal("r2", requests[0].ID)
}

func (s *RequestTestSuite) TestBestMatchKeepsAllRequests() {
	requests, err := s.store.ListRequests(schema.RequestFilter{Sort: schema.SortBestMatch})
	s.NoError(err)
	s.Len(requests, 2)
}

func (s *RequestTestSuite) TestGetRequestEnriched() {
	s.kv.Set(schema.OffersKey, []schema.Offer{
		{ID: "o1", RequestID: "r1", OfferedBy: "u2"},
	})

	detail, err := s.store.GetRequest("r1")
	s.NoError(err)
	s.Require().NotNil(detail.Creator)
	s.Equal("Ada", detail.Creator.Name)
	s.Equal(1, detail.OfferCount)
}

func (s *RequestTestSuite) TestGetRequestNotFound() {
	_, err := s.store.GetRequest("missing")
	s.Equal(ErrRequestNotFound, err)
}

func (s *RequestTestSuite) TestCreateRequest() {
	created, err := s.store.CreateRequest("u1", schema.RequestParams{
		Title:   "Review my Dockerfile",
		Tags:    []string{"Docker"},
		Urgency: schema.UrgencyNormal,
		Mode:    schema.ModeAsync,
	})
	s.NoError(err)
	s.Equal(schema.RequestOpen, created.Status)
	s.NotEmpty(created.ID)

	requests, _ := s.store.ListRequests(schema.RequestFilter{})
	s.Len(requests, 3)
}

func (s *RequestTestSuite) TestUpdateRequestStatusUnvalidated() {
	// direct status writes are applied verbatim, even backwards
	completed := schema.RequestCompleted
	updated, err := s.store.UpdateRequest("r1", schema.RequestUpdate{Status: &completed})
	s.NoError(err)
	s.Equal(schema.RequestCompleted, updated.Status)

	open := schema.RequestOpen
	updated, err = s.store.UpdateRequest("r1", schema.RequestUpdate{Status: &open})
	s.NoError(err)
	s.Equal(schema.RequestOpen, updated.Status)
}

func (s *RequestTestSuite) TestDeleteRequestLeavesOffers() {
	s.kv.Set(schema.OffersKey, []schema.Offer{
		{ID: "o1", RequestID: "r1", OfferedBy: "u2"},
	})

	s.NoError(s.store.DeleteRequest("r1"))

	_, err := s.store.GetRequest("r1")
	s.Equal(ErrRequestNotFound, err)

	// no cascade: the orphaned offer stays
	offers := []schema.Offer{}
	s.kv.Get(schema.OffersKey, &offers)
	s.Len(offers, 1)
}

func (s *RequestTestSuite) TestDeleteRequestNotFound() {
	s.Equal(ErrRequestNotFound, s.store.DeleteRequest("missing"))
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}
