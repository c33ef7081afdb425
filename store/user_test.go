package store

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

type UserTestSuite struct {
	suite.Suite
	kv    KV
	store *MicroCollabStore
}

func (s *UserTestSuite) SetupTest() {
	s.kv = NewMemoryKV()
	s.store = NewMicroCollabStore(s.kv, event.NewBus(), false)

	s.kv.Set(schema.UsersKey, []schema.User{
		{ID: "u1", Name: "Ada", Email: "Ada@Example.com", Role: schema.RoleRequester},
		{ID: "u2", Name: "Lin", Email: "lin@example.com", Role: schema.RoleHelper,
			Skills: []string{"Go", "PostgreSQL"}, AvailabilityStatus: schema.UserAvailable},
		{ID: "u3", Name: "Kai", Email: "kai@example.com", Role: schema.RoleBoth,
			Skills: []string{"React"}, AvailabilityStatus: schema.UserBusy},
	})
}

func (s *UserTestSuite) TestGetUserByEmailCaseInsensitive() {
	user, err := s.store.GetUserByEmail("ada@example.com")
	s.Require().NoError(err)
	s.Equal("u1", user.ID)
}

func (s *UserTestSuite) TestGetUserByEmailNotFound() {
	_, err := s.store.GetUserByEmail("nobody@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserTestSuite) TestListHelpersExcludesRequesters() {
	helpers, err := s.store.ListHelpers(schema.HelperFilter{})
	s.Require().NoError(err)
	s.Len(helpers, 2)
}

func (s *UserTestSuite) TestListHelpersBySkill() {
	helpers, err := s.store.ListHelpers(schema.HelperFilter{Skill: "go"})
	s.Require().NoError(err)
	s.Require().Len(helpers, 1)
	s.Equal("u2", helpers[0].ID)
}

func (s *UserTestSuite) TestListHelpersByAvailability() {
	helpers, err := s.store.ListHelpers(schema.HelperFilter{Availability: schema.UserBusy})
	s.Require().NoError(err)
	s.Require().Len(helpers, 1)
	s.Equal("u3", helpers[0].ID)
}

func (s *UserTestSuite) TestUpdateUser() {
	bio := "distributed systems, mostly"
	rate := 80
	updated, err := s.store.UpdateUser("u2", schema.UserUpdate{
		Bio:        &bio,
		HourlyRate: &rate,
		Skills:     []string{"Go", "Kubernetes"},
	})
	s.Require().NoError(err)
	s.Equal(bio, updated.Bio)
	s.Require().NotNil(updated.HourlyRate)
	s.Equal(80, *updated.HourlyRate)
	s.Equal([]string{"Go", "Kubernetes"}, updated.Skills)
	// untouched fields survive
	s.Equal("Lin", updated.Name)
}

func (s *UserTestSuite) TestUpdateUserNotFound() {
	_, err := s.store.UpdateUser("missing", schema.UserUpdate{})
	s.Equal(ErrUserNotFound, err)
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
