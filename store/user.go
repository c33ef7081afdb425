package store

import (
	"fmt"
	"strings"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

var ErrUserNotFound = fmt.Errorf("user not found")

func (s *MicroCollabStore) loadUsers() []schema.User {
	users := []schema.User{}
	s.kv.Get(schema.UsersKey, &users)
	return users
}

func (s *MicroCollabStore) saveUsers(users []schema.User) {
	s.kv.Set(schema.UsersKey, users)
}

// findUser looks a user up without simulated latency, for joins inside
// other operations.
func (s *MicroCollabStore) findUser(id string) (*schema.User, error) {
	for _, u := range s.loadUsers() {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MicroCollabStore) GetUser(id string) (*schema.User, error) {
	s.simulate(readLatency)
	return s.findUser(id)
}

// GetUserByEmail backs the mock login flow.
func (s *MicroCollabStore) GetUserByEmail(email string) (*schema.User, error) {
	s.simulate(readLatency)

	for _, u := range s.loadUsers() {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListHelpers returns the helper directory, optionally narrowed by
// skill and availability.
func (s *MicroCollabStore) ListHelpers(filter schema.HelperFilter) ([]schema.User, error) {
	s.simulate(readLatency)

	helpers := []schema.User{}
	for _, u := range s.loadUsers() {
		if u.Role != schema.RoleHelper && u.Role != schema.RoleBoth {
			continue
		}
		if filter.Availability != "" && u.AvailabilityStatus != filter.Availability {
			continue
		}
		if filter.Skill != "" && !hasSkill(u.Skills, filter.Skill) {
			continue
		}
		helpers = append(helpers, u)
	}

	return helpers, nil
}

func hasSkill(skills []string, wanted string) bool {
	for _, s := range skills {
		if strings.EqualFold(s, wanted) {
			return true
		}
	}
	return false
}

// UpdateUser applies non-nil fields of the update to a user profile.
func (s *MicroCollabStore) UpdateUser(id string, update schema.UserUpdate) (*schema.User, error) {
	s.simulate(writeLatency)

	users := s.loadUsers()
	for i := range users {
		if users[i].ID != id {
			continue
		}

		u := &users[i]
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Bio != nil {
			u.Bio = *update.Bio
		}
		if update.Skills != nil {
			u.Skills = update.Skills
		}
		if update.Timezone != nil {
			u.Timezone = *update.Timezone
		}
		if update.AvailabilityStatus != nil {
			u.AvailabilityStatus = *update.AvailabilityStatus
		}
		if update.HourlyRate != nil {
			u.HourlyRate = update.HourlyRate
		}

		s.saveUsers(users)
		s.publish(event.UserUpdated, *u)
		return u, nil
	}

	return nil, ErrUserNotFound
}

func (s *MicroCollabStore) bumpSessionsCompleted(userID string) {
	users := s.loadUsers()
	for i := range users {
		if users[i].ID == userID {
			users[i].SessionsCompleted++
			s.saveUsers(users)
			return
		}
	}
}
