package store

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

var ErrRequestNotFound = fmt.Errorf("request not found")

func (s *MicroCollabStore) loadRequests() []schema.Request {
	requests := []schema.Request{}
	s.kv.Get(schema.RequestsKey, &requests)
	return requests
}

func (s *MicroCollabStore) saveRequests(requests []schema.Request) {
	s.kv.Set(schema.RequestsKey, requests)
}

// ListRequests applies the filter linearly over the stored request list
// and sorts the result.
func (s *MicroCollabStore) ListRequests(filter schema.RequestFilter) ([]schema.Request, error) {
	s.simulate(readLatency)

	matched := []schema.Request{}
	for _, r := range s.loadRequests() {
		if matchRequest(r, filter) {
			matched = append(matched, r)
		}
	}

	sortRequests(matched, filter.Sort)
	return matched, nil
}

func matchRequest(r schema.Request, f schema.RequestFilter) bool {
	if len(f.Tags) > 0 && !tagsIntersect(r.Tags, f.Tags) {
		return false
	}
	if f.MaxDuration > 0 && r.DurationHours > f.MaxDuration {
		return false
	}
	if f.Urgency != "" && r.Urgency != f.Urgency {
		return false
	}
	if f.Mode != "" && r.Mode != f.Mode {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(r.Title + " " + r.Description)
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	return true
}

func tagsIntersect(tags, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}

func sortRequests(requests []schema.Request, by string) {
	switch by {
	case schema.SortUrgent:
		sort.SliceStable(requests, func(i, j int) bool {
			if requests[i].Urgency.Rank() != requests[j].Urgency.Rank() {
				return requests[i].Urgency.Rank() > requests[j].Urgency.Rank()
			}
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		})
	case schema.SortBudget:
		sort.SliceStable(requests, func(i, j int) bool {
			// requests without a budget sink to the bottom
			if requests[i].Budget == nil {
				return false
			}
			if requests[j].Budget == nil {
				return true
			}
			return *requests[i].Budget > *requests[j].Budget
		})
	case schema.SortBestMatch:
		rand.Shuffle(len(requests), func(i, j int) {
			requests[i], requests[j] = requests[j], requests[i]
		})
	default: // newest
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		})
	}
}

// GetRequest returns a request enriched with its creator and offer count.
func (s *MicroCollabStore) GetRequest(id string) (*schema.RequestDetail, error) {
	s.simulate(readLatency)

	for _, r := range s.loadRequests() {
		if r.ID != id {
			continue
		}

		detail := schema.RequestDetail{Request: r}
		if creator, err := s.findUser(r.CreatedBy); err == nil {
			detail.Creator = creator
		}
		for _, o := range s.loadOffers() {
			if o.RequestID == id {
				detail.OfferCount++
			}
		}
		return &detail, nil
	}

	return nil, ErrRequestNotFound
}

// CreateRequest appends a new open request.
func (s *MicroCollabStore) CreateRequest(createdBy string, params schema.RequestParams) (*schema.Request, error) {
	s.simulate(writeLatency)

	now := time.Now().UTC()
	r := schema.Request{
		ID:            uuid.New().String(),
		Title:         params.Title,
		Description:   params.Description,
		Tags:          params.Tags,
		DurationHours: params.DurationHours,
		Urgency:       params.Urgency,
		Mode:          params.Mode,
		Budget:        params.Budget,
		BudgetType:    params.BudgetType,
		Status:        schema.RequestOpen,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	requests := s.loadRequests()
	requests = append(requests, r)
	s.saveRequests(requests)

	s.publish(event.RequestCreated, r)
	return &r, nil
}

// UpdateRequest applies non-nil fields of the update. Status values are
// written verbatim; transitions are not validated.
func (s *MicroCollabStore) UpdateRequest(id string, update schema.RequestUpdate) (*schema.Request, error) {
	s.simulate(writeLatency)

	requests := s.loadRequests()
	for i := range requests {
		if requests[i].ID != id {
			continue
		}

		r := &requests[i]
		if update.Title != nil {
			r.Title = *update.Title
		}
		if update.Description != nil {
			r.Description = *update.Description
		}
		if update.Tags != nil {
			r.Tags = update.Tags
		}
		if update.DurationHours != nil {
			r.DurationHours = *update.DurationHours
		}
		if update.Urgency != nil {
			r.Urgency = *update.Urgency
		}
		if update.Mode != nil {
			r.Mode = *update.Mode
		}
		if update.Budget != nil {
			r.Budget = update.Budget
		}
		if update.Status != nil {
			r.Status = *update.Status
		}
		r.UpdatedAt = time.Now().UTC()

		s.saveRequests(requests)
		s.publish(event.RequestUpdated, *r)
		return r, nil
	}

	return nil, ErrRequestNotFound
}

// DeleteRequest removes a request. Dependent offers and sessions are
// intentionally left behind.
func (s *MicroCollabStore) DeleteRequest(id string) error {
	s.simulate(deleteLatency)

	requests := s.loadRequests()
	for i, r := range requests {
		if r.ID == id {
			s.saveRequests(append(requests[:i], requests[i+1:]...))
			s.publish(event.RequestDeleted, r)
			return nil
		}
	}

	return ErrRequestNotFound
}

// setRequestStatus flips a request's status as part of a cross-entity
// update. The not-found case is reported to the caller like any other
// missing record.
func (s *MicroCollabStore) setRequestStatus(id string, status schema.RequestStatus) (*schema.Request, error) {
	requests := s.loadRequests()
	for i := range requests {
		if requests[i].ID != id {
			continue
		}

		requests[i].Status = status
		requests[i].UpdatedAt = time.Now().UTC()
		s.saveRequests(requests)

		s.publish(event.RequestUpdated, requests[i])
		return &requests[i], nil
	}

	return nil, ErrRequestNotFound
}
