package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

var ErrOfferNotFound = fmt.Errorf("offer not found")

func (s *MicroCollabStore) loadOffers() []schema.Offer {
	offers := []schema.Offer{}
	s.kv.Get(schema.OffersKey, &offers)
	return offers
}

func (s *MicroCollabStore) saveOffers(offers []schema.Offer) {
	s.kv.Set(schema.OffersKey, offers)
}

// ListOffers returns the offers made on a request, enriched with the
// offering users.
func (s *MicroCollabStore) ListOffers(requestID string) ([]schema.OfferDetail, error) {
	s.simulate(readLatency)

	details := []schema.OfferDetail{}
	for _, o := range s.loadOffers() {
		if o.RequestID != requestID {
			continue
		}

		d := schema.OfferDetail{Offer: o}
		if helper, err := s.findUser(o.OfferedBy); err == nil {
			d.Helper = helper
		}
		details = append(details, d)
	}

	return details, nil
}

// CreateOffer appends a pending offer and notifies the request owner.
func (s *MicroCollabStore) CreateOffer(offeredBy string, params schema.OfferParams) (*schema.Offer, error) {
	s.simulate(writeLatency)

	var request *schema.Request
	for _, r := range s.loadRequests() {
		if r.ID == params.RequestID {
			req := r
			request = &req
			break
		}
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	now := time.Now().UTC()
	o := schema.Offer{
		ID:           uuid.New().String(),
		RequestID:    params.RequestID,
		OfferedBy:    offeredBy,
		Message:      params.Message,
		ProposedTime: params.ProposedTime,
		ProposedRate: params.ProposedRate,
		Status:       schema.OfferPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	offers := s.loadOffers()
	offers = append(offers, o)
	s.saveOffers(offers)

	s.pushNotification(request.CreatedBy, schema.NotifyOfferReceived,
		"/requests/"+request.ID,
		map[string]interface{}{"Title": request.Title})

	s.publish(event.OfferCreated, o)
	return &o, nil
}

// AcceptOffer accepts one offer and declines its siblings, moves the
// parent request to in_progress and creates the session for the pair.
// The three writes happen sequentially with no rollback: a failure in
// between leaves the stores inconsistent, matching the mock contract.
func (s *MicroCollabStore) AcceptOffer(offerID string) (*schema.Session, error) {
	s.simulate(writeLatency)

	offers := s.loadOffers()

	var accepted *schema.Offer
	for i := range offers {
		if offers[i].ID == offerID {
			accepted = &offers[i]
			break
		}
	}
	if accepted == nil {
		return nil, ErrOfferNotFound
	}

	now := time.Now().UTC()
	accepted.Status = schema.OfferAccepted
	accepted.UpdatedAt = now
	for i := range offers {
		if offers[i].RequestID == accepted.RequestID && offers[i].ID != offerID {
			offers[i].Status = schema.OfferDeclined
			offers[i].UpdatedAt = now
		}
	}
	s.saveOffers(offers)

	request, err := s.setRequestStatus(accepted.RequestID, schema.RequestInProgress)
	if err != nil {
		return nil, err
	}

	session := schema.Session{
		ID:             uuid.New().String(),
		RequestID:      request.ID,
		OfferID:        accepted.ID,
		HelperID:       accepted.OfferedBy,
		RequesterID:    request.CreatedBy,
		Status:         schema.SessionScheduled,
		ScheduledStart: accepted.ProposedTime,
	}
	sessions := s.loadSessions()
	sessions = append(sessions, session)
	s.saveSessions(sessions)

	s.pushNotification(accepted.OfferedBy, schema.NotifyOfferAccepted,
		"/sessions/"+session.ID,
		map[string]interface{}{"Title": request.Title})

	s.publish(event.OfferAccepted, *accepted)
	s.publish(event.SessionCreated, session)
	return &session, nil
}

// DeclineOffer marks a single offer declined and notifies the helper.
func (s *MicroCollabStore) DeclineOffer(offerID string) (*schema.Offer, error) {
	s.simulate(writeLatency)

	offers := s.loadOffers()
	for i := range offers {
		if offers[i].ID != offerID {
			continue
		}

		offers[i].Status = schema.OfferDeclined
		offers[i].UpdatedAt = time.Now().UTC()
		s.saveOffers(offers)

		s.pushNotification(offers[i].OfferedBy, schema.NotifyOfferDeclined,
			"/requests/"+offers[i].RequestID, nil)

		s.publish(event.OfferDeclined, offers[i])
		return &offers[i], nil
	}

	return nil, ErrOfferNotFound
}
