package store

import (
	"math/rand"
	"time"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

// MicroCollabCore is the marketplace datastore.
type MicroCollabCore interface {
	Ping() error

	// Request
	ListRequests(filter schema.RequestFilter) ([]schema.Request, error)
	GetRequest(id string) (*schema.RequestDetail, error)
	CreateRequest(createdBy string, params schema.RequestParams) (*schema.Request, error)
	UpdateRequest(id string, update schema.RequestUpdate) (*schema.Request, error)
	DeleteRequest(id string) error

	// Offer
	ListOffers(requestID string) ([]schema.OfferDetail, error)
	CreateOffer(offeredBy string, params schema.OfferParams) (*schema.Offer, error)
	AcceptOffer(offerID string) (*schema.Session, error)
	DeclineOffer(offerID string) (*schema.Offer, error)

	// Session
	GetSession(id string) (*schema.SessionDetail, error)
	ListSessions(userID string) ([]schema.Session, error)
	StartSession(id string) (*schema.Session, error)
	EndSession(id string, notes string) (*schema.Session, error)
	CancelSession(id string) (*schema.Session, error)

	// Message
	ListMessages(sessionID string) ([]schema.Message, error)
	SendMessage(sessionID, senderID, content string, messageType schema.MessageType) (*schema.Message, error)

	// User
	GetUser(id string) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	ListHelpers(filter schema.HelperFilter) ([]schema.User, error)
	UpdateUser(id string, update schema.UserUpdate) (*schema.User, error)

	// Notification
	ListNotifications(userID string) ([]schema.Notification, error)
	CountUnread(userID string) (int, error)
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead(userID string) error
}

// Artificial latency applied per operation class, emulating a remote
// backend for UI loading states. Disabled when the store is constructed
// with latency off.
const (
	readLatency   = 100 * time.Millisecond
	writeLatency  = 200 * time.Millisecond
	deleteLatency = 150 * time.Millisecond
)

// MicroCollabStore is an implementation of MicroCollabCore over a KV
// storage. Every operation reads the whole entity list, mutates it in
// memory and writes it back. Cross-entity updates are sequential writes
// with no rollback.
type MicroCollabStore struct {
	kv      KV
	bus     *event.Bus
	latency bool
}

func NewMicroCollabStore(kv KV, bus *event.Bus, latency bool) *MicroCollabStore {
	return &MicroCollabStore{
		kv:      kv,
		bus:     bus,
		latency: latency,
	}
}

// Ping is to check the storage health status
func (s *MicroCollabStore) Ping() error {
	s.kv.Has(schema.UsersKey)
	return nil
}

// simulate sleeps for a randomized duration around the given base.
func (s *MicroCollabStore) simulate(base time.Duration) {
	if !s.latency {
		return
	}
	time.Sleep(base/2 + time.Duration(rand.Int63n(int64(base))))
}

func (s *MicroCollabStore) publish(name string, entity interface{}) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(name, entity)
}
