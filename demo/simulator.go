package demo

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/microcollab/microcollab-api/schema"
)

type EventType string

const (
	EventNewRequest       EventType = "new_request"
	EventNewOffer         EventType = "new_offer"
	EventSessionStarted   EventType = "session_started"
	EventSessionCompleted EventType = "session_completed"
)

// Event is one entry of the simulated activity feed.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Ref       string    `json:"ref"`
}

type Listener func(Event)

// Summary is a point-in-time count of the simulated world.
type Summary struct {
	Requests   int `json:"requests"`
	Offers     int `json:"offers"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

const DefaultInterval = 45 * time.Second

var demoTitles = []string{
	"Fix a flaky integration test",
	"Pair on a tricky SQL migration",
	"Review a Terraform module",
	"Debug a memory leak in production",
	"Mentor session: system design basics",
	"Set up observability for a new service",
}

// Simulator drives a fake marketplace for the demo surface. It keeps
// its own in-memory world, never touches the real store, and never
// removes anything: requests and offers only accumulate.
type Simulator struct {
	mu           sync.Mutex
	requests     map[string]*schema.Request
	offers       map[string]*schema.Offer
	events       []Event
	listeners    map[int]Listener
	nextListener int

	interval time.Duration
	scope    tally.Scope
	stop     chan struct{}
	running  bool
}

// NewSimulator seeds the demo world with 10-15 requests carrying up to
// three offers each. A nil scope falls back to a no-op one.
func NewSimulator(interval time.Duration, scope tally.Scope) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if scope == nil {
		scope = tally.NoopScope
	}

	s := &Simulator{
		requests:  make(map[string]*schema.Request),
		offers:    make(map[string]*schema.Offer),
		listeners: make(map[int]Listener),
		interval:  interval,
		scope:     scope,
	}

	for i := 0; i < 10+rand.Intn(6); i++ {
		r := s.newRequest()
		for j := 0; j < rand.Intn(4); j++ {
			s.newOffer(r.ID)
		}
	}

	return s
}

// Start launches the auto simulation ticker. Starting twice is a no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	log.WithField("prefix", "demo").Info("auto simulation started")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the ticker. The accumulated world stays around.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	log.WithField("prefix", "demo").Info("auto simulation stopped")
}

// AddListener registers a feed subscriber and returns its unsubscribe
// function. Listeners are invoked synchronously on the ticking
// goroutine, so a slow listener delays the next event.
func (s *Simulator) AddListener(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Tick runs one simulation step: a weighted random marketplace event.
func (s *Simulator) Tick() {
	s.mu.Lock()

	var e Event
	switch roll := rand.Float64(); {
	case roll < 0.40:
		e = s.spawnRequest()
	case roll < 0.75:
		e = s.spawnOffer()
	case roll < 0.90:
		e = s.startSession()
	default:
		e = s.completeSession()
	}

	s.events = append(s.events, e)
	s.scope.Counter(string(e.Type)).Inc(1)

	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(e)
	}
}

// Feed returns a copy of the append-only event list.
func (s *Simulator) Feed() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.events...)
}

func (s *Simulator) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Requests: len(s.requests),
		Offers:   len(s.offers),
	}
	for _, r := range s.requests {
		switch r.Status {
		case schema.RequestInProgress:
			sum.InProgress++
		case schema.RequestCompleted:
			sum.Completed++
		}
	}
	return sum
}

func (s *Simulator) newRequest() *schema.Request {
	urgency := schema.UrgencyNormal
	switch rand.Intn(5) {
	case 0:
		urgency = schema.UrgencyCritical
	case 1:
		urgency = schema.UrgencyLow
	}

	r := &schema.Request{
		ID:            uuid.New().String(),
		Title:         demoTitles[rand.Intn(len(demoTitles))],
		DurationHours: 1 + rand.Intn(4),
		Urgency:       urgency,
		Mode:          schema.ModeLive,
		Status:        schema.RequestOpen,
		CreatedBy:     gofakeit.Name(),
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	s.requests[r.ID] = r
	return r
}

func (s *Simulator) newOffer(requestID string) *schema.Offer {
	o := &schema.Offer{
		ID:        uuid.New().String(),
		RequestID: requestID,
		OfferedBy: gofakeit.Name(),
		Message:   gofakeit.Sentence(8),
		Status:    schema.OfferPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.offers[o.ID] = o
	return o
}

func (s *Simulator) spawnRequest() Event {
	r := s.newRequest()
	return Event{
		ID:        uuid.New().String(),
		Type:      EventNewRequest,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("%s posted %q", r.CreatedBy, r.Title),
		Ref:       r.ID,
	}
}

func (s *Simulator) spawnOffer() Event {
	request := s.pickRequest(schema.RequestOpen, false)
	if request == nil {
		return s.spawnRequest()
	}

	o := s.newOffer(request.ID)
	return Event{
		ID:        uuid.New().String(),
		Type:      EventNewOffer,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("%s offered to help with %q", o.OfferedBy, request.Title),
		Ref:       o.ID,
	}
}

func (s *Simulator) startSession() Event {
	request := s.pickRequest(schema.RequestOpen, true)
	if request == nil {
		return s.spawnOffer()
	}

	request.Status = schema.RequestInProgress
	request.UpdatedAt = time.Now().UTC()
	return Event{
		ID:        uuid.New().String(),
		Type:      EventSessionStarted,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("a session started on %q", request.Title),
		Ref:       request.ID,
	}
}

func (s *Simulator) completeSession() Event {
	request := s.pickRequest(schema.RequestInProgress, false)
	if request == nil {
		return s.startSession()
	}

	request.Status = schema.RequestCompleted
	request.UpdatedAt = time.Now().UTC()
	return Event{
		ID:        uuid.New().String(),
		Type:      EventSessionCompleted,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("a session on %q wrapped up", request.Title),
		Ref:       request.ID,
	}
}

// pickRequest returns a random request in the given status, optionally
// restricted to ones that have at least one offer.
func (s *Simulator) pickRequest(status schema.RequestStatus, withOffer bool) *schema.Request {
	candidates := []*schema.Request{}
	for _, r := range s.requests {
		if r.Status != status {
			continue
		}
		if withOffer && !s.hasOffer(r.ID) {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates[rand.Intn(len(candidates))]
}

func (s *Simulator) hasOffer(requestID string) bool {
	for _, o := range s.offers {
		if o.RequestID == requestID {
			return true
		}
	}
	return false
}
