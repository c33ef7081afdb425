package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

// DemoEmail is the login of the first seeded user, kept stable so the
// mock auth flow always has a known account.
const DemoEmail = "demo@microcollab.dev"

var skillPool = []string{
	"React", "TypeScript", "Go", "Python", "PostgreSQL",
	"Docker", "Kubernetes", "GraphQL", "Rust", "AWS",
}

var timezones = []string{
	"UTC", "America/New_York", "America/Los_Angeles",
	"Europe/Berlin", "Europe/London", "Asia/Tokyo", "Asia/Kolkata",
}

var requestTemplates = []struct {
	title string
	tags  []string
}{
	{"Debug a React useEffect render loop", []string{"React", "TypeScript"}},
	{"Review my Go service for goroutine leaks", []string{"Go"}},
	{"Pair on a PostgreSQL query plan gone bad", []string{"PostgreSQL"}},
	{"Help me containerize a Python worker", []string{"Python", "Docker"}},
	{"Untangle a Kubernetes ingress config", []string{"Kubernetes", "Docker"}},
	{"Design a GraphQL schema for a social feed", []string{"GraphQL", "TypeScript"}},
	{"Walk me through Rust lifetimes", []string{"Rust"}},
	{"Set up CI for a monorepo on AWS", []string{"AWS", "Docker"}},
	{"Migrate a REST API to GraphQL", []string{"GraphQL", "Go"}},
	{"Optimize slow React rendering on a big table", []string{"React"}},
}

var offerOpeners = []string{
	"I ran into exactly this last month.",
	"Happy to help, this is my day job.",
	"I have a free slot this week.",
	"I maintain a library in this space.",
}

// Universe is one generated seed data set.
type Universe struct {
	Users         []schema.User
	Requests      []schema.Request
	Offers        []schema.Offer
	Sessions      []schema.Session
	Messages      []schema.Message
	Notifications []schema.Notification
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

func pickSkills(n int) []string {
	picked := append([]string{}, skillPool...)
	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:n]
}

func randomUrgency() schema.Urgency {
	switch rand.Intn(10) {
	case 0, 1:
		return schema.UrgencyCritical
	case 2, 3, 4:
		return schema.UrgencyLow
	default:
		return schema.UrgencyNormal
	}
}

// Generate builds a fresh universe: 10 users, 20 requests, 15 offers,
// 5 sessions plus messages and notifications. Structure is fixed,
// content is random on every call.
func Generate() *Universe {
	u := &Universe{}

	for i := 0; i < 10; i++ {
		id := uuid.New().String()
		role := schema.RoleBoth
		if i%3 == 1 {
			role = schema.RoleHelper
		} else if i%3 == 2 {
			role = schema.RoleRequester
		}

		user := schema.User{
			ID:                 id,
			Email:              gofakeit.Email(),
			Name:               gofakeit.Name(),
			Bio:                gofakeit.Sentence(12),
			Skills:             pickSkills(2 + rand.Intn(3)),
			Timezone:           pick(timezones),
			AvailabilityStatus: schema.UserAvailable,
			AvatarURL:          fmt.Sprintf("https://i.pravatar.cc/150?u=%s", id),
			Rating:             float64(int(gofakeit.Float64Range(3.5, 5.0)*10)) / 10,
			SessionsCompleted:  rand.Intn(40),
			Role:               role,
			CreatedAt:          time.Now().UTC().Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		if rand.Intn(2) == 0 {
			rate := 20 + rand.Intn(130)
			user.HourlyRate = &rate
		}
		if i == 0 {
			user.Email = DemoEmail
		}
		if rand.Intn(4) == 0 {
			user.AvailabilityStatus = schema.UserBusy
		}
		u.Users = append(u.Users, user)
	}

	for i := 0; i < 20; i++ {
		tmpl := requestTemplates[rand.Intn(len(requestTemplates))]
		created := time.Now().UTC().Add(-time.Duration(rand.Intn(14*24)) * time.Hour)
		mode := schema.ModeLive
		if rand.Intn(2) == 0 {
			mode = schema.ModeAsync
		}

		r := schema.Request{
			ID:            uuid.New().String(),
			Title:         tmpl.title,
			Description:   gofakeit.Paragraph(1, 3, 10, " "),
			Tags:          tmpl.tags,
			DurationHours: 1 + rand.Intn(5),
			Urgency:       randomUrgency(),
			Mode:          mode,
			BudgetType:    schema.BudgetHourly,
			Status:        schema.RequestOpen,
			CreatedBy:     u.Users[rand.Intn(len(u.Users))].ID,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		if rand.Intn(3) != 0 {
			budget := 25 + rand.Intn(175)
			r.Budget = &budget
			if rand.Intn(2) == 0 {
				r.BudgetType = schema.BudgetFixed
			}
		}
		u.Requests = append(u.Requests, r)
	}

	for i := 0; i < 15; i++ {
		request := u.Requests[rand.Intn(len(u.Requests))]
		// the first five offers land on distinct requests so the
		// accepted pairs below don't collide
		if i < 5 {
			request = u.Requests[i]
		}
		created := request.CreatedAt.Add(time.Duration(1+rand.Intn(12)) * time.Hour)

		o := schema.Offer{
			ID:           uuid.New().String(),
			RequestID:    request.ID,
			OfferedBy:    u.Users[rand.Intn(len(u.Users))].ID,
			Message:      pick(offerOpeners) + " " + gofakeit.Sentence(10),
			ProposedTime: time.Now().UTC().Add(time.Duration(6+rand.Intn(72)) * time.Hour),
			Status:       schema.OfferPending,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
		if rand.Intn(2) == 0 {
			rate := 20 + rand.Intn(120)
			o.ProposedRate = &rate
		}
		u.Offers = append(u.Offers, o)
	}

	// the first five offers become accepted pairs with a session each
	for i := 0; i < 5 && i < len(u.Offers); i++ {
		offer := &u.Offers[i]
		offer.Status = schema.OfferAccepted

		var request *schema.Request
		for j := range u.Requests {
			if u.Requests[j].ID == offer.RequestID {
				request = &u.Requests[j]
				break
			}
		}
		if request == nil {
			continue
		}
		request.Status = schema.RequestInProgress

		sess := schema.Session{
			ID:             uuid.New().String(),
			RequestID:      request.ID,
			OfferID:        offer.ID,
			HelperID:       offer.OfferedBy,
			RequesterID:    request.CreatedBy,
			Status:         schema.SessionScheduled,
			ScheduledStart: offer.ProposedTime,
		}
		switch i % 3 {
		case 1:
			start := time.Now().UTC().Add(-time.Duration(10+rand.Intn(50)) * time.Minute)
			sess.Status = schema.SessionActive
			sess.ActualStart = &start
		case 2:
			start := time.Now().UTC().Add(-time.Duration(2+rand.Intn(48)) * time.Hour)
			end := start.Add(time.Duration(30+rand.Intn(90)) * time.Minute)
			sess.Status = schema.SessionCompleted
			sess.ActualStart = &start
			sess.EndTime = &end
			sess.DurationMinutes = int(end.Sub(start).Minutes())
			request.Status = schema.RequestCompleted
		}
		u.Sessions = append(u.Sessions, sess)

		for m := 0; m < 2+rand.Intn(4); m++ {
			sender := sess.HelperID
			if m%2 == 0 {
				sender = sess.RequesterID
			}
			u.Messages = append(u.Messages, schema.Message{
				ID:        uuid.New().String(),
				SessionID: sess.ID,
				SenderID:  sender,
				Content:   gofakeit.Sentence(8 + rand.Intn(10)),
				Type:      schema.MessageText,
				CreatedAt: sess.ScheduledStart.Add(time.Duration(m) * time.Minute),
			})
		}

		u.Notifications = append(u.Notifications, schema.Notification{
			ID:        uuid.New().String(),
			UserID:    offer.OfferedBy,
			Type:      schema.NotifyOfferAccepted,
			Title:     "Your offer was accepted",
			Content:   fmt.Sprintf("Your offer on %q was accepted.", request.Title),
			Link:      "/sessions/" + sess.ID,
			CreatedAt: offer.UpdatedAt,
		})
	}

	return u
}

// Populate writes a generated universe into the storage when it is
// still empty. It reports whether seeding happened.
func Populate(kv store.KV) bool {
	if kv.Has(schema.UsersKey) {
		return false
	}

	write(kv, Generate())
	log.WithField("prefix", "seed").Info("populated mock data")
	return true
}

// Reset wipes the marketplace keys and seeds a fresh universe.
func Reset(kv store.KV) {
	for _, key := range []string{
		schema.UsersKey, schema.RequestsKey, schema.OffersKey,
		schema.SessionsKey, schema.MessagesKey, schema.NotificationsKey,
	} {
		kv.Delete(key)
	}
	write(kv, Generate())
	log.WithField("prefix", "seed").Info("reset mock data")
}

func write(kv store.KV, u *Universe) {
	kv.Set(schema.UsersKey, u.Users)
	kv.Set(schema.RequestsKey, u.Requests)
	kv.Set(schema.OffersKey, u.Offers)
	kv.Set(schema.SessionsKey, u.Sessions)
	kv.Set(schema.MessagesKey, u.Messages)
	kv.Set(schema.NotificationsKey, u.Notifications)
}
