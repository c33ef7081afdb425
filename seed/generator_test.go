package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func TestGenerateUniverseShape(t *testing.T) {
	u := Generate()

	assert.Len(t, u.Users, 10)
	assert.Len(t, u.Requests, 20)
	assert.Len(t, u.Offers, 15)
	assert.Len(t, u.Sessions, 5)
	assert.NotEmpty(t, u.Messages)
	assert.NotEmpty(t, u.Notifications)

	// the demo login always exists
	found := false
	for _, user := range u.Users {
		if user.Email == DemoEmail {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGeneratedReferencesHold(t *testing.T) {
	u := Generate()

	users := map[string]bool{}
	for _, user := range u.Users {
		users[user.ID] = true
	}
	requests := map[string]schema.RequestStatus{}
	for _, r := range u.Requests {
		assert.True(t, users[r.CreatedBy], "request creator missing")
		requests[r.ID] = r.Status
	}
	for _, o := range u.Offers {
		assert.True(t, users[o.OfferedBy], "offer author missing")
		_, ok := requests[o.RequestID]
		assert.True(t, ok, "offer references unknown request")
	}
	for _, sess := range u.Sessions {
		// a session means its request left the open state
		assert.NotEqual(t, schema.RequestOpen, requests[sess.RequestID])
	}
}

func TestPopulateOnlyOnce(t *testing.T) {
	kv := store.NewMemoryKV()

	assert.True(t, Populate(kv))
	assert.False(t, Populate(kv), "populate must not overwrite existing data")
}

func TestResetReplacesData(t *testing.T) {
	kv := store.NewMemoryKV()
	Populate(kv)

	before := []schema.User{}
	kv.Get(schema.UsersKey, &before)

	Reset(kv)

	after := []schema.User{}
	kv.Get(schema.UsersKey, &after)
	assert.Len(t, after, 10)
	assert.NotEqual(t, before[0].ID, after[0].ID, "reset should generate fresh data")
}
