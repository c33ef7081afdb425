package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/microcollab/microcollab-api/api/mocks"
	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestAcceptOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().AcceptOffer("o1").Return(&schema.Session{
		ID:        "s1",
		RequestID: "r1",
		OfferID:   "o1",
		Status:    schema.SessionScheduled,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:offerID/accept", s.acceptOffer)

	req := httptest.NewRequest("PATCH", "/o1/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Session schema.Session `json:"session"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "s1", jResp.Session.ID)
	assert.Equal(t, schema.SessionScheduled, jResp.Session.Status)
}

func TestAcceptOfferNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().AcceptOffer("missing").Return(nil, store.ErrOfferNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:offerID/accept", s.acceptOffer)

	req := httptest.NewRequest("PATCH", "/missing/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1210), jResp.Code)
}

func TestCreateOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().CreateOffer("u2", gomock.Any()).Return(&schema.Offer{
		ID:        "o9",
		RequestID: "r1",
		OfferedBy: "u2",
		Status:    schema.OfferPending,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("userID", "u2") })
	router.POST("/", s.createOffer)

	body := `{"request_id":"r1","message":"happy to help"}`
	req := httptest.NewRequest("POST", "/", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Offer schema.Offer `json:"offer"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "o9", jResp.Offer.ID)
	assert.Equal(t, schema.OfferPending, jResp.Offer.Status)
}
