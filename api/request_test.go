package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/microcollab/microcollab-api/api/mocks"
	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func TestListRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().ListRequests(schema.RequestFilter{
		Tags: []string{"React"},
		Sort: schema.SortUrgent,
	}).Return([]schema.Request{
		{ID: "r1", Title: "Fix my React hooks", Urgency: schema.UrgencyCritical},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listRequests)

	req := httptest.NewRequest("GET", "/?tags=React&sort=urgent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.Request `json:"requests"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Requests, 1)
	assert.Equal(t, "r1", jResp.Requests[0].ID)
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().GetRequest("missing").Return(nil, store.ErrRequestNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:requestID", s.getRequest)

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), jResp.Code)
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMicroCollabCore(ctl)

	s := Server{store: m}

	m.EXPECT().CreateRequest("u1", gomock.Any()).Return(&schema.Request{
		ID:     "r9",
		Title:  "Review my Dockerfile",
		Status: schema.RequestOpen,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	router.POST("/", s.createRequest)

	body := `{"title":"Review my Dockerfile","tags":["Docker"],"urgency":"normal","mode":"async"}`
	req := httptest.NewRequest("POST", "/", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Request schema.Request `json:"request"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "r9", jResp.Request.ID)
	assert.Equal(t, schema.RequestOpen, jResp.Request.Status)
}
