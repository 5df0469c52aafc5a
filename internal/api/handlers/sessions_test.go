package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scamtrap/honeypot-service/internal/api/dto"
	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/store"
	"github.com/scamtrap/honeypot-service/tests/mocks"
	"github.com/scamtrap/honeypot-service/tests/testutils"
)

type sessionsFixture struct {
	docdb   *mocks.MockDocDBClient
	cache   *mocks.MockCacheClient
	handler *SessionsHandler
}

func newSessionsFixture(t *testing.T) *sessionsFixture {
	t.Helper()

	f := &sessionsFixture{
		docdb: mocks.NewMockDocDBClient(),
		cache: &mocks.MockCacheClient{},
	}

	st, err := store.New(&store.Config{
		DocDBClient: f.docdb,
		CacheClient: f.cache,
		TTL:         time.Minute,
	})
	require.NoError(t, err)

	f.handler = NewSessionsHandler(st)
	return f
}

func TestGetSession_Found(t *testing.T) {
	// Arrange
	f := newSessionsFixture(t)

	session := models.NewSession("session-1", map[string]interface{}{"channel": "sms"})
	session.ConfirmScam()
	f.cache.On("Get", mock.Anything, "session:session-1").Return(nil, nil)
	f.docdb.SessionsCollection.On("Get", mock.Anything, "session-1").Return(session, nil)

	c, w := testutils.NewTestContextWithRequest(http.MethodGet, "/api/v1/honeypot/sessions/session-1", nil)
	testutils.SetPathParams(c, map[string]string{"sessionId": "session-1"})

	// Act
	f.handler.GetSession(c)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var resp models.Session
	testutils.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "session-1", resp.SessionID)
	assert.True(t, resp.ScamDetected)
}

func TestGetSession_NotFound(t *testing.T) {
	f := newSessionsFixture(t)

	f.cache.On("Get", mock.Anything, "session:missing").Return(nil, nil)
	f.docdb.SessionsCollection.On("Get", mock.Anything, "missing").Return(nil, nil)

	c, w := testutils.NewTestContextWithRequest(http.MethodGet, "/api/v1/honeypot/sessions/missing", nil)
	testutils.SetPathParams(c, map[string]string{"sessionId": "missing"})

	f.handler.GetSession(c)

	testutils.AssertStatusCode(t, http.StatusNotFound, w)

	var resp dto.ErrorResponse
	testutils.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, domainerrors.ErrCodeNotFound, resp.Code)
}

func TestListEvents_DefaultsAndResponse(t *testing.T) {
	f := newSessionsFixture(t)

	events := []*models.TurnEvent{
		models.NewTurnEvent("session-1", 2, true, true, 1, false),
	}
	f.docdb.EventsCollection.On("ListBySession", mock.Anything, "session-1", int64(50), int64(0)).
		Return(events, nil)

	c, w := testutils.NewTestContextWithRequest(http.MethodGet, "/api/v1/honeypot/sessions/session-1/events", nil)
	testutils.SetPathParams(c, map[string]string{"sessionId": "session-1"})

	f.handler.ListEvents(c)

	testutils.AssertStatusCode(t, http.StatusOK, w)

	var resp dto.ListEventsResponse
	testutils.ParseJSONResponse(t, w, &resp)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, int64(50), resp.Limit)
	assert.Equal(t, "session-1", resp.Events[0].SessionID)
}

func TestListEvents_RejectsOversizedLimit(t *testing.T) {
	f := newSessionsFixture(t)

	c, w := testutils.NewTestContextWithRequest(http.MethodGet,
		"/api/v1/honeypot/sessions/session-1/events?limit=500", nil)
	testutils.SetPathParams(c, map[string]string{"sessionId": "session-1"})

	f.handler.ListEvents(c)

	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
	f.docdb.EventsCollection.AssertNotCalled(t, "ListBySession",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
