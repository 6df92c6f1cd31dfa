package lobby

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YevhenPoshtak/seabattle/pkg/wire/automock"
)

func TestSendRequest(t *testing.T) {
	// given
	request := BuildRequest("player-1", Join, map[string]interface{}{"name": "alice"})
	payload, err := json.Marshal(request)
	require.NoError(t, err)

	conn := &automock.Connection{}
	conn.On("WriteMessage", websocket.TextMessage, payload).Return(nil)

	// when
	err = SendRequest(conn, request)

	// then
	require.NoError(t, err)
	conn.AssertExpectations(t)
}

func TestReadRequest(t *testing.T) {
	t.Run("decodes a request envelope", func(t *testing.T) {
		// given
		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(websocket.TextMessage,
			[]byte(`{"playerId":"player-1","action":"join","args":{"name":"alice"}}`), nil)

		// when
		request, err := ReadRequest(conn)

		// then
		require.NoError(t, err)
		assert.Equal(t, "player-1", request.PlayerId)
		assert.Equal(t, Join, request.Action)
		assert.Equal(t, "alice", request.Args["name"])
	})

	t.Run("malformed payload", func(t *testing.T) {
		// given
		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(websocket.TextMessage, []byte("not json"), nil)

		// when
		_, err := ReadRequest(conn)

		// then
		assert.ErrorContains(t, err, "malformed lobby request")
	})

	t.Run("read failure", func(t *testing.T) {
		// given
		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(0, []byte(nil), errors.New("closed"))

		// when
		_, err := ReadRequest(conn)

		// then
		assert.Error(t, err)
	})
}

func TestResponseRoundTrip(t *testing.T) {
	// given
	response := BuildResponse(Start, "match ready", map[string]interface{}{"matchId": "m-1"})
	payload, err := json.Marshal(response)
	require.NoError(t, err)

	conn := &automock.Connection{}
	conn.On("WriteMessage", websocket.TextMessage, payload).Return(nil)
	conn.On("ReadMessage").Return(websocket.TextMessage, payload, nil)

	// when
	sendErr := SendResponse(conn, response)
	got, readErr := ReadResponse(conn)

	// then
	require.NoError(t, sendErr)
	require.NoError(t, readErr)
	assert.Equal(t, response, got)
	conn.AssertExpectations(t)
}

func TestSendRequest_WriteFailure(t *testing.T) {
	// given
	conn := &automock.Connection{}
	conn.On("WriteMessage", websocket.TextMessage, mock.Anything).Return(errors.New("broken pipe"))

	// when
	err := SendRequest(conn, BuildRequest("player-1", Exit, nil))

	// then
	assert.Error(t, err)
}
