package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YevhenPoshtak/seabattle/pkg/lobby"
	"github.com/YevhenPoshtak/seabattle/pkg/wire"
	"github.com/YevhenPoshtak/seabattle/pkg/wire/automock"
)

func TestAdmitPeer(t *testing.T) {
	t.Run("answers a join request with start and the match id", func(t *testing.T) {
		// given
		join, err := json.Marshal(lobby.BuildRequest("player-1", lobby.Join, nil))
		require.NoError(t, err)

		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(websocket.TextMessage, join, nil)
		var sent []byte
		conn.On("WriteMessage", websocket.TextMessage, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).([]byte)
		}).Return(nil)

		// when
		err = admitPeer(conn, "match-42")

		// then
		require.NoError(t, err)
		var response lobby.Response
		require.NoError(t, json.Unmarshal(sent, &response))
		assert.Equal(t, lobby.Start, response.Action)
		assert.Equal(t, "match-42", response.Args["matchId"])
		conn.AssertExpectations(t)
	})

	t.Run("answers anything else with retry and drops the peer", func(t *testing.T) {
		// given
		exit, err := json.Marshal(lobby.BuildRequest("player-1", lobby.Exit, nil))
		require.NoError(t, err)

		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(websocket.TextMessage, exit, nil)
		var sent []byte
		conn.On("WriteMessage", websocket.TextMessage, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).([]byte)
		}).Return(nil)

		// when
		err = admitPeer(conn, "match-42")

		// then
		require.ErrorIs(t, err, wire.ErrConnectionLost)
		var response lobby.Response
		require.NoError(t, json.Unmarshal(sent, &response))
		assert.Equal(t, lobby.Retry, response.Action)
	})

	t.Run("propagates a failed read", func(t *testing.T) {
		// given
		conn := &automock.Connection{}
		conn.On("ReadMessage").Return(0, []byte(nil), errors.New("closed"))

		// when
		err := admitPeer(conn, "match-42")

		// then
		assert.Error(t, err)
	})
}
