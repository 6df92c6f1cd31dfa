package lobby

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/YevhenPoshtak/seabattle/pkg/wire"
)

//Actions exchanged before the binary settings handshake. The lobby
//envelope is JSON over text messages; once Start is sent the connection
//switches to the fixed-width game protocol.
const (
	Join  = "join"
	Start = "start"
	Retry = "retry"
	Exit  = "exit"
)

type Request struct {
	PlayerId string                 `json:"playerId"`
	Action   string                 `json:"action"`
	Args     map[string]interface{} `json:"args"`
}

func BuildRequest(id string, action string, args map[string]interface{}) Request {
	return Request{
		PlayerId: id,
		Action:   action,
		Args:     args,
	}
}

type Response struct {
	Action  string                 `json:"action"`
	Message string                 `json:"message"`
	Args    map[string]interface{} `json:"args"`
}

func BuildResponse(action string, message string, args map[string]interface{}) Response {
	return Response{
		Action:  action,
		Message: message,
		Args:    args,
	}
}

//SendRequest writes one lobby request to the connection.
func SendRequest(conn wire.Connection, request Request) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

//ReadRequest reads one lobby request from the connection.
func ReadRequest(conn wire.Connection) (Request, error) {
	var request Request
	_, payload, err := conn.ReadMessage()
	if err != nil {
		return request, err
	}
	if err := json.Unmarshal(payload, &request); err != nil {
		return request, fmt.Errorf("malformed lobby request: %w", err)
	}
	return request, nil
}

//SendResponse writes one lobby response to the connection.
func SendResponse(conn wire.Connection, response Response) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

//ReadResponse reads one lobby response from the connection.
func ReadResponse(conn wire.Connection) (Response, error) {
	var response Response
	_, payload, err := conn.ReadMessage()
	if err != nil {
		return response, err
	}
	if err := json.Unmarshal(payload, &response); err != nil {
		return response, fmt.Errorf("malformed lobby response: %w", err)
	}
	return response, nil
}
