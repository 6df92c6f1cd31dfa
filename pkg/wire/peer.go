package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/YevhenPoshtak/seabattle/pkg/game"
)

//ErrConnectionLost marks any send or receive failure during remote play.
//The first failure is terminal for the session: the current game is
//abandoned and nothing is retried.
var ErrConnectionLost = errors.New("connection lost")

//DefaultReadTimeout bounds every blocking receive. A peer silent past the
//timeout is assumed dead.
const DefaultReadTimeout = 60 * time.Second

//go:generate mockery --name=Connection --output=automock --outpkg=automock --case=underscore
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	SetReadDeadline(t time.Time) error
	Close() error
}

const (
	outcomeMissByte = 'm'
	outcomeHitByte  = 'h'
	outcomeSunkByte = 's'
)

//Peer exchanges the fixed-format game messages with the remote side. All
//integers travel as 4-byte native-endian values, outcomes as one ASCII
//byte; message order is fully determined by the turn protocol.
type Peer struct {
	conn        Connection
	readTimeout time.Duration
}

func NewPeer(conn Connection) *Peer {
	return &Peer{
		conn:        conn,
		readTimeout: DefaultReadTimeout,
	}
}

//SetReadTimeout overrides the receive timeout. Values <= 0 are ignored.
func (p *Peer) SetReadTimeout(timeout time.Duration) {
	if timeout > 0 {
		p.readTimeout = timeout
	}
}

func (p *Peer) Close() error {
	return p.conn.Close()
}

func (p *Peer) send(payload []byte) error {
	if err := p.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	return nil
}

func (p *Peer) receive(want int) ([]byte, error) {
	if err := p.conn.SetReadDeadline(time.Now().Add(p.readTimeout)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	_, payload, err := p.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	if len(payload) != want {
		return nil, fmt.Errorf("%w: expected %d byte message, got %d", ErrConnectionLost, want, len(payload))
	}
	return payload, nil
}

func putInt32(dst []byte, v int) {
	binary.NativeEndian.PutUint32(dst, uint32(int32(v)))
}

func getInt32(src []byte) int {
	return int(int32(binary.NativeEndian.Uint32(src)))
}

//SendSettings transmits the one-time host handshake: board size then
//shots per turn.
func (p *Peer) SendSettings(boardSize, shotsPerTurn int) error {
	payload := make([]byte, 8)
	putInt32(payload[0:4], boardSize)
	putInt32(payload[4:8], shotsPerTurn)
	return p.send(payload)
}

//ReceiveSettings receives the host's handshake on the joining side.
func (p *Peer) ReceiveSettings() (boardSize, shotsPerTurn int, err error) {
	payload, err := p.receive(8)
	if err != nil {
		return 0, 0, err
	}
	return getInt32(payload[0:4]), getInt32(payload[4:8]), nil
}

//SendShotCount announces how many shots the local salvo carries.
func (p *Peer) SendShotCount(count int) error {
	payload := make([]byte, 4)
	putInt32(payload, count)
	return p.send(payload)
}

func (p *Peer) ReceiveShotCount() (int, error) {
	payload, err := p.receive(4)
	if err != nil {
		return 0, err
	}
	return getInt32(payload), nil
}

//SendShot transmits one attack coordinate. The sender must wait for the
//outcome reply before sending the next shot.
func (p *Peer) SendShot(shot game.Position) error {
	payload := make([]byte, 8)
	putInt32(payload[0:4], shot.X)
	putInt32(payload[4:8], shot.Y)
	return p.send(payload)
}

func (p *Peer) ReceiveShot() (game.Position, error) {
	payload, err := p.receive(8)
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{X: getInt32(payload[0:4]), Y: getInt32(payload[4:8])}, nil
}

//SendOutcome replies to a single received shot with one outcome byte.
func (p *Peer) SendOutcome(outcome game.Outcome) error {
	var b byte
	switch outcome {
	case game.OutcomeHit:
		b = outcomeHitByte
	case game.OutcomeSunk:
		b = outcomeSunkByte
	default:
		b = outcomeMissByte
	}
	return p.send([]byte{b})
}

func (p *Peer) ReceiveOutcome() (game.Outcome, error) {
	payload, err := p.receive(1)
	if err != nil {
		return game.OutcomeMiss, err
	}
	switch payload[0] {
	case outcomeMissByte:
		return game.OutcomeMiss, nil
	case outcomeHitByte:
		return game.OutcomeHit, nil
	case outcomeSunkByte:
		return game.OutcomeSunk, nil
	default:
		return game.OutcomeMiss, fmt.Errorf("%w: unknown outcome byte %q", ErrConnectionLost, payload[0])
	}
}
