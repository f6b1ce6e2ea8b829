package wshandler

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/ogerber/townpicker/internal/model"
)

type WebMessage struct {
	Typ   string           `json:"type"`
	Pick  *model.PickDTO   `json:"pick,omitempty"`
	Towns []*model.TownDTO `json:"towns,omitempty"`
}

// JSONWsHandler pushes pick events to one connected map client. The
// mutex covers the active flag, the channel close and every send, so
// a disconnect cannot race a broadcast.
type JSONWsHandler struct {
	log    *slog.Logger
	name   string
	ws     *websocket.Conn
	ch     chan *WebMessage
	mx     sync.Mutex
	active bool
}

func NewHandler(log *slog.Logger, name string, ws *websocket.Conn) *JSONWsHandler {
	return &JSONWsHandler{
		log:    log.With("client", name),
		name:   name,
		ws:     ws,
		ch:     make(chan *WebMessage, 10),
		active: true,
	}
}

func (w *JSONWsHandler) Name() string {
	return w.name
}

func (w *JSONWsHandler) IsActive() bool {
	if w == nil {
		return false
	}

	w.mx.Lock()
	defer w.mx.Unlock()

	return w.active
}

func (w *JSONWsHandler) stop() {
	w.mx.Lock()
	defer w.mx.Unlock()

	if !w.active {
		return
	}

	w.active = false
	close(w.ch)

	if w.ws != nil {
		w.ws.Close()
	}
}

func (w *JSONWsHandler) writer() {
	for item := range w.ch {
		if item == nil {
			continue
		}

		_ = w.ws.WriteJSON(item)
	}
}

func (w *JSONWsHandler) reader() {
	defer w.stop()

	for {
		_, _, err := w.ws.ReadMessage()

		if err != nil {
			return
		}
	}
}

// send queues a message, dropping it when the client is slow.
func (w *JSONWsHandler) send(msg *WebMessage) bool {
	if w == nil {
		return false
	}

	w.mx.Lock()
	defer w.mx.Unlock()

	if !w.active {
		return false
	}

	select {
	case w.ch <- msg:
	default:
	}

	return true
}

func (w *JSONWsHandler) SendPick(p *model.PickDTO) bool {
	return w.send(&WebMessage{Typ: "pick", Pick: p})
}

// SendTowns announces a reloaded dataset.
func (w *JSONWsHandler) SendTowns(towns []*model.TownDTO) bool {
	return w.send(&WebMessage{Typ: "towns", Towns: towns})
}

func (w *JSONWsHandler) closehandler(code int, text string) error {
	w.log.Info(fmt.Sprintf("closed with code %d, msg %s", code, text))
	w.stop()

	return nil
}

func (w *JSONWsHandler) Listen() {
	w.log.Debug("ws start")
	w.ws.SetCloseHandler(w.closehandler)

	go w.writer()
	w.reader()
	w.log.Debug("ws stop")
}
