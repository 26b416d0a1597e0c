package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzip"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/game"
	"github.com/Ruselmi/mine-and-cheet/internal/logging"
	"github.com/Ruselmi/mine-and-cheet/internal/metrics"
	"github.com/Ruselmi/mine-and-cheet/internal/observability"
)

const (
	writeWait  = 10 * time.Second // Время на запись одного кадра
	pongWait   = 60 * time.Second // Клиент обязан ответить на ping за это время
	pingPeriod = 30 * time.Second // Период ping, меньше pongWait
)

// errClientGone - клиент закрыл соединение
var errClientGone = errors.New("клиент отключился")

// outbound - кадр в очереди на отправку
type outbound struct {
	kind int // websocket.TextMessage или websocket.BinaryMessage
	data []byte
}

// Bridge связывает WebSocket-клиента с приватной сессией песочницы.
// Каждое соединение получает свой мир; между соединениями ничего не разделяется.
type Bridge struct {
	ctx      context.Context
	cfg      *config.Config
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
	active   atomic.Int64
}

// NewBridge создаёт мост. Отмена ctx завершает все открытые сессии.
func NewBridge(ctx context.Context, cfg *config.Config, m *metrics.Metrics) *Bridge {
	return &Bridge{
		ctx:     ctx,
		cfg:     cfg,
		metrics: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // Рендерер может отдаваться с другого origin
			},
		},
	}
}

// ActiveSessions возвращает число открытых сессий
func (b *Bridge) ActiveSessions() int64 {
	return b.active.Load()
}

// HandleWebSocket обслуживает GET /ws?device=keyboard|joystick|touch&compress=gzip
func (b *Bridge) HandleWebSocket(c *gin.Context) {
	device, err := NewDevice(c.Query("device"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorPayload{Message: err.Error()})
		return
	}
	compress := c.Query("compress") == "gzip"

	conn, err := b.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("❌ Ошибка апгрейда WebSocket: %v", err)
		return
	}

	_, span := observability.Tracer().Start(c.Request.Context(), "session.create")
	session := game.NewSession(b.cfg, game.WithMetrics(b.metrics))
	span.SetAttributes(
		attribute.String("session.id", session.ID()),
		attribute.Int64("world.seed", session.Seed()),
		attribute.Int("world.voxels", session.Store().Len()),
	)
	span.End()
	b.active.Add(1)
	defer func() {
		session.Close()
		b.active.Add(-1)
	}()

	logging.Info("🔌 Клиент %s подключён: сессия %s, устройство %s", conn.RemoteAddr(), session.ID(), c.DefaultQuery("device", DeviceKeyboard))

	cl := &client{
		conn:    conn,
		id:      session.ID(),
		send:    make(chan outbound, b.cfg.Server.SendBuffer+1),
		device:  device,
		limit:   b.cfg.Server.ReadLimit,
		started: time.Now(),
	}

	frame, err := encodeSnapshot(session.Snapshot(), compress, b.cfg.Server.GzipMinSize)
	if err != nil {
		logging.Error("Ошибка кодирования снимка сессии %s: %v", session.ID(), err)
		conn.Close()
		return
	}
	cl.send <- frame

	g, ctx := errgroup.WithContext(b.ctx)
	g.Go(cl.readPump)
	g.Go(func() error { return cl.writePump(ctx) })
	g.Go(func() error {
		return session.Run(ctx, device, func(u game.Update) error {
			return cl.sendJSON(ctx, MsgTypeFrame, u)
		})
	})

	err = g.Wait()
	if err != nil && !isNormalClose(err) {
		logging.Warn("Сессия %s завершена с ошибкой: %v", session.ID(), err)
	}
	logging.Info("🔌 Клиент %s отключён после %v", conn.RemoteAddr(), time.Since(cl.started).Round(time.Millisecond))
}

// client - одно WebSocket-соединение
type client struct {
	conn    *websocket.Conn
	id      string
	send    chan outbound
	device  Device
	limit   int64
	started time.Time
}

// readPump читает события ввода и передаёт их устройству.
// Устройство хранит последнее состояние, которое забирает тик.
func (cl *client) readPump() error {
	cl.conn.SetReadLimit(cl.limit)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				return err
			}
			return errClientGone
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logging.LogProtocolError(cl.id, err, data)
			cl.trySendError(err)
			continue
		}
		if err := cl.device.Apply(&msg); err != nil {
			logging.LogProtocolError(cl.id, err, data)
			cl.trySendError(err)
		}
	}
}

// writePump отправляет кадры из очереди и поддерживает соединение ping'ами
func (cl *client) writePump(ctx context.Context) error {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			cl.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil

		case frame := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(frame.kind, frame.data); err != nil {
				return err
			}

		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

// sendJSON ставит сообщение в очередь, ожидая места.
// Кадры несут дельты мира, поэтому не отбрасываются.
func (cl *client) sendJSON(ctx context.Context, t MessageType, payload interface{}) error {
	frame, err := encodeText(t, payload)
	if err != nil {
		return err
	}
	select {
	case cl.send <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// trySendError отправляет ошибку клиенту, если очередь не забита
func (cl *client) trySendError(cause error) {
	frame, err := encodeText(MsgTypeError, ErrorPayload{Message: cause.Error()})
	if err != nil {
		return
	}
	select {
	case cl.send <- frame:
	default:
	}
}

func encodeText(t MessageType, payload interface{}) (outbound, error) {
	msg, err := NewMessage(t, payload)
	if err != nil {
		return outbound{}, err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return outbound{}, err
	}
	return outbound{kind: websocket.TextMessage, data: data}, nil
}

// encodeSnapshot кодирует снимок; при compress и размере не меньше minSize
// отправляется бинарным gzip-кадром
func encodeSnapshot(snap game.Snapshot, compress bool, minSize int) (outbound, error) {
	frame, err := encodeText(MsgTypeSnapshot, snap)
	if err != nil || !compress || len(frame.data) < minSize {
		return frame, err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return outbound{}, err
	}
	if _, err := zw.Write(frame.data); err != nil {
		return outbound{}, err
	}
	if err := zw.Close(); err != nil {
		return outbound{}, err
	}

	logging.Debug("📦 Снимок сжат: %d → %d байт", len(frame.data), buf.Len())
	return outbound{kind: websocket.BinaryMessage, data: buf.Bytes()}, nil
}

func isNormalClose(err error) bool {
	return errors.Is(err, errClientGone) ||
		errors.Is(err, context.Canceled) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
