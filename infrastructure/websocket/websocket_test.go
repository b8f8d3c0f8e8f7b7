package websocket

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pc2-api/domain/ports"
)

type fakeConn struct {
	messages chan Message
	failOn   bool

	mu     sync.Mutex
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{messages: make(chan Message, 16)}
}

func (f *fakeConn) WriteJSON(v any) error {
	if f.failOn {
		return errors.New("broken pipe")
	}
	f.messages <- v.(Message)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeConn) expect(t *testing.T) Message {
	t.Helper()
	select {
	case m := <-f.messages:
		return m
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func (f *fakeConn) expectNone(t *testing.T) {
	t.Helper()
	select {
	case m := <-f.messages:
		t.Fatalf("unexpected message %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func register(t *testing.T, hub *Hub, conn Conn, room string) string {
	t.Helper()
	id, err := hub.Register(conn, room)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return id
}

func TestPublishRoutesByRoom(t *testing.T) {
	hub, _ := startHub(t)
	ctx := context.Background()

	all := newFakeConn()
	tareas := newFakeConn()
	galeria := newFakeConn()
	register(t, hub, all, "")
	register(t, hub, tareas, "tareas")
	register(t, hub, galeria, "galeria")

	event := ports.NewDomainEvent(ports.SubjectTaskCompleted, "tareas", "tareas", 7, nil)
	if err := hub.Publish(ctx, event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	for name, conn := range map[string]*fakeConn{"all": all, "tareas": tareas} {
		m := conn.expect(t)
		if m.Type != ports.SubjectTaskCompleted || m.Room != "tareas" {
			t.Errorf("%s got %+v", name, m)
		}
	}
	galeria.expectNone(t)
}

func TestClientMessages(t *testing.T) {
	hub, _ := startHub(t)
	ctx := context.Background()
	conn := newFakeConn()
	id := register(t, hub, conn, "")

	hub.HandleClientMessage(ctx, id, []byte(`{"type":"ping"}`))
	if m := conn.expect(t); m.Type != "pong" {
		t.Fatalf("ping reply = %+v", m)
	}

	hub.HandleClientMessage(ctx, id, []byte(`{"type":"join_room","room":"proyectos"}`))
	if m := conn.expect(t); m.Type != "room_joined" || m.Room != "proyectos" {
		t.Fatalf("join reply = %+v", m)
	}
	if n := hub.RoomClients("proyectos"); n != 1 {
		t.Errorf("RoomClients = %d, want 1", n)
	}

	// อยู่ใน room proyectos แล้ว ไม่ได้รับ event ของ app อื่น
	_ = hub.Publish(ctx, ports.NewDomainEvent(ports.SubjectMediaCommentCreated, "multimedia", "comentarios", 1, nil))
	conn.expectNone(t)

	hub.HandleClientMessage(ctx, id, []byte(`{"type":"leave_room"}`))
	if m := conn.expect(t); m.Type != "room_left" {
		t.Fatalf("leave reply = %+v", m)
	}

	hub.HandleClientMessage(ctx, id, []byte(`not json`))
	hub.HandleClientMessage(ctx, id, []byte(`{"type":"dance"}`))
	conn.expectNone(t)
}

func TestFailedWriteDropsClient(t *testing.T) {
	hub, _ := startHub(t)
	broken := &fakeConn{messages: make(chan Message, 1), failOn: true}
	register(t, hub, broken, "")

	_ = hub.Publish(context.Background(), ports.NewDomainEvent(ports.SubjectTaskCompleted, "tareas", "tareas", 1, nil))

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != 0 || !broken.isClosed() {
		if time.Now().After(deadline) {
			t.Fatal("client not removed and closed after failed write")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestShutdown(t *testing.T) {
	hub, cancel := startHub(t)
	conn := newFakeConn()
	register(t, hub, conn, "")

	cancel()
	<-hub.done

	if _, err := hub.Register(newFakeConn(), ""); !errors.Is(err, ErrHubClosed) {
		t.Fatalf("Register after shutdown = %v, want ErrHubClosed", err)
	}

	deadline := time.Now().Add(time.Second)
	for !conn.isClosed() {
		if time.Now().After(deadline) {
			t.Fatal("connections must be closed on shutdown")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
