// Package messagebus implements a typed packet mailbox with
// single-consumer claim semantics.
package messagebus

import (
	"reflect"
	"sync"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/event"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/memalloc"
)

// PacketID identifies a sent packet until it is claimed.
type PacketID uint64

// MessageBus is a typed packet mailbox. Where a C++ engine enumerates
// allowed packet types as template arguments (any other type is a
// compile-time error at the call site), Go generics can't enumerate a
// closed set of allowed types on a single instantiation: MessageBus is
// instead untyped at the call boundary (SendPacket takes `any`) and
// ClaimPacket[T] performs the type check as a development-build assertion
// at claim time instead of at the call site, the closest a Go generic
// type can get to that invariant. OnPacketSent signals the monotonic id
// of every packet sent, on the caller's goroutine.
type MessageBus struct {
	mu sync.Mutex
	nextID PacketID
	slots map[PacketID]any

	OnPacketSent *event.Event[PacketID]
}

// New constructs an empty MessageBus.
func New() *MessageBus {
	return &MessageBus{
		slots: make(map[PacketID]any),
		OnPacketSent: event.New[PacketID](),
	}
}

// SendPacket records packet under a fresh monotonic id, releases the
// lock, then signals OnPacketSent on the caller's goroutine.
func (b *MessageBus) SendPacket(packet any) PacketID {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.slots[id] = packet
	b.mu.Unlock()

	b.OnPacketSent.Signal(id)
	return id
}

// ClaimPacket locates id; if absent, returns the zero value and false. If
// present but its stored type differs from T, the packet stays in place
// and the call asserts in development builds. On a type match, the
// packet is moved out (the slot erased) and returned.
func ClaimPacket[T any](b *MessageBus, id PacketID) (T, bool) {
	var zero T

	b.mu.Lock()
	defer b.mu.Unlock()

	packet, ok := b.slots[id]
	if !ok {
		return zero, false
	}

	typed, ok := packet.(T)
	if !ok {
		if memalloc.DevelopmentBuild {
			panic("messagebus: ClaimPacket: stored type " + reflect.TypeOf(packet).String() + " does not match claimed type")
		}
		return zero, false
	}

	delete(b.slots, id)
	return typed, true
}
