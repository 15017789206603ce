// Package dungeon generates procedural dungeon layouts: recursive room
// partitioning, connectivity analysis, room pruning, door placement and
// tile rasterization. The pipeline is deterministic for a given seed.
package dungeon

import (
	"deepdelve/pkg/engine/geometry"
)

// RoomID is an arena handle for a Room. Graphs key on RoomID rather than
// on room values so that two rooms with identical dimensions stay
// distinct entities.
type RoomID int

// NoRoom is the sentinel for "no room assigned".
const NoRoom RoomID = -1

// Room is a rectangular region of the dungeon. Doors are represented as
// rooms too: a carved door is a small Room with Door set, so the final
// room-door graph holds one node type throughout.
type Room struct {
	Dimensions   geometry.Rect
	StartingRoom bool
	Door         bool
}

// RoomArena owns every Room created during a generation run. Rooms are
// never freed individually; the arena is dropped wholesale with the run.
type RoomArena struct {
	rooms []*Room
}

// NewRoomArena creates an empty arena.
func NewRoomArena() *RoomArena {
	return &RoomArena{}
}

// NewRoom allocates a room with the given dimensions and returns its handle.
func (a *RoomArena) NewRoom(dim geometry.Rect) RoomID {
	a.rooms = append(a.rooms, &Room{Dimensions: dim})
	return RoomID(len(a.rooms) - 1)
}

// NewDoor allocates a door-flavoured room and returns its handle.
func (a *RoomArena) NewDoor(dim geometry.Rect) RoomID {
	a.rooms = append(a.rooms, &Room{Dimensions: dim, Door: true})
	return RoomID(len(a.rooms) - 1)
}

// Room returns the room for a handle, or nil for NoRoom or an unknown id.
func (a *RoomArena) Room(id RoomID) *Room {
	if id < 0 || int(id) >= len(a.rooms) {
		return nil
	}
	return a.rooms[id]
}

// Len returns the number of rooms ever allocated.
func (a *RoomArena) Len() int {
	return len(a.rooms)
}
