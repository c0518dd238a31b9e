package ecs

import "strconv"

// Entity is a generational handle. The low 32 bits index the arena slot,
// the high 32 bits hold the slot generation at creation time.
type Entity uint64

// Nil never refers to a live entity.
const Nil Entity = 0

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// Slot returns the arena slot; slots are reused after destruction.
func (e Entity) Slot() uint32 {
	return uint32(e.id())
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
