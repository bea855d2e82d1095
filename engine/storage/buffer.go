// Package storage provides CPU-side shader storage buffers. Systems build
// buffer contents here each tick; the render backend uploads the bytes when it
// draws. Buffers are immutable once added: updating means adding a fresh
// buffer and dropping the old handle.
package storage

import (
	"encoding/binary"
	"math"

	"github.com/emberline/progressbar/engine/colors"
)

// Buffer is a byte payload destined for a GPU storage binding. Data is laid
// out little-endian, matching std430 for the element types used here
// (float32 scalars, vec4 colors).
type Buffer struct {
	Data []byte
}

// Len reports the payload size in bytes.
func (b *Buffer) Len() int { return len(b.Data) }

// FromFloat32s packs vs as a contiguous array of 32-bit floats.
func FromFloat32s(vs []float32) Buffer {
	data := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	return Buffer{Data: data}
}

// FromColors packs cs as a contiguous array of vec4<f32>.
func FromColors(cs []colors.Color) Buffer {
	data := make([]byte, 16*len(cs))
	for i, c := range cs {
		for j, v := range c {
			binary.LittleEndian.PutUint32(data[16*i+4*j:], math.Float32bits(v))
		}
	}
	return Buffer{Data: data}
}

// Handle refers to a buffer in a Buffers store. The zero Handle never
// resolves.
type Handle struct {
	id uint64
}

func (h Handle) IsZero() bool { return h.id == 0 }

// Buffers is the buffer collection shared by systems (writers) and the render
// backend (reader).
type Buffers struct {
	next  uint64
	items map[uint64]Buffer
}

func NewBuffers() *Buffers {
	return &Buffers{items: map[uint64]Buffer{}}
}

// Add stores b and returns its handle.
func (bs *Buffers) Add(b Buffer) Handle {
	bs.next++
	bs.items[bs.next] = b
	return Handle{id: bs.next}
}

// Get resolves h. Buffers are immutable once added, so a copy is returned.
func (bs *Buffers) Get(h Handle) (Buffer, bool) {
	b, ok := bs.items[h.id]
	return b, ok
}

func (bs *Buffers) Len() int { return len(bs.items) }

// Compact drops every buffer whose handle is not in live. Owners of the store
// call this after a sync pass so replaced buffers do not accumulate.
func (bs *Buffers) Compact(live ...Handle) {
	keep := make(map[uint64]struct{}, len(live))
	for _, h := range live {
		keep[h.id] = struct{}{}
	}
	for id := range bs.items {
		if _, ok := keep[id]; !ok {
			delete(bs.items, id)
		}
	}
}
