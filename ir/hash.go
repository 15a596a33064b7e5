package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value. Unlike Compare,
// tables hash by content, so structurally equal tables built separately
// share a hash. Hashes are stable within a process only.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	hashInto(&h, v)
	return h.Sum64()
}

func hashInto(h *maphash.Hash, v Value) {
	h.WriteByte(byte(v.typ))
	switch v.typ {
	case IntType:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(v.i))
		h.Write(b[:])
	case FloatType:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v.f))
		h.Write(b[:])
	case BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case StringType:
		h.WriteString(v.s)
	case TableType:
		if v.t.isArray {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
		for _, e := range v.t.entries {
			hashInto(h, e.key)
			hashInto(h, e.val)
		}
	}
}
