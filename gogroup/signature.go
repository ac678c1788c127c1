package gogroup

import (
	"encoding/binary"
)

// Signature is a canonical binary encoding of a GroupInfo, usable as a
// catalog key: uvarint group order, one flag byte, then a (divisor, count)
// uvarint pair per OrderStats entry. Factors and POrderStats are derivable
// from the order and the divisor counts, so they are not encoded.
type Signature []byte

// SignatureBuf is scratch space that fits any Signature this engine emits.
type SignatureBuf [128]byte

const (
	sigFlagAbelian  = byte(1) << 0
	sigFlagDihedral = byte(1) << 1
)

// AppendSignatureTo appends the canonical Signature of info to out, returning it as a Signature.
func (info *GroupInfo) AppendSignatureTo(out []byte) Signature {
	var scrap [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(scrap[:], uint64(info.Order))
	out = append(out, scrap[:n]...)

	flags := byte(0)
	if info.IsAbelian {
		flags |= sigFlagAbelian
	}
	if info.IsDihedral {
		flags |= sigFlagDihedral
	}
	out = append(out, flags)

	for _, oc := range info.OrderStats {
		n = binary.PutUvarint(scrap[:], uint64(oc.Divisor))
		out = append(out, scrap[:n]...)
		n = binary.PutUvarint(scrap[:], uint64(oc.Count))
		out = append(out, scrap[:n]...)
	}

	return out
}
