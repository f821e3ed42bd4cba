package fix

import (
	"encoding/binary"
	"io"

	"github.com/shabbyrobe/go-fix/internal/wide"
)

// Codec encodes the mantissas of one descriptor. Nothing but the mantissa is
// written: both sides must agree on the descriptor.
//
// The fixed-width form is the mantissa as an integer of the descriptor's
// StorageKind, two's complement for signed kinds, in the codec's byte order.
// The compact form is a LEB128 varint, zigzag encoded for signed
// descriptors.
type Codec struct {
	desc   Descriptor
	order  binary.ByteOrder
	little bool
}

// NewCodec returns a Codec for d. A nil order means binary.BigEndian.
func NewCodec(d Descriptor, order binary.ByteOrder) Codec {
	if order == nil {
		order = binary.BigEndian
	}
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return Codec{desc: d, order: order, little: probe[0] == 1}
}

func (c Codec) Descriptor() Descriptor { return c.desc }

// Size is the length of the fixed-width form in bytes.
func (c Codec) Size() int { return c.desc.kind.Size() }

func (c Codec) check(v Value) error {
	if v.desc != c.desc {
		return ErrDescriptorMismatch.New("codec for %s given %s", c.desc, v.desc)
	}
	return c.desc.checkValid()
}

// Append appends the fixed-width form of v to dst.
func (c Codec) Append(dst []byte, v Value) ([]byte, error) {
	if err := c.check(v); err != nil {
		return dst, err
	}
	n := len(dst)
	for i := 0; i < c.Size(); i++ {
		dst = append(dst, 0)
	}
	c.put(dst[n:], v)
	return dst, nil
}

// Put writes the fixed-width form of v into the first Size bytes of dst.
func (c Codec) Put(dst []byte, v Value) error {
	if err := c.check(v); err != nil {
		return err
	}
	if len(dst) < c.Size() {
		return ErrEncoding.New("buffer of %d bytes, need %d", len(dst), c.Size())
	}
	c.put(dst, v)
	return nil
}

func (c Codec) put(dst []byte, v Value) {
	hi, lo := wide.I128FromSigned(v.neg, v.mag).Raw()
	switch c.desc.kind.bits {
	case 8:
		dst[0] = byte(lo)
	case 16:
		c.order.PutUint16(dst, uint16(lo))
	case 32:
		c.order.PutUint32(dst, uint32(lo))
	case 64:
		c.order.PutUint64(dst, lo)
	case 128:
		if c.little {
			c.order.PutUint64(dst, lo)
			c.order.PutUint64(dst[8:], hi)
		} else {
			c.order.PutUint64(dst, hi)
			c.order.PutUint64(dst[8:], lo)
		}
	}
}

// Decode reads a fixed-width mantissa from the start of src. It fails with
// ErrOverflow if the mantissa is outside the descriptor's range.
func (c Codec) Decode(src []byte) (Value, error) {
	if err := c.desc.checkValid(); err != nil {
		return Value{}, err
	}
	if len(src) < c.Size() {
		return Value{}, ErrEncoding.New("buffer of %d bytes, need %d", len(src), c.Size())
	}

	var hi, lo uint64
	bits := uint(c.desc.kind.bits)
	switch bits {
	case 8:
		lo = uint64(src[0])
	case 16:
		lo = uint64(c.order.Uint16(src))
	case 32:
		lo = uint64(c.order.Uint32(src))
	case 64:
		lo = c.order.Uint64(src)
	case 128:
		if c.little {
			lo, hi = c.order.Uint64(src), c.order.Uint64(src[8:])
		} else {
			hi, lo = c.order.Uint64(src), c.order.Uint64(src[8:])
		}
	}

	raw := wide.U128FromRaw(hi, lo)
	if !c.desc.kind.signed {
		return c.desc.make(false, raw)
	}

	// Sign-extend narrower kinds to 128 bits.
	if bits < 128 && raw.Bit(bits-1) == 1 {
		raw = raw.Or(wide.MaxU128.Lsh(bits))
	}
	rh, rl := raw.Raw()
	neg, mag := wide.I128FromRaw(rh, rl).Split()
	return c.desc.make(neg, mag)
}

// Write writes the fixed-width form of v to w.
func (c Codec) Write(w io.Writer, v Value) error {
	var scratch [16]byte
	if err := c.Put(scratch[:], v); err != nil {
		return err
	}
	_, err := w.Write(scratch[:c.Size()])
	return err
}

// Read reads one fixed-width mantissa from r.
func (c Codec) Read(r io.Reader) (Value, error) {
	var scratch [16]byte
	if _, err := io.ReadFull(r, scratch[:c.Size()]); err != nil {
		return Value{}, ErrEncoding.Wrap(err)
	}
	return c.Decode(scratch[:])
}

// AppendCompact appends the compact form of v to dst.
func (c Codec) AppendCompact(dst []byte, v Value) ([]byte, error) {
	if err := c.check(v); err != nil {
		return dst, err
	}
	z := v.mag
	if c.desc.signed {
		// Zigzag: 0, -1, 1, -2, 2 ... map to 0, 1, 2, 3, 4 ... A signed
		// magnitude is below 1<<127, so doubling it cannot overflow.
		z = z.Lsh(1)
		if v.neg {
			z = z.Dec()
		}
	}
	for {
		_, lo := z.Raw()
		b := byte(lo & 0x7f)
		z = z.Rsh(7)
		if z.IsZero() {
			return append(dst, b), nil
		}
		dst = append(dst, b|0x80)
	}
}

// DecodeCompact reads a compact mantissa from the start of src, returning
// the value and the number of bytes consumed.
func (c Codec) DecodeCompact(src []byte) (Value, int, error) {
	if err := c.desc.checkValid(); err != nil {
		return Value{}, 0, err
	}

	var z wide.U128
	var shift uint
	for i, b := range src {
		if shift >= 128 || (shift > 121 && uint64(b&0x7f)>>(128-shift) != 0) {
			return Value{}, 0, ErrEncoding.New("varint exceeds 128 bits")
		}
		z = z.Or(wide.U128From64(uint64(b & 0x7f)).Lsh(shift))
		if b&0x80 == 0 {
			var neg bool
			mag := z
			if c.desc.signed {
				neg = z.Bit(0) == 1
				mag = z.Rsh(1)
				if neg {
					mag = mag.Inc()
				}
			}
			v, err := c.desc.make(neg, mag)
			return v, i + 1, err
		}
		shift += 7
	}
	return Value{}, 0, ErrEncoding.New("truncated varint")
}

// MarshalBinary encodes the fixed-width, big-endian form of v.
func (v Value) MarshalBinary() ([]byte, error) {
	return NewCodec(v.desc, nil).Append(nil, v)
}

// UnmarshalBinary decodes into v's existing descriptor; v must already carry
// one, e.g. from Descriptor.Zero.
func (v *Value) UnmarshalBinary(data []byte) error {
	if err := v.desc.checkValid(); err != nil {
		return ErrInvalidDescriptor.New("unmarshal into a Value needs a descriptor, use Descriptor.Zero")
	}
	c := NewCodec(v.desc, nil)
	if len(data) != c.Size() {
		return ErrEncoding.New("%d bytes, need %d", len(data), c.Size())
	}
	out, err := c.Decode(data)
	if err != nil {
		return err
	}
	*v = out
	return nil
}
