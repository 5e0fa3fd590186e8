package substrate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/smartcontractkit/govproposer/internal/utils/safecast"
	sdkerrors "github.com/smartcontractkit/govproposer/sdk/errors"
)

// maxDecodeDepth bounds recursion through nested calls and types.
const maxDecodeDepth = 256

// decodeCall validates that data is exactly one call of the runtime and returns its pallet and
// call names.
func (r *registry) decodeCall(data []byte) (string, string, error) {
	cr := &callReader{r: bytes.NewReader(data)}

	palletIdx, err := cr.readByte()
	if err != nil {
		return "", "", err
	}
	callIdx, err := cr.readByte()
	if err != nil {
		return "", "", err
	}

	p, ok := r.palletByIndex(palletIdx)
	if !ok || !p.hasCalls {
		return "", "", sdkerrors.NewUnknownCallIndexError(palletIdx, callIdx)
	}
	calls, err := r.lookup(p.calls)
	if err != nil {
		return "", "", err
	}
	v, ok := calls.variantByIndex(callIdx)
	if !ok {
		return "", "", sdkerrors.NewUnknownCallIndexError(palletIdx, callIdx)
	}

	for _, f := range v.fields {
		if err := r.skip(cr, f.typeID, 0); err != nil {
			return "", "", fmt.Errorf("field %s of %s.%s: %w", f.name, p.name, v.name, err)
		}
	}

	if rest := cr.r.Len(); rest != 0 {
		return "", "", fmt.Errorf("%d trailing bytes after %s.%s", rest, p.name, v.name)
	}

	return p.name, v.name, nil
}

// skip consumes one encoded value of type id.
func (r *registry) skip(cr *callReader, id int64, depth int) error {
	if depth > maxDecodeDepth {
		return fmt.Errorf("type nesting exceeds %d levels", maxDecodeDepth)
	}

	t, err := r.lookup(id)
	if err != nil {
		return err
	}

	switch t.kind {
	case kindComposite:
		for _, f := range t.fields {
			if err := r.skip(cr, f.typeID, depth+1); err != nil {
				return err
			}
		}
	case kindVariant:
		idx, err := cr.readByte()
		if err != nil {
			return err
		}
		v, ok := t.variantByIndex(idx)
		if !ok {
			return fmt.Errorf("variant index %d not found in %s", idx, t.name())
		}
		for _, f := range v.fields {
			if err := r.skip(cr, f.typeID, depth+1); err != nil {
				return err
			}
		}
	case kindSequence:
		n, err := cr.readCompact()
		if err != nil {
			return err
		}

		return r.skipMany(cr, t.elem, n, depth)
	case kindArray:
		return r.skipMany(cr, t.elem, uint64(t.length), depth)
	case kindTuple:
		for _, e := range t.tuple {
			if err := r.skip(cr, e, depth+1); err != nil {
				return err
			}
		}
	case kindPrimitive:
		if t.primitive == primStr {
			n, err := cr.readCompact()
			if err != nil {
				return err
			}

			return cr.discard(n)
		}

		return cr.discard(uint64(t.primitive.size()))
	case kindCompact:
		_, err := cr.readCompact()
		return err
	case kindBitSequence:
		return r.skipBitSequence(cr, t)
	}

	return nil
}

func (r *registry) skipMany(cr *callReader, elem int64, n uint64, depth int) error {
	if r.isByte(elem) {
		return cr.discard(n)
	}
	if r.isZeroSized(elem) {
		return nil
	}
	// Every remaining element takes at least one byte.
	if n > uint64(cr.r.Len()) {
		return sdkerrors.ErrTruncated
	}

	for range n {
		if err := r.skip(cr, elem, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (r *registry) skipBitSequence(cr *callReader, t *typeDef) error {
	bits, err := cr.readCompact()
	if err != nil {
		return err
	}

	store, err := r.lookup(t.bitStore)
	if err != nil {
		return err
	}
	size := uint64(1)
	if store.kind == kindPrimitive && store.primitive.size() > 0 {
		size = uint64(store.primitive.size())
	}

	words := (bits + 8*size - 1) / (8 * size)

	return cr.discard(words * size)
}

// callReader reads SCALE encoded values from a byte slice.
type callReader struct {
	r *bytes.Reader
}

func (cr *callReader) readByte() (byte, error) {
	b, err := cr.r.ReadByte()
	if err != nil {
		return 0, sdkerrors.ErrTruncated
	}

	return b, nil
}

func (cr *callReader) discard(n uint64) error {
	if n > uint64(cr.r.Len()) {
		return sdkerrors.ErrTruncated
	}

	offset, err := safecast.Uint64ToInt64(n)
	if err != nil {
		return err
	}

	_, err = cr.r.Seek(offset, io.SeekCurrent)

	return err
}

func (cr *callReader) readCompact() (uint64, error) {
	if cr.r.Len() == 0 {
		return 0, sdkerrors.ErrTruncated
	}

	n, err := scale.NewDecoder(cr.r).DecodeUintCompact()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", sdkerrors.ErrTruncated, err)
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("compact value %s overflows u64", n)
	}

	return n.Uint64(), nil
}
