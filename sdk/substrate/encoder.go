package substrate

import (
	"encoding/binary"
	"fmt"
	"math/big"

	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cast"

	sdkerrors "github.com/smartcontractkit/govproposer/sdk/errors"
	"github.com/smartcontractkit/govproposer/types"
)

// encodeCall encodes pallet.call with args matched positionally against the call's fields.
//
// Accepted argument values:
//   - types.Call for boxed runtime calls, inserted verbatim
//   - types.Variant (and types.Some / types.None) for enums; nil encodes None for options
//   - types.AccountID for account ids, wrapped in the Id variant for MultiAddress targets
//   - []byte, common.Hash, common.Address for byte sequences and fixed byte arrays
//   - any unsigned integer (or *big.Int) for fixed width and compact integers
//   - []any for tuples and composites with more than one field
func (r *registry) encodeCall(palletName, callName string, args []any) ([]byte, error) {
	p, v, err := r.resolveCall(palletName, callName)
	if err != nil {
		return nil, err
	}

	if len(args) != len(v.fields) {
		return nil, sdkerrors.NewArgumentCountError(p.name+"."+v.name, len(v.fields), len(args))
	}

	buf := []byte{p.index, v.index}
	for i, f := range v.fields {
		buf, err = r.encodeValue(buf, f.typeID, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s) of %s.%s: %w", i, f.name, p.name, v.name, err)
		}
	}

	return buf, nil
}

func (r *registry) encodeValue(buf []byte, id int64, value any) ([]byte, error) {
	t, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	// Boxed runtime calls are already encoded.
	if call, ok := value.(types.Call); ok {
		if t.kind != kindVariant {
			return nil, sdkerrors.NewTypeMismatchError(id, t.name(), value)
		}

		return append(buf, call.Data...), nil
	}

	switch t.kind {
	case kindComposite:
		return r.encodeComposite(buf, t, value)
	case kindVariant:
		return r.encodeVariant(buf, t, value)
	case kindSequence:
		return r.encodeSequence(buf, t, value)
	case kindArray:
		return r.encodeArray(buf, t, value)
	case kindTuple:
		return r.encodeFields(buf, t, t.tuple, value)
	case kindPrimitive:
		return encodePrimitive(buf, t, value)
	case kindCompact:
		return r.encodeCompact(buf, t, value)
	case kindBitSequence:
	}

	return nil, sdkerrors.NewTypeMismatchError(id, t.name(), value)
}

func (r *registry) encodeComposite(buf []byte, t *typeDef, value any) ([]byte, error) {
	ids := make([]int64, 0, len(t.fields))
	for _, f := range t.fields {
		ids = append(ids, f.typeID)
	}

	return r.encodeFields(buf, t, ids, value)
}

// encodeFields encodes value against an ordered list of field types. A single field is
// transparent, several fields take a []any of the same length.
func (r *registry) encodeFields(buf []byte, t *typeDef, ids []int64, value any) ([]byte, error) {
	switch len(ids) {
	case 0:
		if value != nil {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}

		return buf, nil
	case 1:
		if values, ok := value.([]any); ok && len(values) == 1 {
			value = values[0]
		}

		return r.encodeValue(buf, ids[0], value)
	}

	values, ok := value.([]any)
	if !ok || len(values) != len(ids) {
		return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
	}

	var err error
	for i, id := range ids {
		if buf, err = r.encodeValue(buf, id, values[i]); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func (r *registry) encodeVariant(buf []byte, t *typeDef, value any) ([]byte, error) {
	switch v := value.(type) {
	case types.Variant:
		vt, ok := t.variantByName(v.Name)
		if !ok {
			return nil, fmt.Errorf("variant %q not found in %s", v.Name, t.name())
		}

		return r.encodeVariantFields(append(buf, vt.index), t, vt, v.Value)
	case types.AccountID:
		// MultiAddress
		if vt, ok := t.variantByName("Id"); ok {
			return r.encodeVariantFields(append(buf, vt.index), t, vt, v)
		}
	case nil:
		if vt, ok := t.variantByName("None"); ok && t.isOption() {
			return append(buf, vt.index), nil
		}
	}

	return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
}

func (r *registry) encodeVariantFields(buf []byte, t *typeDef, vt *variant, value any) ([]byte, error) {
	ids := make([]int64, 0, len(vt.fields))
	for _, f := range vt.fields {
		ids = append(ids, f.typeID)
	}

	out, err := r.encodeFields(buf, t, ids, value)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", vt.name, err)
	}

	return out, nil
}

func (r *registry) encodeSequence(buf []byte, t *typeDef, value any) ([]byte, error) {
	if r.isByte(t.elem) {
		b, ok := bytesOf(value)
		if !ok {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}

		buf, err := appendCompact(buf, uint64(len(b)))
		if err != nil {
			return nil, err
		}

		return append(buf, b...), nil
	}

	values, ok := value.([]any)
	if !ok {
		return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
	}

	buf, err := appendCompact(buf, uint64(len(values)))
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if buf, err = r.encodeValue(buf, t.elem, v); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func (r *registry) encodeArray(buf []byte, t *typeDef, value any) ([]byte, error) {
	if r.isByte(t.elem) {
		b, ok := bytesOf(value)
		if !ok {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		if len(b) != int(t.length) {
			return nil, fmt.Errorf("expected %d bytes for %s, got %d", t.length, t.name(), len(b))
		}

		return append(buf, b...), nil
	}

	values, ok := value.([]any)
	if !ok || len(values) != int(t.length) {
		return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
	}

	var err error
	for _, v := range values {
		if buf, err = r.encodeValue(buf, t.elem, v); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func (r *registry) encodeCompact(buf []byte, t *typeDef, value any) ([]byte, error) {
	// Compact<T> where T is an integer, possibly wrapped in a single-field composite.
	inner, err := r.lookup(t.elem)
	for err == nil && inner.kind == kindComposite && len(inner.fields) == 1 {
		inner, err = r.lookup(inner.fields[0].typeID)
	}
	if err != nil {
		return nil, err
	}
	if inner.kind != kindPrimitive || inner.primitive.signed() || inner.primitive < primU8 {
		return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
	}

	if n, ok := value.(*big.Int); ok {
		if n.Sign() < 0 {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		enc, encErr := codec.Encode(gsrpctypes.NewUCompact(n))
		if encErr != nil {
			return nil, encErr
		}

		return append(buf, enc...), nil
	}

	n, err := cast.ToUint64E(value)
	if err != nil {
		return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
	}

	return appendCompact(buf, n)
}

func encodePrimitive(buf []byte, t *typeDef, value any) ([]byte, error) {
	p := t.primitive

	switch p {
	case primBool:
		b, ok := value.(bool)
		if !ok {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		if b {
			return append(buf, 1), nil
		}

		return append(buf, 0), nil
	case primStr:
		s, ok := value.(string)
		if !ok {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		buf, err := appendCompact(buf, uint64(len(s)))
		if err != nil {
			return nil, err
		}

		return append(buf, s...), nil
	case primU8, primU16, primU32, primU64:
		n, err := cast.ToUint64E(value)
		if err != nil {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		if p.size() < 8 && n > (uint64(1)<<(8*p.size()))-1 {
			return nil, fmt.Errorf("value %d overflows %s", n, p)
		}

		return appendUint(buf, n, p.size()), nil
	case primU128, primU256:
		return appendBigUint(buf, t, value)
	case primI8, primI16, primI32, primI64:
		n, err := cast.ToInt64E(value)
		if err != nil {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		bits := 8 * p.size()
		if bits < 64 && (n < -(int64(1)<<(bits-1)) || n > int64(1)<<(bits-1)-1) {
			return nil, fmt.Errorf("value %d overflows %s", n, p)
		}

		return appendUint(buf, uint64(n), p.size()), nil //nolint:gosec // two's complement truncation is intended
	case primChar, primI128, primI256:
	}

	return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
}

func appendBigUint(buf []byte, t *typeDef, value any) ([]byte, error) {
	var n *big.Int
	if b, ok := value.(*big.Int); ok {
		n = b
	} else {
		u, err := cast.ToUint64E(value)
		if err != nil {
			return nil, sdkerrors.NewTypeMismatchError(t.id, t.name(), value)
		}
		n = new(big.Int).SetUint64(u)
	}

	size := t.primitive.size()
	if n.Sign() < 0 || n.BitLen() > 8*size {
		return nil, fmt.Errorf("value %s overflows %s", n, t.primitive)
	}

	be := n.FillBytes(make([]byte, size))
	for i := len(be) - 1; i >= 0; i-- {
		buf = append(buf, be[i])
	}

	return buf, nil
}

func appendUint(buf []byte, n uint64, size int) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], n)

	return append(buf, tmp[:size]...)
}

func appendCompact(buf []byte, n uint64) ([]byte, error) {
	enc, err := codec.Encode(gsrpctypes.NewUCompactFromUInt(n))
	if err != nil {
		return nil, err
	}

	return append(buf, enc...), nil
}

func bytesOf(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case types.AccountID:
		return v, true
	case common.Hash:
		return v.Bytes(), true
	case common.Address:
		return v.Bytes(), true
	case types.Signature:
		return v.Bytes(), true
	case string:
		return []byte(v), true
	}

	return nil, false
}

// appendUint32 is a shorthand for fixed width u32 fields of signed extensions.
func appendUint32(buf []byte, n uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, n)
}
