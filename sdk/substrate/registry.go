package substrate

import (
	"fmt"
	"strings"

	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"

	sdkerrors "github.com/smartcontractkit/govproposer/sdk/errors"
)

type typeKind uint8

const (
	kindComposite typeKind = iota
	kindVariant
	kindSequence
	kindArray
	kindTuple
	kindPrimitive
	kindCompact
	kindBitSequence
)

// primitive follows the scale-info primitive ordering.
type primitive uint8

const (
	primBool primitive = iota
	primChar
	primStr
	primU8
	primU16
	primU32
	primU64
	primU128
	primU256
	primI8
	primI16
	primI32
	primI64
	primI128
	primI256
)

var primitiveNames = [...]string{
	"bool", "char", "str", "u8", "u16", "u32", "u64", "u128", "u256",
	"i8", "i16", "i32", "i64", "i128", "i256",
}

func (p primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}

	return fmt.Sprintf("primitive(%d)", uint8(p))
}

// size returns the fixed encoded size, or 0 for str.
func (p primitive) size() int {
	switch p {
	case primBool, primU8, primI8:
		return 1
	case primU16, primI16:
		return 2
	case primChar, primU32, primI32:
		return 4
	case primU64, primI64:
		return 8
	case primU128, primI128:
		return 16
	case primU256, primI256:
		return 32
	case primStr:
		return 0
	}

	return 0
}

func (p primitive) signed() bool {
	return p >= primI8
}

type field struct {
	name   string
	typeID int64
}

type variant struct {
	name   string
	index  uint8
	fields []field
}

type typeParam struct {
	name    string
	typeID  int64
	hasType bool
}

// typeDef is a resolved entry of the runtime's portable type registry.
type typeDef struct {
	id        int64
	path      []string
	params    []typeParam
	kind      typeKind
	fields    []field   // composite
	variants  []variant // variant
	elem      int64     // sequence, array, compact
	length    uint32    // array
	tuple     []int64
	primitive primitive
	bitStore  int64
}

// name returns a readable name for error messages.
func (t *typeDef) name() string {
	if len(t.path) > 0 {
		return strings.Join(t.path, "::")
	}

	switch t.kind {
	case kindPrimitive:
		return t.primitive.String()
	case kindSequence:
		return fmt.Sprintf("Vec<%d>", t.elem)
	case kindArray:
		return fmt.Sprintf("[%d; %d]", t.elem, t.length)
	case kindCompact:
		return fmt.Sprintf("Compact<%d>", t.elem)
	case kindTuple:
		return fmt.Sprintf("tuple%v", t.tuple)
	case kindBitSequence:
		return "BitVec"
	case kindComposite, kindVariant:
	}

	return fmt.Sprintf("type(%d)", t.id)
}

func (t *typeDef) variantByName(name string) (*variant, bool) {
	for i := range t.variants {
		if t.variants[i].name == name {
			return &t.variants[i], true
		}
	}

	return nil, false
}

func (t *typeDef) variantByIndex(index uint8) (*variant, bool) {
	for i := range t.variants {
		if t.variants[i].index == index {
			return &t.variants[i], true
		}
	}

	return nil, false
}

func (t *typeDef) param(name string) (int64, bool) {
	for _, p := range t.params {
		if p.name == name && p.hasType {
			return p.typeID, true
		}
	}

	return 0, false
}

func (t *typeDef) isOption() bool {
	return len(t.path) == 1 && t.path[0] == "Option"
}

type pallet struct {
	name     string
	index    uint8
	hasCalls bool
	calls    int64
}

type signedExtension struct {
	identifier string
	extra      int64
	additional int64
}

// registry is the subset of the V14 runtime metadata needed to encode, decode and sign calls.
type registry struct {
	types            map[int64]*typeDef
	pallets          []pallet
	extrinsicType    int64
	extrinsicVersion uint8
	extensions       []signedExtension
}

func newRegistry(meta *gsrpctypes.Metadata) (*registry, error) {
	if meta.Version != 14 {
		return nil, sdkerrors.NewUnsupportedMetadataVersionError(meta.Version)
	}
	m := meta.AsMetadataV14

	r := &registry{
		types:            make(map[int64]*typeDef, len(m.Lookup.Types)),
		extrinsicType:    m.Extrinsic.Type.Int64(),
		extrinsicVersion: uint8(m.Extrinsic.Version),
	}

	for _, pt := range m.Lookup.Types {
		def := convertType(pt.Type)
		def.id = pt.ID.Int64()
		r.types[def.id] = def
	}

	for _, p := range m.Pallets {
		r.pallets = append(r.pallets, pallet{
			name:     string(p.Name),
			index:    uint8(p.Index),
			hasCalls: p.HasCalls,
			calls:    p.Calls.Type.Int64(),
		})
	}

	for _, ext := range m.Extrinsic.SignedExtensions {
		r.extensions = append(r.extensions, signedExtension{
			identifier: string(ext.Identifier),
			extra:      ext.Type.Int64(),
			additional: ext.AdditionalSigned.Int64(),
		})
	}

	return r, nil
}

func convertType(t gsrpctypes.Si1Type) *typeDef {
	def := &typeDef{}
	for _, segment := range t.Path {
		def.path = append(def.path, string(segment))
	}
	for _, p := range t.Params {
		def.params = append(def.params, typeParam{
			name:    string(p.Name),
			typeID:  p.Type.Int64(),
			hasType: p.HasType,
		})
	}

	d := t.Def
	switch {
	case d.IsComposite:
		def.kind = kindComposite
		def.fields = convertFields(d.Composite.Fields)
	case d.IsVariant:
		def.kind = kindVariant
		for _, v := range d.Variant.Variants {
			def.variants = append(def.variants, variant{
				name:   string(v.Name),
				index:  uint8(v.Index),
				fields: convertFields(v.Fields),
			})
		}
	case d.IsSequence:
		def.kind = kindSequence
		def.elem = d.Sequence.Type.Int64()
	case d.IsArray:
		def.kind = kindArray
		def.elem = d.Array.Type.Int64()
		def.length = uint32(d.Array.Len)
	case d.IsTuple:
		def.kind = kindTuple
		for _, id := range d.Tuple {
			def.tuple = append(def.tuple, id.Int64())
		}
	case d.IsPrimitive:
		def.kind = kindPrimitive
		def.primitive = primitive(d.Primitive.Si0TypeDefPrimitive)
	case d.IsCompact:
		def.kind = kindCompact
		def.elem = d.Compact.Type.Int64()
	case d.IsBitSequence:
		def.kind = kindBitSequence
		def.bitStore = d.BitSequence.BitStoreType.Int64()
	}

	return def
}

func convertFields(in []gsrpctypes.Si1Field) []field {
	out := make([]field, 0, len(in))
	for _, f := range in {
		out = append(out, field{name: string(f.Name), typeID: f.Type.Int64()})
	}

	return out
}

func (r *registry) lookup(id int64) (*typeDef, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, sdkerrors.NewUnknownTypeError(id)
	}

	return t, nil
}

func (r *registry) palletByName(name string) (*pallet, bool) {
	for i := range r.pallets {
		if r.pallets[i].name == name {
			return &r.pallets[i], true
		}
	}
	for i := range r.pallets {
		if strings.EqualFold(r.pallets[i].name, name) {
			return &r.pallets[i], true
		}
	}

	return nil, false
}

func (r *registry) palletByIndex(index uint8) (*pallet, bool) {
	for i := range r.pallets {
		if r.pallets[i].index == index {
			return &r.pallets[i], true
		}
	}

	return nil, false
}

// resolveCall returns the pallet and call variant named by pallet and call.
func (r *registry) resolveCall(palletName, callName string) (*pallet, *variant, error) {
	p, ok := r.palletByName(palletName)
	if !ok {
		return nil, nil, sdkerrors.NewUnknownPalletError(palletName)
	}
	if !p.hasCalls {
		return nil, nil, sdkerrors.NewUnknownCallError(palletName, callName)
	}

	calls, err := r.lookup(p.calls)
	if err != nil {
		return nil, nil, err
	}

	v, ok := calls.variantByName(callName)
	if !ok {
		return nil, nil, sdkerrors.NewUnknownCallError(p.name, callName)
	}

	return p, v, nil
}

// isZeroSized reports whether values of the type always encode to zero bytes.
func (r *registry) isZeroSized(id int64) bool {
	t, err := r.lookup(id)
	if err != nil {
		return false
	}

	switch t.kind {
	case kindComposite:
		for _, f := range t.fields {
			if !r.isZeroSized(f.typeID) {
				return false
			}
		}

		return true
	case kindTuple:
		for _, e := range t.tuple {
			if !r.isZeroSized(e) {
				return false
			}
		}

		return true
	case kindArray:
		return t.length == 0 || r.isZeroSized(t.elem)
	case kindVariant, kindSequence, kindPrimitive, kindCompact, kindBitSequence:
	}

	return false
}

// fixedBytesLen returns N when the type is [u8; N], possibly behind single-field composites.
func (r *registry) fixedBytesLen(id int64) (int, bool) {
	t, err := r.lookup(id)
	if err != nil {
		return 0, false
	}

	switch t.kind {
	case kindComposite:
		if len(t.fields) == 1 {
			return r.fixedBytesLen(t.fields[0].typeID)
		}
	case kindArray:
		if r.isByte(t.elem) {
			return int(t.length), true
		}
	case kindVariant, kindSequence, kindTuple, kindPrimitive, kindCompact, kindBitSequence:
	}

	return 0, false
}

func (r *registry) isByte(id int64) bool {
	t, err := r.lookup(id)
	if err != nil {
		return false
	}

	return t.kind == kindPrimitive && t.primitive == primU8
}
