package sdkerrors

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when call data ends before every field was decoded.
var ErrTruncated = errors.New("unexpected end of call data")

type UnknownPalletError struct {
	Pallet string
}

func (e *UnknownPalletError) Error() string {
	return "unknown pallet: " + e.Pallet
}

func NewUnknownPalletError(pallet string) *UnknownPalletError {
	return &UnknownPalletError{Pallet: pallet}
}

type UnknownCallError struct {
	Pallet string
	Call   string
}

func (e *UnknownCallError) Error() string {
	return fmt.Sprintf("unknown call %s.%s", e.Pallet, e.Call)
}

func NewUnknownCallError(pallet, call string) *UnknownCallError {
	return &UnknownCallError{Pallet: pallet, Call: call}
}

// UnknownCallIndexError is returned when call data references a pallet or call index that the
// runtime does not define.
type UnknownCallIndexError struct {
	PalletIndex uint8
	CallIndex   uint8
}

func (e *UnknownCallIndexError) Error() string {
	return fmt.Sprintf("unknown call index [%d, %d]", e.PalletIndex, e.CallIndex)
}

func NewUnknownCallIndexError(pallet, call uint8) *UnknownCallIndexError {
	return &UnknownCallIndexError{PalletIndex: pallet, CallIndex: call}
}

type ArgumentCountError struct {
	Call     string
	Expected int
	Received int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("call %s expects %d arguments, received %d", e.Call, e.Expected, e.Received)
}

func NewArgumentCountError(call string, expected, received int) *ArgumentCountError {
	return &ArgumentCountError{Call: call, Expected: expected, Received: received}
}

// TypeMismatchError is returned when a Go value cannot be encoded as the metadata type.
type TypeMismatchError struct {
	TypeID int64
	Type   string
	Value  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot encode %T as %s (type %d)", e.Value, e.Type, e.TypeID)
}

func NewTypeMismatchError(typeID int64, typ string, value any) *TypeMismatchError {
	return &TypeMismatchError{TypeID: typeID, Type: typ, Value: value}
}

type UnknownTypeError struct {
	TypeID int64
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("type %d not found in metadata", e.TypeID)
}

func NewUnknownTypeError(typeID int64) *UnknownTypeError {
	return &UnknownTypeError{TypeID: typeID}
}

type UnsupportedSignedExtensionError struct {
	Identifier string
}

func (e *UnsupportedSignedExtensionError) Error() string {
	return "unsupported signed extension: " + e.Identifier
}

func NewUnsupportedSignedExtensionError(identifier string) *UnsupportedSignedExtensionError {
	return &UnsupportedSignedExtensionError{Identifier: identifier}
}

type UnsupportedMetadataVersionError struct {
	Version uint8
}

func (e *UnsupportedMetadataVersionError) Error() string {
	return fmt.Sprintf("unsupported metadata version: %d", e.Version)
}

func NewUnsupportedMetadataVersionError(version uint8) *UnsupportedMetadataVersionError {
	return &UnsupportedMetadataVersionError{Version: version}
}

// UnsupportedAccountSchemeError is returned when the runtime's address and signature types do
// not accept secp256k1 signatures.
type UnsupportedAccountSchemeError struct {
	Address   string
	Signature string
}

func (e *UnsupportedAccountSchemeError) Error() string {
	return fmt.Sprintf("unsupported account scheme: address %s, signature %s", e.Address, e.Signature)
}

func NewUnsupportedAccountSchemeError(address, signature string) *UnsupportedAccountSchemeError {
	return &UnsupportedAccountSchemeError{Address: address, Signature: signature}
}
