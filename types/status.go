package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TxStatusKind enumerates the notifications a node sends for a watched extrinsic.
type TxStatusKind string

const (
	TxStatusFuture          TxStatusKind = "Future"
	TxStatusReady           TxStatusKind = "Ready"
	TxStatusBroadcast       TxStatusKind = "Broadcast"
	TxStatusInBlock         TxStatusKind = "InBlock"
	TxStatusRetracted       TxStatusKind = "Retracted"
	TxStatusFinalityTimeout TxStatusKind = "FinalityTimeout"
	TxStatusFinalized       TxStatusKind = "Finalized"
	TxStatusUsurped         TxStatusKind = "Usurped"
	TxStatusDropped         TxStatusKind = "Dropped"
	TxStatusInvalid         TxStatusKind = "Invalid"
	// TxStatusError is not sent by the node. It is raised locally when the submission or the
	// status subscription fails.
	TxStatusError TxStatusKind = "Error"
)

// TxStatus is a single status notification.
//
// BlockHash is set for the kinds that reference a block (InBlock, Retracted,
// FinalityTimeout, Finalized) and Usurped, where it holds the usurping extrinsic hash.
type TxStatus struct {
	Kind      TxStatusKind
	BlockHash common.Hash
	// Err carries the cause of a TxStatusError.
	Err error
}

// String implements fmt.Stringer.
func (s TxStatus) String() string {
	switch s.Kind {
	case TxStatusInBlock, TxStatusRetracted, TxStatusFinalityTimeout, TxStatusFinalized, TxStatusUsurped:
		return fmt.Sprintf("%s(%s)", s.Kind, s.BlockHash.Hex())
	case TxStatusError:
		if s.Err != nil {
			return fmt.Sprintf("%s(%s)", s.Kind, s.Err)
		}
	}

	return string(s.Kind)
}
