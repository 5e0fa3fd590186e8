package types

import "github.com/ethereum/go-ethereum/common"

// Finality describes how far a confirmed extrinsic has progressed when the submission settled.
type Finality string

const (
	FinalityInBlock   Finality = "includedInBlock"
	FinalityFinalized Finality = "finalized"
)

// SubmissionOutcome is the confirmation record of a settled submission.
type SubmissionOutcome struct {
	Call      string      `json:"call"`
	BlockHash common.Hash `json:"blockHash"`
	Finality  Finality    `json:"finality"`
}
