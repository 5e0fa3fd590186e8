package govproposer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smartcontractkit/govproposer/types"
)

// ErrConnectionTimeout is returned when the node does not accept the connection within
// ConnectTimeout.
var ErrConnectionTimeout = errors.New("connection timeout")

// UsageError is returned when the command line is missing or has malformed arguments.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownProposalTypeError is returned when the proposal type is not one of types.ProposalTypes.
type UnknownProposalTypeError struct {
	ProposalType string
}

func (e *UnknownProposalTypeError) Error() string {
	valid := make([]string, 0, len(types.ProposalTypes()))
	for _, t := range types.ProposalTypes() {
		valid = append(valid, string(t))
	}

	return fmt.Sprintf("unknown proposal type %q, expected one of: %s", e.ProposalType, strings.Join(valid, ", "))
}

func NewUnknownProposalTypeError(proposalType string) *UnknownProposalTypeError {
	return &UnknownProposalTypeError{ProposalType: proposalType}
}

// ConnectionError is returned when the node cannot be reached or identified.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(endpoint string, err error) *ConnectionError {
	return &ConnectionError{Endpoint: endpoint, Err: err}
}

// FetchError is returned when the runtime code cannot be downloaded.
type FetchError struct {
	URI string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(uri string, err error) *FetchError {
	return &FetchError{URI: uri, Err: err}
}

// EncodeError is returned when a call of the proposal cannot be encoded.
type EncodeError struct {
	// Step names the call that failed, e.g. "whitelistCall".
	Step string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Step, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func NewEncodeError(step string, err error) *EncodeError {
	return &EncodeError{Step: step, Err: err}
}

// DecodeError is returned when raw call data is not valid hex or not a call of the runtime.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode call data %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(input string, err error) *DecodeError {
	return &DecodeError{Input: input, Err: err}
}

// SubmissionFailure is returned when a transaction settles without being included in a block.
type SubmissionFailure struct {
	Call   string
	Status types.TxStatus
	Err    error
}

func (e *SubmissionFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission of %s failed: %s: %v", e.Call, e.Status.Kind, e.Err)
	}

	return fmt.Sprintf("submission of %s failed: %s", e.Call, e.Status)
}

func (e *SubmissionFailure) Unwrap() error {
	return e.Err
}

func NewSubmissionFailure(call string, status types.TxStatus) *SubmissionFailure {
	return &SubmissionFailure{Call: call, Status: status, Err: status.Err}
}
