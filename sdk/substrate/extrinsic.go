package substrate

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/govproposer/sdk"
	sdkerrors "github.com/smartcontractkit/govproposer/sdk/errors"
	"github.com/smartcontractkit/govproposer/types"
)

const (
	// signedFlag marks a signed extrinsic in the version byte.
	signedFlag = 0x80

	// maxUnhashedPayload is the longest signing payload signed as-is; longer payloads are
	// signed over their blake2b-256 hash.
	maxUnhashedPayload = 256
)

// runtimeInfo holds the chain values committed to by the signed extensions.
type runtimeInfo struct {
	specVersion uint32
	txVersion   uint32
	genesis     common.Hash
}

// accountScheme describes how accounts are addressed and extrinsics signed.
type accountScheme interface {
	// accountID returns the account controlled by the signer.
	accountID(signer sdk.Signer) types.AccountID
	// encodeAddress returns the signer address as embedded in the extrinsic.
	encodeAddress(signer sdk.Signer) []byte
	// digest returns the 32 byte digest the signer signs for payload.
	digest(payload []byte) []byte
	// encodeSignature returns the signature as embedded in the extrinsic.
	encodeSignature(sig types.Signature) []byte
}

// ethereumScheme is used by runtimes with AccountId20 accounts and EthereumSignature: the
// account is the Ethereum address of the key and the payload is signed over its keccak256.
type ethereumScheme struct{}

var _ accountScheme = ethereumScheme{}

func (ethereumScheme) accountID(signer sdk.Signer) types.AccountID {
	return types.AccountID(crypto.PubkeyToAddress(*signer.PublicKey()).Bytes())
}

func (s ethereumScheme) encodeAddress(signer sdk.Signer) []byte {
	return s.accountID(signer)
}

func (ethereumScheme) digest(payload []byte) []byte {
	return crypto.Keccak256(payload)
}

func (ethereumScheme) encodeSignature(sig types.Signature) []byte {
	return sig.Bytes()
}

// detectScheme inspects the extrinsic type parameters for a supported account scheme.
func (r *registry) detectScheme() (accountScheme, error) {
	xt, err := r.lookup(r.extrinsicType)
	if err != nil {
		return nil, err
	}

	addrID, okAddr := xt.param("Address")
	sigID, okSig := xt.param("Signature")
	if !okAddr || !okSig {
		return nil, fmt.Errorf("extrinsic type %s does not declare Address and Signature", xt.name())
	}

	addrLen, okAddr := r.fixedBytesLen(addrID)
	sigLen, okSig := r.fixedBytesLen(sigID)
	if okAddr && okSig && addrLen == types.AccountID20Length && sigLen == types.SignatureLength {
		return ethereumScheme{}, nil
	}

	return nil, sdkerrors.NewUnsupportedAccountSchemeError(r.typeName(addrID), r.typeName(sigID))
}

func (r *registry) typeName(id int64) string {
	t, err := r.lookup(id)
	if err != nil {
		return fmt.Sprintf("type(%d)", id)
	}

	return t.name()
}

// signedExtra encodes the extra and additional-signed data of every signed extension the
// runtime declares, in declaration order. The transaction is immortal and carries no tip.
func (r *registry) signedExtra(rt runtimeInfo, nonce uint64) ([]byte, []byte, error) {
	var (
		extra      []byte
		additional []byte
		err        error
	)

	for _, ext := range r.extensions {
		switch ext.identifier {
		case "CheckNonZeroSender", "CheckWeight":
		case "CheckSpecVersion":
			additional = appendUint32(additional, rt.specVersion)
		case "CheckTxVersion":
			additional = appendUint32(additional, rt.txVersion)
		case "CheckGenesis":
			additional = append(additional, rt.genesis.Bytes()...)
		case "CheckMortality", "CheckEra":
			// immortal era, checked against the genesis hash
			extra = append(extra, 0x00)
			additional = append(additional, rt.genesis.Bytes()...)
		case "CheckNonce":
			if extra, err = appendCompact(extra, nonce); err != nil {
				return nil, nil, err
			}
		case "ChargeTransactionPayment":
			if extra, err = appendCompact(extra, 0); err != nil {
				return nil, nil, err
			}
		case "ChargeAssetTxPayment":
			if extra, err = appendCompact(extra, 0); err != nil {
				return nil, nil, err
			}
			// no asset id
			extra = append(extra, 0x00)
		case "CheckMetadataHash":
			// mode disabled, no metadata hash
			extra = append(extra, 0x00)
			additional = append(additional, 0x00)
		default:
			if !r.isZeroSized(ext.extra) || !r.isZeroSized(ext.additional) {
				return nil, nil, sdkerrors.NewUnsupportedSignedExtensionError(ext.identifier)
			}
		}
	}

	return extra, additional, nil
}

// buildSignedExtrinsic returns the length-prefixed encoding of call signed by signer.
func (r *registry) buildSignedExtrinsic(
	scheme accountScheme, rt runtimeInfo, signer sdk.Signer, nonce uint64, call types.Call,
) ([]byte, error) {
	extra, additional, err := r.signedExtra(rt, nonce)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(call.Data)+len(extra)+len(additional))
	payload = append(payload, call.Data...)
	payload = append(payload, extra...)
	payload = append(payload, additional...)
	if len(payload) > maxUnhashedPayload {
		payload = types.Blake2b256(payload).Bytes()
	}

	sig, err := signer.SignDigest(scheme.digest(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to sign extrinsic: %w", err)
	}

	body := []byte{signedFlag | r.extrinsicVersion}
	body = append(body, scheme.encodeAddress(signer)...)
	body = append(body, scheme.encodeSignature(sig)...)
	body = append(body, extra...)
	body = append(body, call.Data...)

	out, err := appendCompact(make([]byte, 0, len(body)+5), uint64(len(body)))
	if err != nil {
		return nil, err
	}

	return append(out, body...), nil
}
