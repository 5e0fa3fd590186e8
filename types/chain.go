package types

import "github.com/ethereum/go-ethereum/common"

// ChainInfo identifies the chain and the node software serving it.
type ChainInfo struct {
	Chain       string
	NodeName    string
	NodeVersion string
}

// Header is a minimal block header.
type Header struct {
	Number uint64
	Hash   common.Hash
}
