package govproposer

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/govproposer/types"
)

const (
	// DefaultTechCommThreshold is the number of technical committee votes the proposal needs.
	DefaultTechCommThreshold uint32 = 4
	// DefaultReferendumDelay is the enactment delay of the referendum, in blocks.
	DefaultReferendumDelay uint32 = 100
	// DefaultProxyAddress is the account the signer acts for through the governance proxy.
	DefaultProxyAddress = "0x3e25247CfF03F99a7D83b28F207112234feE73a6"

	// ConnectTimeout bounds the initial connection to the node.
	ConnectTimeout = 5 * time.Second
)

// Config holds the governance parameters applied to every proposal.
type Config struct {
	TechCommThreshold uint32          `validate:"required"`
	ReferendumDelay   uint32
	ProxyAddress      types.AccountID `validate:"required"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TechCommThreshold: DefaultTechCommThreshold,
		ReferendumDelay:   DefaultReferendumDelay,
		ProxyAddress:      types.MustParseAccountID(DefaultProxyAddress),
	}
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if n := len(c.ProxyAddress); n != types.AccountID20Length && n != types.AccountID32Length {
		return fmt.Errorf("invalid proxy address length: %d", n)
	}

	return nil
}
