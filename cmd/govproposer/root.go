package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/govproposer"
	"github.com/smartcontractkit/govproposer/internal/fetch"
	"github.com/smartcontractkit/govproposer/internal/logging"
	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/sdk/substrate"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitError = 255
)

// app holds the process dependencies of the command.
type app struct {
	dialer  sdk.Dialer
	fetcher govproposer.CodeFetcher
	stdout  io.Writer
	stderr  io.Writer
}

func newApp() *app {
	return &app{
		dialer:  substrate.NewDialer(),
		fetcher: fetch.New(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// execute runs the command with args and returns the process exit code.
func execute(ctx context.Context, a *app, args []string) int {
	cmd := a.buildRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	if isUsageError(err) {
		fmt.Fprintf(a.stderr, "error: %s\n", err)
		return exitUsage
	}

	return exitError
}

func isUsageError(err error) bool {
	var usageErr *govproposer.UsageError
	var typeErr *govproposer.UnknownProposalTypeError

	return errors.As(err, &usageErr) || errors.As(err, &typeErr)
}

func (a *app) buildRootCmd() *cobra.Command {
	var (
		techCommThreshold uint32
		referendumDelay   uint32
		proxyAddress      string
		logLevel          string
		envFile           string
	)

	cmd := &cobra.Command{
		Use:   "govproposer <node-endpoint> <proposal-type> [proposal-args...]",
		Short: "Submit a whitelisted governance proposal through the governance proxy",
		Long: `Builds the whitelist, technical committee and referendum calls for a proposal and submits
them through the governance proxy, signed with the key in GOV_PROXY_KEY.

` + govproposer.ProposalTypesUsage(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return govproposer.NewUsageError("requires a node endpoint and a proposal type")
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := logging.New(a.stdout, logLevel)
			if err != nil {
				return govproposer.NewUsageError("%v", err)
			}
			defer func() { _ = lggr.Sync() }()

			endpoint, proposalType := args[0], args[1]
			generator, err := govproposer.NewCallGenerator(proposalType, args[2:], a.fetcher)
			if err != nil {
				var typeErr *govproposer.UnknownProposalTypeError
				if errors.As(err, &typeErr) {
					fmt.Fprintf(a.stdout, "Usage: %s\n\n%s", cmd.Use, govproposer.ProposalTypesUsage())
				}

				return err
			}

			env, err := loadEnv(envFile)
			if err != nil {
				return err
			}

			signer, err := govproposer.NewPrivateKeySignerFromHex(env.ProxyKey)
			if err != nil {
				return err
			}
			lggr.Infof("loaded EVM keyring for address: %s", signer.Address().Hex())

			var overrides configOverrides
			if cmd.Flags().Changed("tech-comm-threshold") {
				overrides.TechCommThreshold = &techCommThreshold
			}
			if cmd.Flags().Changed("referendum-delay") {
				overrides.ReferendumDelay = &referendumDelay
			}
			if cmd.Flags().Changed("proxy-address") {
				overrides.ProxyAddress = &proxyAddress
			}
			cfg, err := resolveConfig(env, overrides)
			if err != nil {
				return err
			}

			return a.run(cmd.Context(), lggr, endpoint, proposalType, generator, signer, cfg)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return govproposer.NewUsageError("%v", err)
	})

	flags := cmd.Flags()
	flags.Uint32Var(&techCommThreshold, "tech-comm-threshold", govproposer.DefaultTechCommThreshold,
		"Technical committee votes required to approve the whitelist call")
	flags.Uint32Var(&referendumDelay, "referendum-delay", govproposer.DefaultReferendumDelay,
		"Enactment delay of the referendum, in blocks")
	flags.StringVar(&proxyAddress, "proxy-address", govproposer.DefaultProxyAddress,
		"Account the signer acts for through the governance proxy")
	flags.StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&envFile, "env-file", ".env", "Optional file to load environment variables from")

	return cmd
}

func (a *app) run(
	ctx context.Context,
	lggr *zap.SugaredLogger,
	endpoint, proposalType string,
	generator govproposer.CallGenerator,
	signer sdk.Signer,
	cfg govproposer.Config,
) error {
	ctx = sdk.ContextWithLogger(ctx, lggr)

	lggr.Infof("processing governance proposal for: %s", proposalType)
	if _, err := govproposer.NewWorkflow(a.dialer, signer, cfg).Run(ctx, endpoint, generator); err != nil {
		lggr.Errorf("error: %s", err)
		return err
	}
	lggr.Infof("process completed successfully")

	return nil
}
