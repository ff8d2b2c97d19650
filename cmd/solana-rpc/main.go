// Command solana-rpc queries a Solana node over JSON-RPC.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sebamiro/solana"
)

const (
	ConfigFlag     = "config"
	EndpointFlag   = "endpoint"
	HeaderFlag     = "header"
	TimeoutFlag    = "timeout"
	CommitmentFlag = "commitment"
	VerboseFlag    = "verbose"
)

type session struct {
	cfg    Config
	client solana.Client
	log    *zap.Logger
	out    io.Writer
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		var rpcErr *solana.RPCError
		if errors.As(err, &rpcErr) {
			fmt.Fprintf(os.Stderr, "error %d: %s\n", rpcErr.Code, rpcErr.Message)
			if len(rpcErr.Data) > 0 {
				fmt.Fprintf(os.Stderr, "data: %s\n", rpcErr.Data)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newApp(out io.Writer) *cli.App {
	s := &session{out: out}
	return &cli.App{
		Name:  "solana-rpc",
		Usage: "Query a Solana node over JSON-RPC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Usage:   "YAML config file",
				EnvVars: []string{"SOLANA_RPC_CONFIG"},
			},
			&cli.StringFlag{
				Name:    EndpointFlag,
				Aliases: []string{"u"},
				Usage:   "Node URL or cluster name (mainnet-beta, devnet, testnet, localnet)",
			},
			&cli.StringSliceFlag{
				Name:    HeaderFlag,
				Aliases: []string{"H"},
				Usage:   "Extra request header, \"Key: Value\"",
			},
			&cli.DurationFlag{
				Name:  TimeoutFlag,
				Usage: "Per command timeout, 0 disables it",
			},
			&cli.StringFlag{
				Name:  CommitmentFlag,
				Usage: "processed, confirmed or finalized",
			},
			&cli.BoolFlag{
				Name:  VerboseFlag,
				Usage: "Log every call",
			},
		},
		Before: s.setup,
		After: func(*cli.Context) error {
			if s.log != nil {
				_ = s.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "call",
				Usage:     "Call any method with positional JSON params",
				ArgsUsage: "METHOD [JSON_PARAM...]",
				Action:    s.call,
			},
			{
				Name:   "slot",
				Usage:  "Print the current slot",
				Action: s.slot,
			},
			{
				Name:      "balance",
				Usage:     "Print the balance of an account",
				ArgsUsage: "PUBKEY",
				Action:    s.balance,
			},
			{
				Name:      "account",
				Usage:     "Print an account",
				ArgsUsage: "PUBKEY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "encoding",
						Value: string(solana.EncodingBase64),
						Usage: "base58, base64, base64+zstd or jsonParsed",
					},
				},
				Action: s.account,
			},
			{
				Name:      "transaction",
				Aliases:   []string{"tx"},
				Usage:     "Print a confirmed transaction",
				ArgsUsage: "SIGNATURE",
				Action:    s.transaction,
			},
			{
				Name:      "send",
				Usage:     "Submit a signed base64 transaction",
				ArgsUsage: "TRANSACTION",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "skip-preflight"},
					&cli.BoolFlag{Name: "confirm", Usage: "Wait until the transaction reaches the commitment"},
				},
				Action: s.send,
			},
			{
				Name:      "program-accounts",
				Usage:     "List the accounts owned by a program",
				ArgsUsage: "PROGRAM",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "data-size", Usage: "Only accounts with this data length"},
					&cli.BoolFlag{Name: "keys", Usage: "Only print the addresses"},
				},
				Action: s.programAccounts,
			},
			{
				Name:   "version",
				Usage:  "Print the node version",
				Action: s.version,
			},
			{
				Name:   "health",
				Usage:  "Print the node health",
				Action: s.health,
			},
			{
				Name:      "airdrop",
				Usage:     "Request an airdrop and wait for it",
				ArgsUsage: "PUBKEY SOL",
				Action:    s.airdrop,
			},
			{
				Name:  "clusters",
				Usage: "List the known clusters",
				Action: func(*cli.Context) error {
					return s.clusters()
				},
			},
		},
	}
}

func (s *session) setup(cCtx *cli.Context) error {
	headers, err := parseHeaders(cCtx.StringSlice(HeaderFlag))
	if err != nil {
		return err
	}
	overrides := Config{
		Endpoint:   cCtx.String(EndpointFlag),
		Headers:    headers,
		Commitment: cCtx.String(CommitmentFlag),
	}
	if cCtx.IsSet(TimeoutFlag) {
		timeout := cCtx.Duration(TimeoutFlag)
		overrides.Timeout = &timeout
	}
	cfg, err := loadConfig(cCtx.String(ConfigFlag), overrides)
	if err != nil {
		return err
	}
	logger, err := newLogger(cCtx.Bool(VerboseFlag))
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	client, err := solana.NewClient(cfg.Endpoint,
		solana.WithHeaders(cfg.Headers),
		solana.WithLogger(logger))
	if err != nil {
		return err
	}
	s.cfg, s.client, s.log = cfg, client, logger
	return nil
}

func (s *session) context(cCtx *cli.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout == nil || *s.cfg.Timeout == 0 {
		return context.WithCancel(cCtx.Context)
	}
	return context.WithTimeout(cCtx.Context, *s.cfg.Timeout)
}

func (s *session) commitment() *solana.CommitmentConfig {
	return &solana.CommitmentConfig{Commitment: solana.Commitment(s.cfg.Commitment)}
}

func (s *session) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(s.out, string(b))
	return err
}

func pubkeyArg(cCtx *cli.Context, i int) (solana.PublicKey, error) {
	arg := cCtx.Args().Get(i)
	if arg == "" {
		return solana.PublicKey{}, errors.New("PUBKEY is required")
	}
	k, err := solana.ParsePublicKey(arg)
	return k, errors.Wrap(err, "PUBKEY")
}

func (s *session) call(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return errors.New("METHOD is required")
	}
	params := make([]any, 0, cCtx.NArg()-1)
	for i, arg := range cCtx.Args().Tail() {
		if !json.Valid([]byte(arg)) {
			return errors.Errorf("param %d is not JSON: %s", i+1, arg)
		}
		params = append(params, json.RawMessage(arg))
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	result, err := s.client.Call(ctx, cCtx.Args().First(), params...)
	if err != nil {
		return err
	}
	return s.print(result)
}

func (s *session) slot(cCtx *cli.Context) error {
	ctx, cancel := s.context(cCtx)
	defer cancel()
	slot, err := s.client.GetSlot(ctx, s.commitment())
	if err != nil {
		return err
	}
	return s.print(slot)
}

func (s *session) balance(cCtx *cli.Context) error {
	key, err := pubkeyArg(cCtx, 0)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	res, err := s.client.GetBalance(ctx, key, s.commitment())
	if err != nil {
		return err
	}
	return s.print(map[string]any{
		"slot":     res.Context.Slot,
		"lamports": res.Value,
		"sol":      solana.LamportsToSOL(res.Value).String(),
	})
}

func (s *session) account(cCtx *cli.Context) error {
	key, err := pubkeyArg(cCtx, 0)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	res, err := s.client.GetAccountInfo(ctx, key, &solana.GetAccountInfoConfig{
		Commitment: solana.Commitment(s.cfg.Commitment),
		Encoding:   solana.Encoding(cCtx.String("encoding")),
	})
	if err != nil {
		return err
	}
	if res.Value == nil {
		return errors.Wrap(solana.ErrAccountNotFound, key.String())
	}
	return s.print(res.Value)
}

func (s *session) transaction(cCtx *cli.Context) error {
	sig, err := solana.ParseSignature(cCtx.Args().First())
	if err != nil {
		return errors.Wrap(err, "SIGNATURE")
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	maxVersion := uint8(0)
	tx, err := s.client.GetTransaction(ctx, sig, &solana.GetTransactionConfig{
		Commitment:                     solana.Commitment(s.cfg.Commitment),
		Encoding:                       solana.TransactionEncodingJSON,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Errorf("transaction %s not found", sig)
	}
	return s.print(tx)
}

func (s *session) send(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return errors.New("TRANSACTION is required")
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	tx := solana.NewTransactionSender().
		Client(&s.client).
		Transaction(cCtx.Args().First()).
		SkipPreflight(cCtx.Bool("skip-preflight")).
		PreflightCommitment(solana.Commitment(s.cfg.Commitment))
	var (
		sig solana.Signature
		err error
	)
	if cCtx.Bool("confirm") {
		sig, err = tx.SendAndConfirm(ctx, solana.Commitment(s.cfg.Commitment))
	} else {
		sig, err = tx.Send(ctx)
	}
	if err != nil {
		return err
	}
	return s.print(sig)
}

func (s *session) programAccounts(cCtx *cli.Context) error {
	program, err := pubkeyArg(cCtx, 0)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	q := solana.NewProgramQuery().
		Client(&s.client).
		Program(program).
		Commitment(solana.Commitment(s.cfg.Commitment))
	if cCtx.IsSet("data-size") {
		q.DataSize(cCtx.Uint64("data-size"))
	}
	if cCtx.Bool("keys") {
		keys, err := q.Keys(ctx)
		if err != nil {
			return err
		}
		return s.print(keys)
	}
	accounts, err := q.Fetch(ctx)
	if err != nil {
		return err
	}
	return s.print(accounts)
}

func (s *session) version(cCtx *cli.Context) error {
	ctx, cancel := s.context(cCtx)
	defer cancel()
	v, err := s.client.GetVersion(ctx)
	if err != nil {
		return err
	}
	return s.print(v)
}

func (s *session) health(cCtx *cli.Context) error {
	ctx, cancel := s.context(cCtx)
	defer cancel()
	h, err := s.client.GetHealth(ctx)
	if err != nil {
		return err
	}
	return s.print(h)
}

func (s *session) airdrop(cCtx *cli.Context) error {
	key, err := pubkeyArg(cCtx, 0)
	if err != nil {
		return err
	}
	lamports, err := solana.ParseSOL(cCtx.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "SOL")
	}
	ctx, cancel := s.context(cCtx)
	defer cancel()
	sig, err := s.client.RequestAirdropAndConfirm(ctx, key, lamports, solana.Commitment(s.cfg.Commitment))
	if err != nil {
		return err
	}
	s.log.Info("airdrop confirmed", zap.Stringer("signature", sig), zap.Uint64("lamports", lamports))
	return s.print(sig)
}

func (s *session) clusters() error {
	names := solana.Clusters()
	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		u, _ := solana.ClusterURL(name)
		out = append(out, map[string]string{"name": name, "url": u})
	}
	return s.print(out)
}
