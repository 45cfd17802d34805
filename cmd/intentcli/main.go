package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	gosolana "github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/internal/intents"
	"intentfi-client-go/internal/launchpad"
	"intentfi-client-go/internal/logger"
	"intentfi-client-go/internal/solana"
	"intentfi-client-go/internal/wallet"
)

const Version = "0.3.0"

// CLI flags
var (
	command    = flag.String("cmd", "derive", "Command: derive | launch-status | contribute | swap | lend | readiness")
	configFile = flag.String("config", "", "Path to config file")
	network    = flag.String("network", "", "Network override (mainnet/devnet/localnet)")
	logLevel   = flag.String("log-level", "", "Log level override (debug/info/warn/error)")

	authorityFlag = flag.String("authority", "", "Wallet public key (base58), used without a private key")
	privateKey    = flag.String("private-key", "", "Base58 private key for the dev signer")
	mnemonic      = flag.String("mnemonic", "", "BIP39 mnemonic for the dev signer")

	creatorFlag  = flag.String("creator", "", "Launch creator public key (base58)")
	amountFlag   = flag.Uint64("amount", 0, "Amount in base units (lamports for contributions)")
	decimalsFlag = flag.Uint("decimals", 9, "Token decimals for launch math")
	fromMintFlag = flag.String("from-mint", "", "Swap source mint (base58)")
	toMintFlag   = flag.String("to-mint", "", "Swap destination mint (base58)")
	slippageFlag = flag.Uint("slippage", 50, "Max slippage in bps")
	apyFlag      = flag.Uint("min-apy", 500, "Minimum APY in bps for lend intents")
)

// App wires the client components together for the demo commands.
type App struct {
	config    *config.Config
	logger    *logger.Logger
	rpcClient *solana.Client
	wallet    *wallet.Wallet
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *network != "" {
		cfg.Network = *network
		cfg.RPCUrl = config.GetRPCEndpoint(cfg.Network)
		cfg.WSUrl = config.GetWSEndpoint(cfg.Network)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log, err := logger.NewLogger(logger.LogConfig{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		LogToFile:   cfg.Logging.LogToFile,
		LogFilePath: cfg.Logging.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create application")
	}

	if err := app.Run(*command); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

// NewApp builds the RPC client and optional dev wallet.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	rpcClient := solana.NewClient(solana.ClientConfig{
		RPCEndpoint: cfg.RPCUrl,
		APIKey:      cfg.RPCAPIKey,
		Timeout:     cfg.Transaction.Timeout,
	}, log.Logger)

	app := &App{
		config:    cfg,
		logger:    log,
		rpcClient: rpcClient,
	}

	if *privateKey != "" || *mnemonic != "" {
		w, err := wallet.NewWallet(wallet.Config{
			PrivateKey: *privateKey,
			Mnemonic:   *mnemonic,
			Network:    cfg.Network,
		}, rpcClient, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create wallet: %w", err)
		}
		app.wallet = w
	}

	return app, nil
}

// Run dispatches one demo command.
func (a *App) Run(cmd string) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Transaction.Timeout)
	defer cancel()

	a.logger.LogStartup(Version, a.config.Network, a.config.RPCUrl)

	switch cmd {
	case "derive":
		return a.runDerive()
	case "launch-status":
		return a.runLaunchStatus(ctx)
	case "contribute":
		return a.runContribute(ctx)
	case "swap":
		return a.runSwap(ctx)
	case "lend":
		return a.runLend(ctx)
	case "readiness":
		return a.runReadiness(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// authority resolves the acting wallet from the signer or the -authority
// flag.
func (a *App) authority() (gosolana.PublicKey, error) {
	if a.wallet != nil {
		return a.wallet.PublicKey(), nil
	}
	if *authorityFlag == "" {
		return gosolana.PublicKey{}, fmt.Errorf("-authority or a signer key is required")
	}
	return gosolana.PublicKeyFromBase58(*authorityFlag)
}

func (a *App) runDerive() error {
	launchpadState, lpBump, err := launchpad.DeriveLaunchpadStatePDA()
	if err != nil {
		return err
	}
	protocolState, psBump, err := intents.DeriveProtocolStatePDA()
	if err != nil {
		return err
	}

	fmt.Printf("launchpad_state: %s (bump %d)\n", launchpadState, lpBump)
	fmt.Printf("protocol_state:  %s (bump %d)\n", protocolState, psBump)

	if auth, err := a.authority(); err == nil {
		userAccount, uaBump, err := intents.DeriveUserAccountPDA(auth)
		if err != nil {
			return err
		}
		launchState, lsBump, err := launchpad.DeriveLaunchStatePDA(auth)
		if err != nil {
			return err
		}
		fmt.Printf("user_account:    %s (bump %d)\n", userAccount, uaBump)
		fmt.Printf("launch_state:    %s (bump %d)\n", launchState, lsBump)
	}
	return nil
}

func (a *App) runLaunchStatus(ctx context.Context) error {
	if *creatorFlag == "" {
		return fmt.Errorf("-creator is required")
	}
	creator, err := gosolana.PublicKeyFromBase58(*creatorFlag)
	if err != nil {
		return fmt.Errorf("invalid creator: %w", err)
	}

	addr, _, err := launchpad.DeriveLaunchStatePDA(creator)
	if err != nil {
		return err
	}
	data, err := a.rpcClient.GetAccountData(ctx, addr)
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Printf("no launch found at %s\n", addr)
		return nil
	}

	state, err := launchpad.DecodeLaunchState(data)
	if err != nil {
		return err
	}

	fmt.Printf("launch %s (%s)\n", state.TokenName, state.TokenSymbol)
	fmt.Printf("  status:        %s\n", state.Status)
	fmt.Printf("  raised:        %d / %d (soft %d)\n", state.TotalRaised, state.HardCap, state.SoftCap)
	fmt.Printf("  tokens sold:   %d / %d\n", state.TokensSold, state.TokensForSale)
	fmt.Printf("  contributors:  %d\n", state.TotalContributors)
	fmt.Printf("  ends:          %s\n", time.Unix(state.LaunchEnd, 0).UTC().Format(time.RFC3339))
	return nil
}

func (a *App) runContribute(ctx context.Context) error {
	auth, err := a.authority()
	if err != nil {
		return err
	}
	if *creatorFlag == "" {
		return fmt.Errorf("-creator is required")
	}
	creator, err := gosolana.PublicKeyFromBase58(*creatorFlag)
	if err != nil {
		return fmt.Errorf("invalid creator: %w", err)
	}
	if *amountFlag == 0 {
		return fmt.Errorf("-amount is required")
	}

	executor := launchpad.NewExecutor(a.rpcClient, a.logger, a.config)
	plan, err := executor.Contribute(ctx, auth, creator, *amountFlag, uint8(*decimalsFlag))
	if err != nil {
		return err
	}

	fmt.Printf("assembled %d instructions (blockhash %s)\n", len(plan.Instructions), plan.RecentBlockhash)
	fmt.Printf("  contribution: %d lamports\n", plan.Amount)
	fmt.Printf("  platform fee: %d lamports\n", plan.PlatformFee)
	fmt.Printf("  tokens owed:  %d\n", plan.TokensToReceive)
	return nil
}

func (a *App) runSwap(ctx context.Context) error {
	auth, err := a.authority()
	if err != nil {
		return err
	}
	fromMint, err := gosolana.PublicKeyFromBase58(*fromMintFlag)
	if err != nil {
		return fmt.Errorf("invalid from-mint: %w", err)
	}
	toMint, err := gosolana.PublicKeyFromBase58(*toMintFlag)
	if err != nil {
		return fmt.Errorf("invalid to-mint: %w", err)
	}

	executor := intents.NewExecutor(a.rpcClient, a.logger, a.config)
	plan, err := executor.CreateSwapIntent(ctx, intents.SwapIntentRequest{
		Authority:      auth,
		FromMint:       fromMint,
		ToMint:         toMint,
		Amount:         *amountFlag,
		MaxSlippageBps: uint16(*slippageFlag),
	})
	if err != nil {
		return err
	}

	a.printIntentPlan(plan)
	return nil
}

func (a *App) runLend(ctx context.Context) error {
	auth, err := a.authority()
	if err != nil {
		return err
	}
	mint, err := gosolana.PublicKeyFromBase58(*fromMintFlag)
	if err != nil {
		return fmt.Errorf("invalid from-mint: %w", err)
	}

	executor := intents.NewExecutor(a.rpcClient, a.logger, a.config)
	plan, err := executor.CreateLendIntent(ctx, intents.LendIntentRequest{
		Authority: auth,
		Mint:      mint,
		Amount:    *amountFlag,
		MinAPYBps: uint16(*apyFlag),
	})
	if err != nil {
		return err
	}

	a.printIntentPlan(plan)
	return nil
}

func (a *App) runReadiness(ctx context.Context) error {
	auth, err := a.authority()
	if err != nil {
		return err
	}

	executor := intents.NewExecutor(a.rpcClient, a.logger, a.config)
	readiness, err := executor.CheckReadiness(ctx, auth)
	if err != nil {
		return err
	}

	fmt.Printf("protocol live:    %v\n", readiness.ProtocolLive)
	fmt.Printf("user initialized: %v\n", readiness.UserInitialized)
	if readiness.Protocol != nil {
		fmt.Printf("protocol fee:     %d bps\n", readiness.Protocol.ProtocolFeeBps)
		fmt.Printf("intents created:  %d\n", readiness.Protocol.TotalIntentsCreated)
	}
	if readiness.User != nil {
		fmt.Printf("active intents:   %d\n", readiness.User.ActiveIntents)
	}
	return nil
}

func (a *App) printIntentPlan(plan *intents.IntentPlan) {
	mode := "on-chain"
	if !plan.OnChain {
		mode = "fallback (protocol not deployed)"
	}
	fmt.Printf("assembled %d instructions, %s (blockhash %s)\n",
		len(plan.Instructions), mode, plan.RecentBlockhash)
	fmt.Printf("  protocol fee: %d\n", plan.ProtocolFee)
}
