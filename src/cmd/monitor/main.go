package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dongqixiaoquan-sketch/gold/src/eventpubsub"
	"github.com/dongqixiaoquan-sketch/gold/src/models"
	"github.com/dongqixiaoquan-sketch/gold/src/monitor"
	"github.com/dongqixiaoquan-sketch/gold/src/pricefeed"
	"github.com/dongqixiaoquan-sketch/gold/src/report"
	"github.com/dongqixiaoquan-sketch/gold/src/utils"
)

type RunArgs struct {
	InitialPrice    float64
	Spread          float64
	DepositA        float64
	DepositB        float64
	IntervalSeconds int
	ConfigPath      string
	FallbackPrice   float64
	GoEnv           string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/monitor/main.go --initial-price 602.8 --interval 60",
	Short: "Monitor a locked gold spread and alert when either leg should be closed",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		initialPrice, err := cmd.Flags().GetFloat64("initial-price")
		if err != nil {
			log.Fatalf("error getting initial-price: %v", err)
		}

		spread, err := cmd.Flags().GetFloat64("spread")
		if err != nil {
			log.Fatalf("error getting spread: %v", err)
		}

		depositA, err := cmd.Flags().GetFloat64("deposit-a")
		if err != nil {
			log.Fatalf("error getting deposit-a: %v", err)
		}

		depositB, err := cmd.Flags().GetFloat64("deposit-b")
		if err != nil {
			log.Fatalf("error getting deposit-b: %v", err)
		}

		interval, err := cmd.Flags().GetInt("interval")
		if err != nil {
			log.Fatalf("error getting interval: %v", err)
		}

		configPath, err := cmd.Flags().GetString("providers-config")
		if err != nil {
			log.Fatalf("error getting providers-config: %v", err)
		}

		fallbackPrice, err := cmd.Flags().GetFloat64("fallback-price")
		if err != nil {
			log.Fatalf("error getting fallback-price: %v", err)
		}

		if err := Run(RunArgs{
			InitialPrice:    initialPrice,
			Spread:          spread,
			DepositA:        depositA,
			DepositB:        depositB,
			IntervalSeconds: interval,
			ConfigPath:      configPath,
			FallbackPrice:   fallbackPrice,
			GoEnv:           goEnv,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func buildChain(args RunArgs) (*pricefeed.Chain, error) {
	config := pricefeed.DefaultConfig()

	configPath := args.ConfigPath
	if configPath == "" {
		if fromEnv, err := utils.GetEnv("GOLD_PROVIDERS_CONFIG"); err == nil {
			configPath = fromEnv
		}
	}

	if configPath != "" {
		loaded, err := pricefeed.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if args.FallbackPrice > 0 {
		config.FallbackPrice = args.FallbackPrice
	}

	return config.BuildChain()
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	eventpubsub.Init()

	chain, err := buildChain(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initialPrice := args.InitialPrice
	if initialPrice == 0 {
		seed := chain.Resolve(ctx)
		initialPrice = seed.Price
		log.Infof("seeded initial price %.2f from provider %s", seed.Price, seed.Provider)
	}

	session := monitor.NewSessionContext()
	if _, err := session.InitStrategy(models.NewStrategyConfig(initialPrice, args.Spread, args.DepositA, args.DepositB)); err != nil {
		return err
	}

	// The log sink is the alert surface of the CLI.
	if err := eventpubsub.Subscribe(eventpubsub.AlertUpEvent, func(alert models.AlertUp) {
		log.WithFields(log.Fields{
			"alertId":     alert.ID,
			"price":       alert.Price,
			"breakevenUp": alert.BreakevenUp,
		}).Warn("upside breakeven broken: close the platform-B buy leg")
	}); err != nil {
		return err
	}

	if err := eventpubsub.Subscribe(eventpubsub.AlertDownEvent, func(alert models.AlertDown) {
		log.WithFields(log.Fields{
			"alertId":       alert.ID,
			"price":         alert.Price,
			"breakevenDown": alert.BreakevenDown,
		}).Warn("downside breakeven broken: close the platform-A sell leg")
	}); err != nil {
		return err
	}

	if err := eventpubsub.Subscribe(eventpubsub.NewSnapshotEvent, func(snapshot models.ProfitSnapshot) {
		log.WithFields(log.Fields{
			"price":      snapshot.CurrentPrice,
			"change":     snapshot.PriceChange,
			"profitUp":   snapshot.ProfitUp,
			"profitDown": snapshot.ProfitDown,
		}).Info("tick")
	}); err != nil {
		return err
	}

	wg := sync.WaitGroup{}
	worker, err := monitor.NewMonitorWorkerClient(&wg, session, chain, time.Duration(args.IntervalSeconds)*time.Second)
	if err != nil {
		return err
	}

	if err := worker.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	worker.Stop()
	wg.Wait()
	eventpubsub.WaitAsync()

	if snapshots := session.History().Snapshot(); len(snapshots) > 0 {
		fmt.Println(report.HistoryTable(snapshots))

		if summary, err := report.Summarize(snapshots); err == nil {
			log.WithFields(log.Fields{
				"samples":       summary.Samples,
				"minPrice":      summary.MinPrice,
				"maxPrice":      summary.MaxPrice,
				"meanPrice":     summary.MeanPrice,
				"maxProfitUp":   summary.MaxProfitUp,
				"maxProfitDown": summary.MaxProfitDown,
			}).Info("session summary")
		}
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().Float64("initial-price", 0, "Opening price of the spread; 0 seeds it from the live feed")
	runCmd.PersistentFlags().Float64("spread", 3.0, "Total platform spread")
	runCmd.PersistentFlags().Float64("deposit-a", 35.0, "Platform A deposit charged on close")
	runCmd.PersistentFlags().Float64("deposit-b", 60.0, "Platform B deposit charged on close")
	runCmd.PersistentFlags().Int("interval", 60, "Monitor interval in seconds (30-300, steps of 30)")
	runCmd.PersistentFlags().String("providers-config", "", "Path to the providers YAML; defaults to $GOLD_PROVIDERS_CONFIG or the built-in chain")
	runCmd.PersistentFlags().Float64("fallback-price", 0, "Override the degraded fallback price")
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")

	if err := runCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
