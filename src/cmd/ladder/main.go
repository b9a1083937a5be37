package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
	"github.com/dongqixiaoquan-sketch/gold/src/report"
	"github.com/dongqixiaoquan-sketch/gold/src/strategy"
	"github.com/dongqixiaoquan-sketch/gold/src/utils"
)

type RunArgs struct {
	InitialPrice float64
	Spread       float64
	DepositA     float64
	DepositB     float64
	RangeLow     int
	RangeHigh    int
	Step         int
	OutDir       string
	GoEnv        string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/ladder/main.go --initial-price 602.8",
	Short: "Print the profit ladder for a locked gold spread",
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

		rangeLow, err := cmd.Flags().GetInt("range-low")
		if err != nil {
			log.Fatalf("error getting range-low: %v", err)
		}

		rangeHigh, err := cmd.Flags().GetInt("range-high")
		if err != nil {
			log.Fatalf("error getting range-high: %v", err)
		}

		step, err := cmd.Flags().GetInt("step")
		if err != nil {
			log.Fatalf("error getting step: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		if err := Run(RunArgs{
			InitialPrice: initialPrice,
			Spread:       spread,
			DepositA:     depositA,
			DepositB:     depositB,
			RangeLow:     rangeLow,
			RangeHigh:    rangeHigh,
			Step:         step,
			OutDir:       outDir,
			GoEnv:        goEnv,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	hedge, err := strategy.NewHedgeStrategy(models.NewStrategyConfig(args.InitialPrice, args.Spread, args.DepositA, args.DepositB))
	if err != nil {
		return err
	}

	thresholds := hedge.Thresholds()
	log.WithFields(log.Fields{
		"lockSellPrice": thresholds.LockSellPrice,
		"lockBuyPrice":  thresholds.LockBuyPrice,
		"breakevenUp":   thresholds.BreakevenUp,
		"breakevenDown": thresholds.BreakevenDown,
	}).Info("derived thresholds")

	snapshots := hedge.Ladder(args.RangeLow, args.RangeHigh, args.Step, time.Now())
	if len(snapshots) == 0 {
		return fmt.Errorf("ladder is empty: check range and step")
	}

	fmt.Println(report.LadderTable(snapshots))

	if args.OutDir != "" {
		csvPath, err := report.ExportToCsv(args.OutDir, "profit_ladder", snapshots)
		if err != nil {
			return err
		}
		fmt.Println("CSV file written to: ", csvPath)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().Float64("initial-price", 0, "Opening price of the spread")
	runCmd.PersistentFlags().Float64("spread", 3.0, "Total platform spread")
	runCmd.PersistentFlags().Float64("deposit-a", 35.0, "Platform A deposit charged on close")
	runCmd.PersistentFlags().Float64("deposit-b", 60.0, "Platform B deposit charged on close")
	runCmd.PersistentFlags().Int("range-low", -120, "Lowest price offset in the ladder")
	runCmd.PersistentFlags().Int("range-high", 120, "Highest price offset in the ladder")
	runCmd.PersistentFlags().Int("step", 20, "Price step between ladder rows")
	runCmd.PersistentFlags().String("outDir", "", "Export the ladder as CSV into this directory")
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")

	if err := runCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
