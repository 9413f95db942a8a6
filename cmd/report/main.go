// Command report seeds a demonstration exchange, records sample trades, and
// prints the derived pricing analytics as a text report.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"gbce/internal/config"
	"gbce/internal/logger"
	"gbce/internal/models"
	"gbce/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Report error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	exchange := services.NewExchangeService(appConfig.ExchangeName)
	exchange.LoadInstruments()

	if err := recordSampleTrades(exchange); err != nil {
		return fmt.Errorf("failed to record sample trades: %w", err)
	}

	printReport(exchange)
	return nil
}

// recordSampleTrades records one trade per instrument so pricing information
// is available, a burst of ALE trades with round numbers for easy manual
// verification, and one ALE trade outside the 15-minute window to exercise
// the VWAP bound.
func recordSampleTrades(exchange services.ExchangeServicer) error {
	now := time.Now()

	samples := []struct {
		symbol    string
		side      models.Side
		price     float64
		quantity  int64
		timestamp time.Time
	}{
		{"ALE", models.SideBuy, 10, 100, now},
		{"TEA", models.SideBuy, 20, 1000, now},
		{"POP", models.SideBuy, 200, 10000, now},
		{"GIN", models.SideBuy, 200000, 1000000, now},
		{"JOE", models.SideBuy, 2000000, 10000000, now},

		{"ALE", models.SideBuy, 10, 1000, now},
		{"ALE", models.SideSell, 11, 1000, now},
		{"ALE", models.SideBuy, 11, 100, now},

		{"ALE", models.SideBuy, 12, 10000, now.Add(-16 * time.Minute)},
	}

	for _, s := range samples {
		if _, err := exchange.RecordTrade(s.symbol, s.side, s.price, s.quantity, s.timestamp); err != nil {
			return err
		}
	}
	return nil
}

func printReport(exchange services.ExchangeServicer) {
	fmt.Printf("Exchange: %s\n", exchange.Name())
	fmt.Printf("All-share index: %.4f\n\n", exchange.AllShareIndex())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tCATEGORY\tVWAP(15m)\tVWAP(30m)\tYIELD@10\tP/E@10")

	instruments := exchange.ListedInstruments()
	sort.Slice(instruments, func(i, j int) bool { return instruments[i].Symbol < instruments[j].Symbol })

	for _, instrument := range instruments {
		vwap15, err := exchange.VolumeWeightedPrice(instrument.Symbol, 15)
		if err != nil {
			vwap15 = 0
		}
		vwap30, err := exchange.VolumeWeightedPrice(instrument.Symbol, 30)
		if err != nil {
			vwap30 = 0
		}

		yield, err := instrument.DividendYield(10)
		yieldCell := fmt.Sprintf("%.4f", yield)
		if err != nil {
			yieldCell = "n/a"
		}

		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%s\t%.4f\n",
			instrument.Symbol, instrument.Category, vwap15, vwap30,
			yieldCell, instrument.PERatio(10))
	}

	w.Flush()
}
