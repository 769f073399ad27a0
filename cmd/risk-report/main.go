package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/minhhoang04/crypto-risk-engine/internal/logger"
	"github.com/minhhoang04/crypto-risk-engine/internal/regime"
	"github.com/minhhoang04/crypto-risk-engine/internal/risk"
	"github.com/minhhoang04/crypto-risk-engine/pkg/config"
	"github.com/minhhoang04/crypto-risk-engine/pkg/reporting"
	"github.com/minhhoang04/crypto-risk-engine/pkg/types"
)

func main() {
	var (
		tradesFile    = flag.String("trades", "", "Path to CSV file with trade history")
		positionsFile = flag.String("positions", "", "Path to JSON file with open position snapshots")
		pricesFile    = flag.String("prices", "", "Path to CSV file with OHLCV data for regime assessment")
		trendStrength = flag.Float64("trend", 0, "Trend strength reading (ADX-style) from the indicator layer, 0 = unavailable")
		balance       = flag.Float64("balance", 0, "Current account balance")
		configFile    = flag.String("config", "", "Path to risk configuration file (JSON or YAML)")
		envFile       = flag.String("env", ".env", "Path to environment file")
		xlsxFile      = flag.String("xlsx", "", "Optional path for Excel export of the report")
		applyAdjust   = flag.Bool("apply-adjustment", false, "Commit the regime-based parameter adjustment before reporting")
		logName       = flag.String("log", "", "Optional engine name for file logging under logs/")
	)
	flag.Parse()

	if *balance <= 0 {
		log.Fatal("Account balance is required. Use -balance flag.")
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Printf("Warning: could not load environment file %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load risk configuration: %v", err)
	}

	engine, err := risk.NewEngineWithParameters(cfg.Parameters())
	if err != nil {
		log.Fatalf("Invalid risk parameters: %v", err)
	}

	if *logName != "" {
		fileLogger, err := logger.NewLogger(*logName)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer fileLogger.Close()
		engine.SetLogger(fileLogger)
	}

	fmt.Printf("🛡️ Crypto Risk Engine - Risk Report Tool\n\n")

	var trades []risk.TradeRecord
	if *tradesFile != "" {
		trades, err = loadTradesCSV(*tradesFile)
		if err != nil {
			log.Fatalf("Failed to load trades: %v", err)
		}
		fmt.Printf("📖 Loaded %d trades from %s\n", len(trades), *tradesFile)
	}

	var positions []risk.OpenPosition
	if *positionsFile != "" {
		positions, err = loadPositionsJSON(*positionsFile)
		if err != nil {
			log.Fatalf("Failed to load positions: %v", err)
		}
		fmt.Printf("📖 Loaded %d open positions from %s\n", len(positions), *positionsFile)
	}
	fmt.Println()

	console := reporting.NewConsoleReporter()
	console.PrintParameters(engine.Parameters())

	var assessment regime.Assessment
	if *pricesFile != "" {
		data, err := loadCSVData(*pricesFile)
		if err != nil {
			log.Fatalf("Failed to load price data: %v", err)
		}

		classifier := regime.NewClassifier(regime.DefaultLookback)
		assessment, err = classifier.Assess(data, *trendStrength)
		if err != nil {
			log.Fatalf("Failed to assess market conditions: %v", err)
		}
		console.PrintAssessment(assessment)

		update, err := engine.AdjustForMarket(assessment)
		if err != nil {
			log.Fatalf("Failed to derive parameter adjustment: %v", err)
		}

		if *applyAdjust {
			if _, err := engine.UpdateParameters(update); err != nil {
				log.Fatalf("Failed to apply parameter adjustment: %v", err)
			}
			fmt.Println("🔧 Regime-based parameter adjustment applied:")
			console.PrintParameters(engine.Parameters())
		} else {
			fmt.Printf("💡 Advisory adjustment (not applied): size=%.2f%% risk=%.2f%% trail=%.2f%%\n\n",
				*update.MaxPositionSizePct, *update.MaxRiskPerTradePct, *update.TrailingStopPct)
		}
	} else {
		// No price data: report against neutral conditions
		assessment = regime.Assessment{
			Regime:     regime.RegimeNormal,
			RiskFactor: regime.NormalRiskFactor,
		}
	}

	report := engine.GenerateRiskReport(trades, *balance, positions)
	console.PrintRiskReport(report)

	recommendations := engine.Recommendations(report, assessment)
	console.PrintRecommendations(recommendations)

	if *xlsxFile != "" {
		excel := reporting.NewExcelReporter()
		if err := excel.WriteRiskReportXLSX(report, trades, positions, *xlsxFile); err != nil {
			log.Fatalf("Failed to write Excel report: %v", err)
		}
		fmt.Printf("💾 Excel report saved to %s\n", *xlsxFile)
	}
}

// loadTradesCSV loads trade history from a CSV file with columns
// symbol,action,price,size,profit_loss (header row required)
func loadTradesCSV(filename string) ([]risk.TradeRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file must have at least 2 rows (header + data)")
	}

	var trades []risk.TradeRecord

	// Skip header row
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 5 {
			continue // Skip invalid rows
		}

		price, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		size, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		profitLoss, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			continue
		}

		trades = append(trades, risk.TradeRecord{
			Symbol:     record[0],
			Action:     risk.TradeAction(strings.ToUpper(record[1])),
			Price:      price,
			Size:       size,
			ProfitLoss: profitLoss,
		})
	}

	return trades, nil
}

// loadPositionsJSON loads open position snapshots from a JSON array
func loadPositionsJSON(filename string) ([]risk.OpenPosition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var positions []risk.OpenPosition
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

// loadCSVData loads OHLCV data from a CSV file
func loadCSVData(filename string) ([]types.OHLCV, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file must have at least 2 rows (header + data)")
	}

	var data []types.OHLCV

	// Skip header row
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 6 {
			continue // Skip invalid rows
		}

		// Parse timestamp - handle both Unix milliseconds and datetime format
		var timestamp time.Time
		if ts, parseErr := strconv.ParseInt(record[0], 10, 64); parseErr == nil {
			timestamp = time.Unix(ts/1000, 0)
		} else {
			var err error
			timestamp, err = time.Parse("2006-01-02 15:04:05", record[0])
			if err != nil {
				timestamp, err = time.Parse("2006-01-02 15:04", record[0])
				if err != nil {
					continue // Skip invalid timestamps
				}
			}
		}

		open, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		high, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		low, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		closePrice, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			continue
		}
		volume, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			continue
		}

		data = append(data, types.OHLCV{
			Timestamp: timestamp,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Volume:    volume,
		})
	}

	return data, nil
}
