package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/matthewtax/ngtax/internal/audit"
	"github.com/matthewtax/ngtax/internal/calculation"
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/internal/handler"
	"github.com/matthewtax/ngtax/internal/output"
	"github.com/matthewtax/ngtax/internal/parse"
	"github.com/matthewtax/ngtax/internal/service"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ngtax",
	Short: "Nigerian tax calculation engine",
	Long:  "Calculator for Nigerian PAYE, CIT and CGT liabilities with payment scheduling (2026 rules)",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ngtax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func loadRules(path string) (*config.TaxRules, error) {
	if path == "" {
		return config.Default2026(), nil
	}
	return config.LoadRules(path)
}

func calculateCmd() *cobra.Command {
	var (
		rulesFile        string
		taxType          string
		monthlySalary    float64
		revenue          float64
		expenses         float64
		proceeds         float64
		costBasis        float64
		transactionCosts float64
		installments     int
		installmentPlan  bool
		dueDate          string
		format           string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a tax liability and payment schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			engine, err := calculation.NewEngine(rules)
			if err != nil {
				return err
			}

			req, err := buildRequest(taxType, monthlySalary, revenue, expenses, proceeds, costBasis, transactionCosts)
			if err != nil {
				return err
			}

			result, err := engine.Calculate(req)
			if err != nil {
				return err
			}

			opts := calculation.ScheduleOptions{
				InstallmentCount: installments,
				InstallmentPlan:  installmentPlan,
			}
			if dueDate != "" {
				due, err := time.Parse("2006-01-02", dueDate)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", dueDate, err)
				}
				opts.DueDate = &due
			}

			scheduler := calculation.NewScheduleGenerator(rules.Schedule)
			schedule, err := scheduler.Generate(result, opts)
			if err != nil {
				return err
			}

			if format == "json" {
				payload := struct {
					service.CalculateTaxResponse
					Schedule domain.ScheduleRecord `json:"schedule"`
				}{
					CalculateTaxResponse: service.ToResponse(result),
					Schedule:             audit.NewRecord(result, schedule),
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			fmt.Println(output.FormatTaxResult(result))
			fmt.Println(output.FormatPaymentSchedule(schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file (defaults to the built-in 2026 schedule)")
	cmd.Flags().StringVar(&taxType, "type", "", "tax type: PAYE, CIT or CGT")
	cmd.Flags().Float64Var(&monthlySalary, "monthly-salary", 0, "monthly salary (PAYE)")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "business revenue (CIT)")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "business expenses (CIT)")
	cmd.Flags().Float64Var(&proceeds, "proceeds", 0, "disposal proceeds (CGT)")
	cmd.Flags().Float64Var(&costBasis, "cost-basis", 0, "acquisition cost (CGT)")
	cmd.Flags().Float64Var(&transactionCosts, "transaction-costs", 0, "broker fees and transfer costs (CGT)")
	cmd.Flags().IntVar(&installments, "installments", 0, "override the installment count")
	cmd.Flags().BoolVar(&installmentPlan, "installment-plan", false, "request a PAYE installment plan")
	cmd.Flags().StringVar(&dueDate, "due", "", "override the due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "format", "console", "output format: console or json")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func buildRequest(taxType string, monthlySalary, revenue, expenses, proceeds, costBasis, transactionCosts float64) (domain.CalculationRequest, error) {
	category, err := domain.ParseTaxCategory(taxType)
	if err != nil {
		return domain.CalculationRequest{}, err
	}

	switch category {
	case domain.CategoryPAYE:
		return domain.CalculationRequest{
			Category: category,
			Paye:     &domain.PayeInput{MonthlySalary: decimal.NewFromFloat(monthlySalary)},
		}, nil
	case domain.CategoryCIT:
		return domain.CalculationRequest{
			Category: category,
			Business: &domain.BusinessInput{
				Revenue:  decimal.NewFromFloat(revenue),
				Expenses: decimal.NewFromFloat(expenses),
			},
		}, nil
	default:
		return domain.CalculationRequest{
			Category: category,
			Cgt: &domain.CgtInput{
				Proceeds:         decimal.NewFromFloat(proceeds),
				CostBasis:        decimal.NewFromFloat(costBasis),
				TransactionCosts: decimal.NewFromFloat(transactionCosts),
			},
		}, nil
	}
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect a tax calculation in free text",
		Long:  "Scans agent output for a calculation; reads stdin when no argument is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = string(data)
			}

			detection := parse.DetectCalculation(text)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(detection)
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		rulesFile string
		port      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tax calculation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

			if err := godotenv.Load(); err == nil {
				logger.Debug().Msg("loaded .env")
			}
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			engine, err := calculation.NewEngine(rules)
			if err != nil {
				// Broken bracket tables must never serve calculations.
				logger.Fatal().Err(err).Msg("rules validation failed")
			}

			svc := service.NewTaxService(engine, calculation.NewScheduleGenerator(rules.Schedule), audit.NewStore())

			gin.SetMode(gin.ReleaseMode)
			router := gin.New()
			router.Use(gin.Recovery())
			router.Use(handler.RequestLogger(logger))
			router.Use(cors.Default())
			handler.NewTaxHandler(svc).RegisterRoutes(router)

			logger.Info().Str("port", port).Int("rules_year", rules.Year).Msg("listening")
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file (defaults to the built-in 2026 schedule)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to $PORT, then 8080)")

	return cmd
}

func main() {
	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
