package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/clearcompass/ccplan/internal/config"
	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/clearcompass/ccplan/internal/output"
	"github.com/clearcompass/ccplan/internal/planner"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// simpleCLILogger implements planner.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ccplan",
	Short: "ClearCompass medical payment planner CLI",
	Long:  "Computes affordability profiles for medical procedures and ranks financing and aid options",
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a payment and aid plan for one patient request",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogs, err := loadCatalogs(cmd)
		if err != nil {
			return err
		}

		hospital, _ := cmd.Flags().GetString("hospital")
		insurance, _ := cmd.Flags().GetString("insurance")
		cost, _ := cmd.Flags().GetFloat64("cost")
		income, _ := cmd.Flags().GetFloat64("income")
		familySize, _ := cmd.Flags().GetInt("family-size")
		expenses, _ := cmd.Flags().GetFloat64("expenses")

		if cost < 0 || income < 0 || expenses < 0 {
			return fmt.Errorf("cost, income, and expenses must be non-negative")
		}
		if familySize < 1 {
			return fmt.Errorf("family size must be at least 1")
		}

		engine := planner.NewEngine(*catalogs)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		plan := engine.CreateComprehensivePlan(domain.PlanRequest{
			Hospital:        hospital,
			ProcedureCost:   decimal.NewFromFloat(cost),
			InsuranceType:   insurance,
			AnnualIncome:    decimal.NewFromFloat(income),
			FamilySize:      familySize,
			MonthlyExpenses: decimal.NewFromFloat(expenses),
		})

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "markdown":
			summary, paymentPlans, aidPrograms := output.FormatComprehensivePlan(plan)
			fmt.Println(summary)
			fmt.Println(paymentPlans)
			fmt.Println(aidPrograms)
		case "json":
			data, err := output.FormatJSON(plan)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Print the effective catalogs as YAML",
	Long:  "Prints the poverty guideline, aid program, and hospital terms tables in effect, as a starting point for an override file",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogs, err := loadCatalogs(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(catalogs)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ccplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadCatalogs returns the built-in catalogs unless a --catalogs file is given.
func loadCatalogs(cmd *cobra.Command) (*domain.Catalogs, error) {
	catalogFile, _ := cmd.Flags().GetString("catalogs")
	if catalogFile == "" {
		catalogs := domain.DefaultCatalogs()
		return &catalogs, nil
	}
	return config.NewCatalogParser().LoadFromFile(catalogFile)
}

func init() {
	planCmd.Flags().String("hospital", "", "hospital name (unknown names use the default hospital's terms)")
	planCmd.Flags().Float64("cost", 0, "estimated procedure cost in dollars")
	planCmd.Flags().String("insurance", "", "insurance type (display context only)")
	planCmd.Flags().Float64("income", 0, "annual household income in dollars")
	planCmd.Flags().Int("family-size", 1, "family size including the patient")
	planCmd.Flags().Float64("expenses", 0, "monthly essential expenses in dollars")
	planCmd.Flags().String("format", "markdown", "output format (markdown, json)")
	planCmd.Flags().Bool("debug", false, "enable debug logging")
	planCmd.Flags().String("catalogs", "", "path to a YAML catalog override file")
	catalogsCmd.Flags().String("catalogs", "", "path to a YAML catalog override file")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(catalogsCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
