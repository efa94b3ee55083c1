package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/finance"
)

var (
	financeDescription string
	filterDate         string
	filterCategory     string
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Manage income and expense entries",
}

var financeAddCmd = &cobra.Command{
	Use:   "add [amount] [category] [date]",
	Short: "Add an entry; positive amounts are income, negative ones expenses",
	Long: `Add records an entry dated DD-MM-YYYY. Separate a negative amount from the
flags with --, for example: aide finance add -- -40.50 food 03-02-2024`,
	Args: cobra.ExactArgs(3),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		amount, err := finance.ParseAmount(args[0])
		if err != nil {
			return err
		}
		rec, err := ws.Finance.Add(cmd.Context(), amount, args[1], args[2], financeDescription)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Entry #%d added.\n", rec.ID)
		return nil
	}),
}

var financeEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change fields of an entry",
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u := finance.Update{
			Category:    changed(cmd, "category"),
			Date:        changed(cmd, "date"),
			Description: changed(cmd, "description"),
		}
		if s := changed(cmd, "amount"); s != nil {
			amount, err := finance.ParseAmount(*s)
			if err != nil {
				return err
			}
			u.Amount = &amount
		}
		rec, err := ws.Finance.Update(cmd.Context(), id, u)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Entry #%d updated.\n", rec.ID)
		return nil
	}),
}

var financeFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List entries of one date or one category",
	Args:  cobra.NoArgs,
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		var (
			found []*finance.Record
			err   error
		)
		switch {
		case filterDate != "" && filterCategory != "":
			return core.Invalid("filter", "--date and --category", errors.New("use only one"))
		case filterDate != "":
			found, err = ws.Finance.FilterByDate(cmd.Context(), filterDate)
		case filterCategory != "":
			found, err = ws.Finance.FilterByCategory(cmd.Context(), filterCategory)
		default:
			return core.Invalid("filter", "", errors.New("--date or --category is required"))
		}
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), found, renderRecord)
	}),
}

var financeReportCmd = &cobra.Command{
	Use:   "report [start] [end]",
	Short: "Sum income and expenses between two dates, inclusive",
	Args:  cobra.ExactArgs(2),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		rep, err := ws.Finance.Report(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(w, reportView{
				Start:    args[0],
				End:      args[1],
				Records:  rep.Records,
				Income:   rep.Income,
				Expenses: rep.Expenses,
				Balance:  rep.Balance,
			})
		}

		headerColor.Fprintf(w, "Report %s .. %s\n", args[0], args[1])
		for _, rec := range rep.Records {
			renderRecord(w, rec)
		}
		fmt.Fprintf(w, "Income:   %s\n", incomeColor.Sprint(rep.Income.StringFixed(2)))
		fmt.Fprintf(w, "Expenses: %s\n", expenseColor.Sprint(rep.Expenses.StringFixed(2)))
		fmt.Fprintf(w, "Balance:  %s\n", amountColor(rep.Balance).Sprint(rep.Balance.StringFixed(2)))
		return nil
	}),
}

type reportView struct {
	Start    string            `json:"start"`
	End      string            `json:"end"`
	Records  []*finance.Record `json:"records"`
	Income   decimal.Decimal   `json:"income"`
	Expenses decimal.Decimal   `json:"expenses"`
	Balance  decimal.Decimal   `json:"balance"`
}

func amountColor(d decimal.Decimal) *color.Color {
	if d.IsNegative() {
		return expenseColor
	}
	return incomeColor
}

func renderRecord(w io.Writer, r *finance.Record) {
	fmt.Fprintf(w, "#%d %s %s %s", r.ID, r.Date, amountColor(r.Amount).Sprint(r.Amount.StringFixed(2)), r.Category)
	if r.Description != "" {
		fmt.Fprintf(w, "  %s", r.Description)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(financeCmd)
	financeCmd.AddCommand(financeAddCmd, financeEditCmd, financeFilterCmd, financeReportCmd)
	financeCmd.AddCommand(collectionCommands(func(ws *platform.Workspace) collection[*finance.Record] {
		return ws.Finance
	}, renderRecord)...)

	financeAddCmd.Flags().StringVarP(&financeDescription, "description", "d", "", "Entry description")

	financeEditCmd.Flags().String("amount", "", "New amount (use --amount=-10 for expenses)")
	financeEditCmd.Flags().String("category", "", "New category")
	financeEditCmd.Flags().String("date", "", "New date (DD-MM-YYYY)")
	financeEditCmd.Flags().StringP("description", "d", "", "New description")

	financeFilterCmd.Flags().StringVar(&filterDate, "date", "", "Exact date (DD-MM-YYYY)")
	financeFilterCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Category, case-insensitive")
}
