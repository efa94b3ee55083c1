package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide/pkg/calc"
	"github.com/aretw0/aide/pkg/core"
)

var showHistory bool

var calcCmd = &cobra.Command{
	Use:   "calc [a] [op] [b] [op c]...",
	Short: "Evaluate arithmetic on decimals, left to right",
	Long: `calc applies the operators left to right without precedence:

  aide calc 2 + 3 x 4     # 20

Operators: + - x / (also * : ÷). Quote * to keep the shell from expanding it.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 || len(args)%2 == 0 {
			return core.Invalid("expression", fmt.Sprint(args), fmt.Errorf("want operand (operator operand)+"))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var c calc.Calculator
		result, err := c.Eval(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		for i := 3; i+1 < len(args); i += 2 {
			if result, err = c.Eval(result.String(), args[i], args[i+1]); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		if showHistory {
			for _, line := range c.History() {
				fmt.Fprintln(w, line)
			}
			return nil
		}
		fmt.Fprintln(w, result.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().BoolVar(&showHistory, "history", false, "Print every step instead of the result")
}
