package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foltl/foltl/internal/encoder"
	"github.com/foltl/foltl/internal/engineconfig"
	"github.com/foltl/foltl/internal/module"
	"github.com/foltl/foltl/internal/obslog"
	"github.com/foltl/foltl/internal/smtbridge"
	"github.com/foltl/foltl/internal/term"
)

var (
	checkAtoms   []string
	checkOp      string
	checkOperand string
	checkLeft    string
	checkRight   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "encode a formula and ask the configured SMT backend whether it is satisfiable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return fmt.Errorf("check requires --config pointing at a folp.yaml backend configuration")
		}
		cfg, err := engineconfig.Load(configPath)
		if err != nil {
			return err
		}

		formula, err := buildFormula(checkAtoms, checkOp, checkOperand, checkLeft, checkRight)
		if err != nil {
			return err
		}
		auto, err := encoder.EncodeTagged(formula, cfg.Encoding.AnchorPrefix)
		if err != nil {
			return fmt.Errorf("encoding: %w", err)
		}

		if cfg.Logging.Verbose {
			verboseLogger, err := obslog.New(true)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = verboseLogger
			module.SetLogger(logger)
		}
		bridge, err := smtbridge.Dial(cfg.Backend.Target, logger)
		if err != nil {
			return fmt.Errorf("dialing backend %s: %w", cfg.Backend.Target, err)
		}
		defer bridge.Close()

		ctx := context.Background()
		if cfg.Backend.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Backend.Timeout)
			defer cancel()
		} else {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, dialTimeout)
			defer cancel()
		}

		if err := bridge.AssertBatch(ctx, []term.Term{auto.Init, auto.Transition, auto.Final}); err != nil {
			return fmt.Errorf("asserting encoded automaton: %w", err)
		}
		result, err := bridge.CheckSat(ctx)
		if err != nil {
			return fmt.Errorf("checking satisfiability: %w", err)
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkAtoms, "atom", nil, "proposition name to declare (repeatable)")
	checkCmd.Flags().StringVar(&checkOp, "op", "", "top-level operator (eventually, always, until, since, ...)")
	checkCmd.Flags().StringVar(&checkOperand, "operand", "", "operand atom name, for unary operators")
	checkCmd.Flags().StringVar(&checkLeft, "left", "", "left atom name, for binary operators")
	checkCmd.Flags().StringVar(&checkRight, "right", "", "right atom name, for binary operators")
	_ = checkCmd.MarkFlagRequired("op")
}
