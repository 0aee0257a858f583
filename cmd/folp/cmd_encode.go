package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foltl/foltl/internal/encoder"
)

var (
	encodeAtoms   []string
	encodeOp      string
	encodeOperand string
	encodeLeft    string
	encodeRight   string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "encode a formula built from --atom/--op flags into SNF",
	RunE: func(cmd *cobra.Command, args []string) error {
		formula, err := buildFormula(encodeAtoms, encodeOp, encodeOperand, encodeLeft, encodeRight)
		if err != nil {
			return err
		}
		auto, err := encoder.Encode(formula)
		if err != nil {
			return fmt.Errorf("encoding: %w", err)
		}
		fmt.Printf("anchor:     %s\n", auto.Anchor)
		fmt.Printf("init:       %s\n", auto.Init)
		fmt.Printf("transition: %s\n", auto.Transition)
		fmt.Printf("final:      %s\n", auto.Final)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringSliceVar(&encodeAtoms, "atom", nil, "proposition name to declare (repeatable)")
	encodeCmd.Flags().StringVar(&encodeOp, "op", "", "top-level operator (eventually, always, until, since, ...)")
	encodeCmd.Flags().StringVar(&encodeOperand, "operand", "", "operand atom name, for unary operators")
	encodeCmd.Flags().StringVar(&encodeLeft, "left", "", "left atom name, for binary operators")
	encodeCmd.Flags().StringVar(&encodeRight, "right", "", "right atom name, for binary operators")
	_ = encodeCmd.MarkFlagRequired("op")
}
