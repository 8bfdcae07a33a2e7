package main

import (
	"context"

	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/spf13/cobra"
)

var (
	inputFile string
	hexPrefix bool
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [ADDRESS...]",
	Short: "Print the EIP-55 checksummed form of addresses (input casing is ignored)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCommand(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		entries, err := a.entries(args, inputFile)
		if err != nil {
			return err
		}
		return a.checksum(commandContext(cmd, "checksum"), entries)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [ADDRESS...]",
	Short: "Check that addresses carry a valid EIP-55 checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCommand(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		entries, err := a.entries(args, inputFile)
		if err != nil {
			return err
		}
		return a.validate(commandContext(cmd, "validate"), entries)
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Encode or decode hexadecimal text",
}

var hexEncodeCmd = &cobra.Command{
	Use:   "encode TEXT",
	Short: "Hex-encode the bytes of TEXT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCommand(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		a.hexEncode(args[0], hexPrefix)
		return nil
	},
}

var hexDecodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Decode HEX (optional 0x prefix) and print the bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCommand(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.hexDecode(commandContext(cmd, "hex-decode"), args[0])
	},
}

func init() {
	for _, cmd := range []*cobra.Command{checksumCmd, validateCmd} {
		cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON file with an array of addresses (- for stdin)")
	}
	hexEncodeCmd.Flags().BoolVar(&hexPrefix, "prefix", false, "prepend 0x to the output")
	hexCmd.AddCommand(hexEncodeCmd, hexDecodeCmd)
}

// commandContext 为本次执行生成 run ID 并记录操作名
func commandContext(cmd *cobra.Command, operation string) context.Context {
	ctx := apperrors.NewContextWithRunID(cmd.Context(), "")
	return apperrors.NewContextWithOperation(ctx, operation)
}
