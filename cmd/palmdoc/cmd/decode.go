/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/charmap"
	"github.com/ssargent/palmdoc/pkg/convert"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [file.pdb] [file.txt]",
		Short: "Convert a Doc e-book into a UTF-8 text file",
		Long: `Convert a PalmOS Doc e-book into a UTF-8 text file.

Without arguments, or with "-" in their place, the e-book is read from
standard input and the text is written to standard output.

Examples:
  palmdoc decode moby.pdb moby.txt
  palmdoc decode --fallback U+FFFD moby.pdb | less`,
		Args: usageArgs(cobra.MaximumNArgs(2)),
		RunE: runDecode,
	}

	decodeCmd.Flags().Bool("no-check", false, "Skip the TEXt/REAd type and creator check")
	decodeCmd.Flags().String("fallback", "", "Code point written for PalmOS characters with no Unicode mapping (e.g. U+FFFD, 0x3F, ?)")

	return decodeCmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg := container.GetConfig()

	src, dest := stdio, stdio
	if len(args) > 0 {
		src = args[0]
	}
	if len(args) > 1 {
		dest = args[1]
	}

	fallback, _ := cfg.FallbackRune()
	if cmd.Flags().Changed("fallback") {
		value, _ := cmd.Flags().GetString("fallback")
		fallback = 0
		if value != "" {
			r, err := charmap.ParseCodepoint(value)
			if err != nil {
				return usageError{fmt.Errorf("--fallback: %w", err)}
			}
			fallback = r
		}
	}
	noCheck, _ := cmd.Flags().GetBool("no-check")

	opts := convert.DecodeOptions{
		SkipSignatureCheck: noCheck || !cfg.Decode.CheckSignature,
		Fallback:           fallback,
		Warn:               warnFunc(cfg),
		Listener:           progress(cmd, cfg),
		Source:             displayName(src, "<stdin>"),
		Dest:               displayName(dest, "<stdout>"),
	}

	in, closeIn, err := openSeekable(src, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	start := time.Now()
	if dest == stdio {
		stats, err := convert.Decode(cmd.Context(), cmd.OutOrStdout(), in, opts)
		return finish(cmd, cfg, convert.Decoding, start, stats, err)
	}

	out, err := createOutput(dest)
	if err != nil {
		return err
	}

	stats, err := convert.Decode(cmd.Context(), out, in, opts)
	if err != nil {
		out.discard()
	} else {
		err = out.commit()
	}

	return finish(cmd, cfg, convert.Decoding, start, stats, err)
}
