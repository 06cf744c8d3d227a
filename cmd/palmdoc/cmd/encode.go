/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/convert"
)

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode <name> <file.txt> <file.pdb>",
		Short: "Convert a UTF-8 text file into a Doc e-book",
		Long: `Convert a UTF-8 text file into a PalmOS Doc e-book.

The name is the title shown in the reader's document list; it is cut to
31 bytes. Use "-" as the text file to read from standard input.

Examples:
  palmdoc encode "Moby Dick" moby.txt moby.pdb
  cat notes.txt | palmdoc encode --no-compress Notes - notes.pdb`,
		Args: usageArgs(cobra.ExactArgs(3)),
		RunE: runEncode,
	}

	encodeCmd.Flags().Bool("no-strip", false, "Keep control characters instead of removing them")
	encodeCmd.Flags().Bool("no-compress", false, "Store the text uncompressed")
	encodeCmd.Flags().Bool("no-timestamps", false, "Leave the creation and modification dates unset")

	return encodeCmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := container.GetConfig()
	name, src, dest := args[0], args[1], args[2]

	noStrip, _ := cmd.Flags().GetBool("no-strip")
	noCompress, _ := cmd.Flags().GetBool("no-compress")
	noTimestamps, _ := cmd.Flags().GetBool("no-timestamps")

	opts := convert.EncodeOptions{
		Name:        name,
		Compress:    cfg.Encode.Compress && !noCompress,
		StripBinary: cfg.Encode.StripBinary && !noStrip,
		Timestamps:  cfg.Encode.Timestamps && !noTimestamps,
		Warn:        warnFunc(cfg),
		Listener:    progress(cmd, cfg),
		Source:      displayName(src, "<stdin>"),
		Dest:        dest,
	}

	var in io.Reader = cmd.InOrStdin()
	if src != stdio {
		f, err := openInput(src)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out, err := createOutput(dest)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := convert.Encode(cmd.Context(), out, in, opts)
	if err != nil {
		out.discard()
	} else {
		err = out.commit()
	}

	return finish(cmd, cfg, convert.Encoding, start, stats, err)
}
