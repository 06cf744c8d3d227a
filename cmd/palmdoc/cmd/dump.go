/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/dump"
)

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <file.pdb>",
		Short: "Print the header, directory and records of a Palm database",
		Long: `Print the header, record directory and record contents of any Palm
database file as a hex dump. The file does not need to be a Doc e-book.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: runDump,
	}

	flags := dumpCmd.Flags()
	flags.Bool("header-only", false, "Print only the header and directory")
	flags.Bool("data-only", false, "Print only the record data")
	flags.StringP("format", "f", dump.FormatText, "Output format (text, json)")
	flags.String("checksum", "", "Print a checksum of every record (xxh3, fnv1a, blake2b)")
	dumpCmd.MarkFlagsMutuallyExclusive("header-only", "data-only")

	return dumpCmd
}

func runDump(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	opts := dump.Options{}
	opts.HeaderOnly, _ = flags.GetBool("header-only")
	opts.DataOnly, _ = flags.GetBool("data-only")
	opts.Format, _ = flags.GetString("format")
	opts.Checksum, _ = flags.GetString("checksum")

	f, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	container.GetLogger().Debug("Dumping database", "path", args[0], "format", opts.Format)
	return dump.Dump(cmd.OutOrStdout(), f, opts)
}
