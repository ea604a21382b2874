package main

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"

	"dtree/config"
	"dtree/convert"
)

const sourceHelp = `SOURCE:
    document(s) to process, one of:
        a file: "[path_to_file]file.dom" - processed regardless of its extension
        a directory: "[path_to_directory]directory" - all documents under directory, recursively
        a document in archive: "[path_to_archive]archive.zip[path_in_archive]/file.dom"
        a part of archive: "[path_to_archive]archive.zip[path_in_archive]" - all documents under archive path

    When walking directories and archives only files with configured
    extensions are considered. Archives inside archives are not processed.

DESTINATION:
    directory for results, file names are derived from sources and
    configuration. Current working directory when absent.
`

// outputFlags are shared by commands producing documents.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "to",
			Usage: "output `FORMAT`, one of " + strings.Join(config.OutputFmtNames(), ", ") + " (overrides configuration)"},
		&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "do not recreate source directory structure under destination"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing output files"},
		&cli.BoolFlag{Name: "stdout", Usage: "write results to STDOUT instead of files, console log is limited to errors"},
		&cli.StringFlag{Name: "encoding",
			Usage: "force `CHARSET` for documents without byte order mark (IANA name, overrides configuration)"},
		&cli.StringFlag{Name: "force-zip-cp",
			Usage: "decode ALL non UTF-8 file names in archives with `CHARSET` (IANA name)"},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:         "edit",
		Usage:        "Applies editing operations to document(s)",
		ArgsUsage:    "SOURCE [DESTINATION]",
		OnUsageError: onUsageError,
		Action:       convert.Edit,
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{Name: "op", Aliases: []string{"o"},
				Usage: "apply `\"OP ARGS\"`, repeatable: replace OLD NEW | bold ROW | remove TAG | add WORD TAG"},
			&cli.StringFlag{Name: "script", Aliases: []string{"s"},
				Usage: "apply operations listed in `FILE` (YAML, same as document.operations in configuration)"},
		}, outputFlags()...),
		CustomHelpTemplate: fmt.Sprintf(`%s
%s
OPERATIONS:
    applied in order: configuration, script, command line. First failed
    operation stops processing of the document.
`, cli.CommandHelpTemplate, sourceHelp),
	}
}

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:         "normalize",
		Usage:        "Converts ordinary HTML document(s) into editable form",
		ArgsUsage:    "SOURCE [DESTINATION]",
		OnUsageError: onUsageError,
		Action:       convert.Normalize,
		Flags:        outputFlags(),
		CustomHelpTemplate: fmt.Sprintf(`%s
%s
Head, scripts, void and empty elements are dropped and whitespace is
collapsed. Result has one tag or text per line.
`, cli.CommandHelpTemplate, sourceHelp),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:         "dumpconfig",
		Usage:        "Writes default or active configuration (YAML)",
		ArgsUsage:    "[DESTINATION]",
		OnUsageError: onUsageError,
		Action:       dumpConfig,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "write configuration embedded into the program"},
		},
		CustomHelpTemplate: fmt.Sprintf(`%s
DESTINATION:
    file to write configuration to, STDOUT when absent

Active configuration combines defaults with values from the file given by
--config. Use --default to see the embedded one.
`, cli.CommandHelpTemplate),
	}
}
