// Package output renders command results for people and for machines.
//
// Every command writes through a Printer. With --json the Printer emits one
// JSON document per call; otherwise it prints aligned text, styled with
// lipgloss when the writer is a terminal:
//
//	p := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	p.Section("Blocks")
//	p.Table([]string{"FORM", "TYPE"}, rows)
//
// # Exit codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, unknown backend, unreadable input path
//	output.ExitSystemError // 2: I/O failure while rewriting documents
//	output.ExitPartial     // 3: --strict and at least one block was left unconverted
//
// Commands return *ExitError values; main maps them with GetExitCode.
package output
