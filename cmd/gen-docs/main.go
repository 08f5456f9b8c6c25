package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/timepicker/internal/cli"
)

// This small tool generates shell completions and a man page from the command tree.
// Completions come from cobra; the man page is plain roff so no extra tooling is needed.

const (
	appName        = "timepicker"
	appDescription = "A terminal time picker that normalizes typed times of day."
)

func main() {
	root := cli.NewRootCommand("docs")

	if err := writeCompletions(root); err != nil {
		panic(err)
	}
	if err := writeMan(root); err != nil {
		panic(err)
	}
}

func writeCompletions(root *cobra.Command) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	targets := []struct {
		name string
		gen  func(f *os.File) error
	}{
		{appName + ".bash", func(f *os.File) error { return root.GenBashCompletionV2(f, true) }},
		{"_" + appName, func(f *os.File) error { return root.GenZshCompletion(f) }},
		{appName + ".fish", func(f *os.File) error { return root.GenFishCompletion(f, true) }},
	}
	for _, t := range targets {
		f, err := os.Create(filepath.Join(base, t.name))
		if err != nil {
			return err
		}
		if err := t.gen(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func writeMan(root *cobra.Command) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"timepicker\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " - " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[options] [command]\n")
	b.WriteString(".SH DESCRIPTION\n" + escapeRoff(root.Long) + "\n")

	b.WriteString(".SH OPTIONS\n")
	writeFlags(&b, root.LocalFlags())

	b.WriteString(".SH COMMANDS\n")
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		b.WriteString(".TP\n\\fB" + escapeRoff(c.UseLine()) + "\\fR\n" + escapeRoff(c.Short) + "\n")
		writeFlags(&b, c.LocalNonPersistentFlags())
	}

	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nStart the interactive picker.\n")
	b.WriteString(".TP\n\\fB" + appName + " parse \"11 PM\"\\fR\nPrint 11:00:00 PM.\n")
	b.WriteString(".TP\n\\fB" + appName + " format 17\\fR\nPrint 5:00:00 PM.\n")
	b.WriteString(".SH SEE ALSO\nProject homepage: https://github.com/stigoleg/timepicker\n")
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(b.String()), 0o644)
}

func writeFlags(b *strings.Builder, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		names := "\\-\\-" + f.Name
		if f.Shorthand != "" {
			names = "\\-" + f.Shorthand + ", " + names
		}
		if t := f.Value.Type(); t != "bool" {
			names += " <" + t + ">"
		}
		desc := f.Usage
		if f.DefValue != "" && f.DefValue != "false" {
			desc += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + escapeRoff(desc) + "\n")
	})
}

func escapeRoff(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "-", "\\-")
}
