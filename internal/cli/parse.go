package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stigoleg/timepicker/internal/clock"
	"github.com/stigoleg/timepicker/internal/config"
)

// ErrSomeRejected is returned by parse when at least one input was rejected.
var ErrSomeRejected = errors.New("some inputs were rejected")

// parseRecord is one parsed input in json and yaml output.
type parseRecord struct {
	Input  string      `json:"input"            yaml:"input"`
	Valid  bool        `json:"valid"            yaml:"valid"`
	Time   *clock.Time `json:"time,omitempty"   yaml:"time,omitempty"`
	Hour   *int        `json:"hour,omitempty"   yaml:"hour,omitempty"`
	Minute *int        `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second *int        `json:"second,omitempty" yaml:"second,omitempty"`
	Period string      `json:"period,omitempty" yaml:"period,omitempty"`
}

func newRecord(input string) parseRecord {
	t, err := clock.Parse(input)
	if err != nil {
		return parseRecord{Input: input}
	}
	h, m, s := t.Hour(), t.Minute(), t.Second()
	return parseRecord{
		Input:  input,
		Valid:  true,
		Time:   &t,
		Hour:   &h,
		Minute: &m,
		Second: &s,
		Period: t.Period().String(),
	}
}

func newParseCommand(settings *config.Settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Normalize typed times",
		Long: `Parse each argument, or each line of stdin when there are none, and print
its normalized form. Rejected inputs print "rejected" and make the command fail.
Empty stdin lines are skipped; lines holding only blanks are rejected.`,
		Example: `  timepicker parse "11 PM" "23:45:00" 7
  echo "0PM" | timepicker parse --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			logger := commandLogger(cmd.ErrOrStderr(), settings)
			records := make([]parseRecord, 0, len(inputs))
			rejected := 0
			for _, in := range inputs {
				r := newRecord(in)
				if !r.Valid {
					rejected++
					logger.Debug("input rejected", "input", in)
				}
				records = append(records, r)
			}

			if err := writeRecords(cmd.OutOrStdout(), output, records); err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%w: %d of %d", ErrSomeRejected, rejected, len(records))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func writeRecords(w io.Writer, format string, records []parseRecord) error {
	switch format {
	case "text":
		for _, r := range records {
			line := "rejected"
			if r.Valid {
				line = r.Time.String()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
