package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stigoleg/timepicker/internal/clock"
	"github.com/stigoleg/timepicker/internal/config"
)

func newFormatCommand(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "format HOUR [MINUTE [SECOND]]",
		Short: "Print the display form of a 24-hour time",
		Example: `  timepicker format 17        # 5:00:00 PM
  timepicker format 0 5 9     # 12:05:09 AM`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [3]int
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%q is not a number", a)
				}
				v[i] = n
			}

			t, err := clock.New(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			commandLogger(cmd.ErrOrStderr(), settings).Debug("formatted", "hour", v[0], "minute", v[1], "second", v[2])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), clock.Format(t))
			return err
		},
	}
}
