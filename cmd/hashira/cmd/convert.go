package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amanking2425/catalog-placement-hashira/internal/basex"
)

const baseFlag = "base"

func decodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "decode <value>",
		Short: "Print a base-b digit string in decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			base, err := baseFromFlags(c)
			if err != nil {
				return err
			}
			n, err := basex.Decode(args[0], base)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), n)
			return nil
		},
	}
	c.Flags().StringP(baseFlag, "b", "10", "base of the value, 2 to 36")
	return c
}

func encodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Print a non-negative decimal integer in base b",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			base, err := baseFromFlags(c)
			if err != nil {
				return err
			}
			n, err := basex.Decode(args[0], 10)
			if err != nil {
				return err
			}
			s, err := basex.Encode(n, base)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), s)
			return nil
		},
	}
	c.Flags().StringP(baseFlag, "b", "10", "target base, 2 to 36")
	return c
}

func baseFromFlags(c *cobra.Command) (int, error) {
	raw, err := c.Flags().GetString(baseFlag)
	if err != nil {
		return 0, err
	}
	return basex.ParseBase(raw)
}
