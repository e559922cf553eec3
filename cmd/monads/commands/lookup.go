package commands

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ib-77/monads/internal/census"
)

func lookupCmd() *cobra.Command {
	var first string
	var last string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up a person naively and with Maybe chaining",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := census.New(
				census.NewPerson("John", "Doe"),
				census.NewPerson("Jane", "Roe"),
			)

			// the empty flag stands in for the missing value
			var lastPtr *string
			if last != "" {
				lastPtr = &last
			}

			if naive := c.LookupNaive(&first, lastPtr); naive != nil {
				fmt.Printf("naive:   %+v\n", *naive)
			} else {
				fmt.Println("naive:   <nil>")
			}

			out := c.Lookup(cmd.Context(), first, lastPtr)
			if out.IsNone() {
				fmt.Println("chained: absent")
				return nil
			}

			b, err := json.Marshal(out.Get())
			if err != nil {
				return err
			}
			fmt.Printf("chained: %s\n", b)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "John", "first name to look up")
	cmd.Flags().StringVar(&last, "last", "", "last name to look up (empty simulates the missing value)")
	return cmd
}
