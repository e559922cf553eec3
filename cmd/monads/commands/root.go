package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "monads",
		Short: "Monad pattern demonstrations: optional chaining, futures, list binds",
	}

	root.AddCommand(lookupCmd(), ordersCmd(), gridCmd())
	return root.Execute()
}
