package commands

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ib-77/monads/internal/orders"
)

func ordersCmd() *cobra.Command {
	var latency time.Duration

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Chain two asynchronous fetches and total an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, user := orders.NewDemoStore(latency)

			b, err := json.Marshal(user)
			if err != nil {
				return err
			}
			fmt.Printf("user:  %s\n", b)

			total, err := orders.OrderTotal(ctx, store, user.ID).Await(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("total: %s (incl. VAT)\n", total)
			return nil
		},
	}

	cmd.Flags().DurationVar(&latency, "latency", 50*time.Millisecond, "simulated fetch latency")
	return cmd
}
