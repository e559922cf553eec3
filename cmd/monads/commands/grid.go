package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/monads/pkg/monad/seq"
)

func gridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the list-monad cartesian product and bind chains",
		Run: func(cmd *cobra.Command, args []string) {
			numbers := []int{1, 2, 3}
			chars := []rune{'a', 'b', 'c'}

			pairs := seq.Map(seq.Product(numbers, chars), func(p seq.Pair[int, rune]) string {
				return fmt.Sprintf("(%d,%c)", p.First, p.Second)
			})
			fmt.Println(pairs)

			incrementer := func(v int) []int { return []int{v, v + 1} }
			doubler := func(v int) []int { return []int{v, v * 2} }
			fmt.Println(seq.Bind(seq.Bind(numbers, incrementer), doubler))
		},
	}
	return cmd
}
