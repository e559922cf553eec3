package census

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ib-77/monads/pkg/monad/chain"
	"github.com/ib-77/monads/pkg/monad/maybe"
)

// Person is a plain immutable record. Names are fatal preconditions:
// a Person without them is a programming error, not a recoverable one.
type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

func NewPerson(first, last string) Person {
	if first == "" || last == "" {
		panic("census: person requires a first and last name")
	}
	return Person{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
	}
}

// Census is an in-memory index of people by full name.
type Census struct {
	people map[string]Person
}

func New(people ...Person) *Census {
	c := &Census{people: make(map[string]Person, len(people))}
	for _, p := range people {
		c.people[key(p.FirstName, p.LastName)] = p
	}
	return c
}

// Find returns a pointer to the matching person, or nil when there is
// no match. It is the raw nil-returning access that both lookup styles
// are built on.
func (c *Census) Find(first, last string) *Person {
	if p, ok := c.people[key(first, last)]; ok {
		return &p
	}
	return nil
}

// LookupNaive is the pattern taught against: manual nil checks and a
// silent nil return that every caller has to remember to test for.
func (c *Census) LookupNaive(first, last *string) *Person {
	if first == nil {
		return nil
	}
	if last == nil {
		return nil
	}
	return c.Find(*first, *last)
}

// Lookup is the recommended pattern: absence is encoded in the Maybe at
// construction, so a missing last name or an unknown person both come
// back as None and the chain never dereferences nil.
func (c *Census) Lookup(ctx context.Context, first string, last *string) maybe.Maybe[Person] {
	return chain.Then(
		chain.FromNillable(ctx, last),
		func(ctx context.Context, l string) maybe.Maybe[Person] {
			return maybe.OfNillable(c.Find(first, l))
		},
	).Maybe()
}

func key(first, last string) string {
	return strings.ToLower(first) + " " + strings.ToLower(last)
}
