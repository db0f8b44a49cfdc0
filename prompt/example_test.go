package prompt_test

import (
	"context"
	"fmt"

	"github.com/ava12/choice/prompt"
)

func Example() {
	ctx := context.Background()

	fmt.Println(prompt.Expand(ctx, `a {red} ball /* note */on a \{wooden\} \(bench\)`, 42))
	fmt.Println(prompt.StripComments(ctx, "{red|blue}/* color */!"))
	fmt.Println(prompt.HasChoices("{red|blue} ball"), prompt.HasChoices(`\{red\} ball`))

	// Output:
	// a red ball  on a {wooden} \(bench\)
	// {red|blue} !
	// true false
}
