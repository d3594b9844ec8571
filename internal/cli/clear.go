package cli

import (
	"fmt"

	"github.com/mstern/zenith/internal/constants"
)

type ClearCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

// Run erases every journal document, canonical and legacy keys alike. This
// cannot be undone.
func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Print("This removes all habits, completions, and check-ins. Type 'yes' to continue: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	err := ctx.Adapter.Erase(
		constants.KeyHabits,
		constants.KeyCompletions,
		constants.KeyCheckIns,
		constants.LegacyKeyHabits,
		constants.LegacyKeyCompletions,
		constants.LegacyKeyMoods,
	)
	if err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return nil
}
