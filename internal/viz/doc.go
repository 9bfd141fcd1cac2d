// Package viz provides the terminal front end for stepping through scripts.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Player]: previous/next navigation over an [anim.Stepper]
//   - [Canvas]: cell grid the element tree is rasterised onto
//   - Theme selection mapping style classes to colours
//
// # Key Bindings
//
//	→ / L / N / Space - Next step
//	← / H / P         - Previous step
//	Home / End        - First / last step
//	T                 - Cycle color themes
//	?                 - Show help overlay
//	Q                 - Quit
//
// Previous is disabled at step 1 and Next at the last step, so range errors
// never reach the user.
package viz
