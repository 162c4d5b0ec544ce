package app

import (
	"errors"
	"fmt"
)

// Connections loads the network and lists the roads of each named city.
// Unknown cities are reported and the listing continues; the returned error
// joins one failure per unknown city.
func (a *App) Connections(names []string) error {
	g, _, err := a.loadNetwork()
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range names {
		if err := a.term.Connections(g, name); err != nil {
			_ = a.term.Failure(err)
			errs = append(errs, err)
		}
	}
	if err := a.term.Err(); err != nil {
		return fmt.Errorf("app: write: %w", err)
	}

	return errors.Join(errs...)
}
