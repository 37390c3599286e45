// Package trim shrinks a capture region to the union of the collider bounds
// found inside it. Trimming only ever shrinks or preserves the region; a
// union that would grow it is rejected.
package trim

import (
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
)

// ToColliders computes the union of the candidate rects and returns it as
// new bounds. Two signals leave the current bounds unchanged:
//
//   - errors.ErrNoMatch when candidates is empty
//   - errors.ErrTooLarge when the union exceeds current along either axis
//
// Both are informational, not failures; callers log them and proceed with
// the unchanged bounds.
func ToColliders(candidates []geom.Rect, current geom.WorldBounds) (geom.WorldBounds, error) {
	if len(candidates) == 0 {
		return current, errors.ErrNoMatch
	}

	union := candidates[0]
	for _, r := range candidates[1:] {
		union = union.Union(r)
	}

	if union.Size.X > current.Size.X || union.Size.Y > current.Size.Y {
		return current, errors.ErrTooLarge
	}

	return geom.BoundsFromRect(union), nil
}
