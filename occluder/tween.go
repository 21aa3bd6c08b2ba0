package occluder

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animates a hull's rotation. Call Update(dt) each frame; the eased angle is
// applied through SetRotation, so normals and bounds follow along.
type RotationTween struct {
	tween *gween.Tween
	hull  *ConvexHull
	to    float64
	Done  bool
}

// Rotate from the hull's current rotation to the target angle over duration
// seconds.
func TweenRotation(hull *ConvexHull, to float64, duration float32, fn ease.TweenFunc) *RotationTween {
	return &RotationTween{
		tween: gween.New(float32(hull.Rotation()), float32(to), duration, fn),
		hull:  hull,
		to:    to,
	}
}

func (rt *RotationTween) Update(dt float32) {
	if rt.Done {
		return
	}
	angle, finished := rt.tween.Update(dt)
	if finished {
		// The tween runs in float32, so land exactly on the target
		rt.hull.SetRotation(rt.to)
	} else {
		rt.hull.SetRotation(float64(angle))
	}
	rt.Done = finished
}
