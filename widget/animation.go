package widget

import (
	"math"
	"time"

	"hndld.dev/hndld/layout"
	"honnef.co/go/stuff/math/mathutil"

	"gioui.org/op"
	"golang.org/x/exp/constraints"
)

type EasingFunction func(float64) float64
type LerpFunction[T any] func(start, end T, r float64) T

// Animation interpolates between two values over a fixed duration, driven by the frame clock.
type Animation[T any] struct {
	StartValue T
	EndValue   T
	StartTime  time.Time
	Duration   time.Duration
	Ease       EasingFunction
	Lerp       LerpFunction[T]

	active bool
}

func (anim *Animation[T]) Start(gtx layout.Context, v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.StartValue = v1
	anim.EndValue = v2
	anim.StartTime = gtx.Now
	anim.Duration = d
	anim.Ease = ease
	anim.active = true
	defer op.InvalidateOp{}.Add(gtx.Ops)
}

func StartSimpleAnimation[T constraints.Integer | constraints.Float](gtx layout.Context, anim *Animation[T], v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.Start(gtx, v1, v2, d, ease)
	anim.Lerp = mathutil.Lerp
}

// Jump stops the animation and sets its value to v.
func (anim *Animation[T]) Jump(v T) {
	anim.active = false
	anim.EndValue = v
}

func (anim *Animation[T]) Value(gtx layout.Context) T {
	if !anim.active {
		return anim.EndValue
	}

	d := gtx.Now.Sub(anim.StartTime)
	if d >= anim.Duration {
		anim.active = false
		return anim.EndValue
	}

	ratio := anim.Ease(float64(d) / float64(anim.Duration))
	op.InvalidateOp{}.Add(gtx.Ops)
	return anim.Lerp(anim.StartValue, anim.EndValue, ratio)
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}
