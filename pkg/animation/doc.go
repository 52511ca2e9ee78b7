// Package animation produces progress values for chart transforms.
//
// A [chart.Transformable] maps progress to geometry; this package decides
// how progress moves over time. [Timed] follows an easing curve over a fixed
// duration. [Spring] follows a damped harmonica spring and may overshoot,
// which the transform driver turns into extrapolated padding and clip.
// [Player] ties a [Source] to a target and clears the target's transforms
// once the source finishes.
//
//	p := animation.NewPlayer(view, &animation.Timed{Duration: 300 * time.Millisecond, Easing: animation.EaseOut})
//	for !p.Done() {
//	    p.Tick(16 * time.Millisecond)
//	    view.Layout(size)
//	    view.Draw(ctx, bounds)
//	}
//
// [chart.Transformable]: github.com/wqcharts/bizchart/pkg/chart.Transformable
package animation
