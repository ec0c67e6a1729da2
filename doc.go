// Package lissajous generates animated Lissajous figures.
//
// A figure is described by [Params]: the amplitude, frequency and phase of
// one sine per axis, and the number of samples to take. Each frame, a
// [Sampler] evaluates the two sines at one-degree steps, [Smooth] joins the
// samples into a single continuous path of quadratic segments, and [Project]
// computes the transform that fits the fixed logical canvas into the output
// surface, letterboxing whichever axis has room to spare.
//
// The sampler, the path builder and the projector are pure functions. All
// mutable state lives in a [State] owned by the caller, which applies
// [Update] values coming from the controls and advances its [Clock] once per
// frame. [Pipeline.Frame] runs all steps for one frame.
//
// Rendering the path is left to the caller; see the raster package for a
// software renderer.
package lissajous
