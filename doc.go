// Package mystify is a small "Mystify"-style screensaver core.
//
// A handful of polygon outlines drift across a fixed-size screen. Each
// vertex moves in a straight line and bounces off the screen edges with a
// freshly drawn speed. Every tick the current shape of each polygon is
// recorded, and the recorded shapes are drawn as a stepped trail in a
// slowly cycling hue.
//
// # Quick start
//
// The engine draws through a [Canvas], which supplies the line primitive
// and the color constructor. The simplest way to get a window is the
// ebitenhost package:
//
//	engine := mystify.NewEngine(mystify.DefaultConfig(), nil)
//	if err := ebitenhost.Run(engine, ebitenhost.RunConfig{Title: "Mystify"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive the lifecycle yourself:
//
//	engine := mystify.NewEngine(cfg, canvas, mystify.WithSeed(42))
//	engine.Initialize()
//	for running {
//		engine.Update()
//		engine.Render()
//	}
//	engine.Finalize()
//
// # Determinism
//
// All randomness comes from the generator passed with [WithRand] or
// [WithSeed]. Two engines built from the same config and seed emit the same
// sequence of draw calls, which [RecordingCanvas] makes easy to check.
//
// # Hosts
//
// Three hosts ship with the module: ebitenhost (window), rasterhost
// (offscreen PNG via gogpu/gg) and termhost (terminal via tcell). The
// cmd/mystify program selects one with -mode.
package mystify
