// Package playback implements the deterministic, event-annotated replay of
// precomputed voltage traces.
//
// The package is the shared core behind every scenario animation: a
// [Clock] maps ticks to a reveal index, a [TriggerSet] fires one-shot
// markers when the revealed time passes fixed thresholds, a [Window]
// derives the highlight band, and a [Controller] orchestrates them into a
// renderable [Frame] per tick.
//
//	ctrl, _ := playback.NewController(set, playback.Config{Step: 16, Loop: true})
//	ctrl.Start()
//	frame, _ := ctrl.Tick()
//
// # Scheduling
//
// The package never schedules itself. The host (the TUI, or a test) drives
// Tick at whatever cadence it owns and delivers the stop signal via Stop.
// Controllers are not safe for concurrent ticks.
package playback
