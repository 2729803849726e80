// Package recording captures canvas primitives as typed commands.
//
// A Recorder implements isovt.Canvas. Each primitive it receives is
// stored as a command value; paths are cloned into a ResourcePool and
// referenced by PathRef so later mutation by the caller cannot change
// the recording.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(w, h)
//	renderer.Render(rec, ws)
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//		fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// A Recording replays onto any canvas in the original order:
//
//	c := raster.New(w, h)
//	r.Playback(c)
//
// Tests use recordings to assert exactly which primitives a renderer
// emitted, and the vtrender tool prints them with Dump.
package recording
