package main

import "flag"

// Command-line flags that select the variant and toggle optional audio,
// profiling and debugging behavior.
var (
	// variantFlag picks the starting variant; M toggles it at runtime.
	variantFlag = flag.String("variant", variantPrototype, "game variant to start in (prototype or full)")

	// seedFlag fixes the level generator seed. Zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "level generator seed (0 picks one from the clock)")

	// enableAudioFlag toggles the synthesized jump, portal and crash cues.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable synthesized sound cues")

	// musicFlag names an optional WAV file looped under the cues.
	musicFlag = flag.String("music", "", "path to a WAV file looped as background music (requires -enable-audio)")

	// debugFlag enables the FPS and tick timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and tick timing overlay")

	// recordDefaultPGO lets the autopilot play while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "let the autopilot play for 15s while capturing default.pgo")

	autopilotFlag = flag.Bool("autopilot", false, "let the autopilot play until a key is pressed")

	scaleFlag = flag.Int("scale", defaultScale, "window scale factor")
)
