// Package cmd provides the command-line interface for pass-tutor.
//
// The root command generates a password from the selected character classes,
// asks for confirmation until a candidate is accepted, then drills it until
// interrupted.
//
// # Command Examples
//
//	// All classes, 12 characters
//	pass-tutor
//
//	// Digits and lower-case, 16 characters
//	pass-tutor -n -L -l 16
//
//	// Two viewings per cycle, hidden recall input
//	pass-tutor --practice-rounds 2 --hide-input
//
//	// Settings from a YAML file
//	pass-tutor --config tutor.yml
//
//	// Build information as JSON
//	pass-tutor version --format json
//
// When no class switch is given every class is enabled. A non-numeric
// --length silently falls back to 12.
package cmd
