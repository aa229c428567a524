// Package vmf extracts the environment entities of a Hammer map (.vmf).
//
// A VMF file is a VDF document whose top level holds "versioninfo",
// "world", "entity" and other blocks. [Extract] keeps only the entities
// that set up a map's environment (fog, lighting, soundscapes, ...),
// drops their duplicates, lines them up at fixed positions and removes the
// world geometry, leaving a small map that can be instanced into others.
package vmf
