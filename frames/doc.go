// Package frames renders orb visuals into frame sequences: one loop of the
// animation sampled at a fixed frame rate, rendered in parallel, optionally
// supersampled, and encoded as an animated GIF. A Cache serves frames to
// long-running render loops such as the terminal preview.
package frames
