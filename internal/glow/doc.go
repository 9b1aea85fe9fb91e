// Package glow implements the soft-edge effects of the orb: a separable
// Gaussian blur over gg pixmaps, used for the atmosphere circles of the
// gradient strategy and the pulsing halo of the layered strategy's sphere.
package glow
