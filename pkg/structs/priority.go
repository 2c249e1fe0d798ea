package structs

// Priority is a single orderable key; lower values are more urgent.
//
// The named tiers are spaced apart so that fan-out tasks can shift their
// priority by ±1 relative to their parent without jumping a whole tier.
const (
	// PriorityNormal is the tier for user-visible work, eg. a fresh scan.
	PriorityNormal = 0

	// PriorityLow is the tier for corrective work spawned by a scan,
	// eg. repairing a mismatched file extension.
	PriorityLow = 4

	// PriorityLowest is the tier for derivative discovery work spawned by
	// a scan: conversion, page hashing and duplicate-page detection.
	PriorityLowest = 8
)
