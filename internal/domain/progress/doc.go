// Package progress implements the learning-progress engine: mastery
// updates for review outcomes, the spaced-repetition review scheduler,
// the daily-streak tracker, and achievement-threshold evaluation.
//
// Everything in this package is a pure function over domain values.
// Persistence and orchestration live in the store and service layers.
package progress
