// Package puzzle holds the registry of daily puzzle solvers and the runner
// that feeds them their input files.
//
// Each day is a pair of pure functions from the puzzle input text to an
// answer. Days are looked up by number ("16") or by name ("sixteen").
package puzzle
