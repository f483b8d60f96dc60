// Package core holds the pieces shared by every processing stage: the error
// kinds the engine reports, argument validation, small numeric reductions
// and functional-option plumbing for stage configurations.
package core
