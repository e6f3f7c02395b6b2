// Package pipeline executes the report steps in sequence.
//
// Each report section is produced by a Step that borrows the loaded visitor
// list and writes its result into a model.LibraryReport. Steps are
// independent: none reads the output of another, so the order only fixes the
// order in which sections appear in logs and in PerformedSteps.
//
// The pipeline checks the context before every step so that an interrupt
// stops a run between sections.
package pipeline
