// Package generator runs a full site build: load the deal sources, validate
// them, render every page on a bounded worker pool and write the output tree.
//
// Each stage is exposed on its own (Load, Render, Write) so commands can stop
// early, for example to validate without writing anything. Build chains all
// three.
package generator
