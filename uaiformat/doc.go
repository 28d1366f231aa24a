// Package uaiformat reads and writes the plain-text model, evidence, and
// solution file formats this class of solver is exchanged in: a UAI-style
// preamble (network type, cardinalities, factor scopes, factor tables),
// a ".evid" evidence file (count followed by variable/value pairs), and
// a result file carrying PR/MAR or MAP records.
//
// Parsing tokenizes on whitespace (including newlines) rather than
// depending on any particular line layout, matching how the format is
// written in the source literature: fields may be wrapped across lines
// for readability without changing their meaning.
package uaiformat
