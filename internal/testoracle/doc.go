// Package testoracle provides reference implementations used only from
// _test.go files across this module: a brute-force path-enumeration oracle
// for small scalar-only graphs, and a Monte-Carlo simulator for larger ones
// (spec.md §8, properties 8-9). Neither is imported by belief, diamond, topo,
// graphidx, or prob.
package testoracle
