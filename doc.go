// Package diagkit is a diagnostics base library: hierarchical interned
// scope paths, a filtered structured-logging pipeline with self-registering
// channels, an event/listener primitive, and a self-registering unit-test
// framework built on all three.
//
// The packages layer leaf-first:
//
//   - scope: interned "|"-delimited paths with ancestor containment,
//     shared by log routing and test selection.
//   - event: a synchronous one-to-many notifier with listener tokens.
//   - logging: severity/verbosity filtered events fanned out to file,
//     console, zap and in-memory channels.
//   - unit: suites of fixture-bound test cases that register themselves
//     from init functions, selected by scope and summed into reports.
//
// There is no binary; diagkit links into host programs. A host exposes the
// test runner by mounting unit.Options flags and calling unit.Main.
package diagkit
