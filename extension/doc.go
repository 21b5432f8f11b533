// Package extension provides the run-time registry of task services. The
// built-in deploy service is registered by the root package; applications can
// add their own services implementing types.Service.
package extension
