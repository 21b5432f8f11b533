// Package policy gates deployment steps. A policy embedded in the context can
// block steps by name, ask before each one, or deny all remote work; runs
// without a policy execute every step automatically.
package policy
