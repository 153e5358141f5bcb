// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections from configuration and
// registering SQL scalar functions that expose fraction and vector
// arithmetic. It intentionally keeps a thin surface so other packages can
// share the same driver instance.
package engine
