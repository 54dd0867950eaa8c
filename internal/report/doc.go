// Package report collects issues found while cursor trees are loaded,
// materialized into the object model, verified and indexed.
package report
