/*
Package observability provides tools for monitoring enrichment runs.

Metrics are exposed as domain.LifecycleHooks backed by a private prometheus
registry, so a short-lived CLI run can dump them to a textfile for the node
exporter instead of serving an HTTP endpoint. LogHooks mirrors the same events
to a structured logger, and Chain fans one event out to several hook sets.
*/
package observability
