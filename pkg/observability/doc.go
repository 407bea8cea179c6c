/*
Package observability exposes Prometheus metrics for the stagedash dashboard.

A Recorder owns its own registry, so one-shot runs can flush it to a node-exporter
textfile and the serve command can publish it on /metrics. Metered wraps any
ports.PipelineSource to time fetches and count failures.

# Metrics

  - stagedash_stage_status{pipeline,stage,status}: 1 for each stage's current status.
  - stagedash_fetch_errors_total{source}: failed source calls.
  - stagedash_fetch_duration_seconds{source}: source call latency.
*/
package observability
