/*
Package ports defines the driven ports (interfaces) for the stagedash dashboard.

These interfaces decouple the rendering core from the pipeline service and from the
terminal, so the dashboard can read pipelines from HTTP, files, SQLite or a cache,
and draw on a real terminal or on an in-memory canvas.

# Key Interfaces

  - PipelineSource: Lists pipelines and reports a pipeline's stages with their latest execution.
  - Surface: A drawable screen of known size that accepts one panel per draw command.
*/
package ports
