/*
Package domain contains the core models of the stagedash dashboard.

It describes what a pipeline snapshot looks like (Pipeline, Stage, ExecutionStatus)
and the transient values used to paint one terminal frame (Rect, Panel, Section).
This package is kept pure and free of I/O so that the layout and render engines can
be exercised without a terminal or a network.

# Key Entities

  - Rect: an immutable integer rectangle on the drawing surface.
  - Stage: a named pipeline stage with an optional latest ExecutionStatus.
  - ExecutionStatus: a closed set of known status codes plus an "other" case that
    keeps the raw string reported by the source.
  - Panel: a single draw command (area, title, border style and colour).
*/
package domain
