/*
Package layout partitions a rectangle into equal-weight regions.

Partition is pure arithmetic: it removes a uniform margin from the input area and
splits what remains along one axis. Spans are computed with integer floor division
so that they always add up to the interior length exactly, leaving no gap and no
overlap between neighbouring regions.
*/
package layout
