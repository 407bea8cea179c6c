/*
Package render turns pipeline stages into panels and draws them.

Rendering happens in two phases. BuildFrame is pure: it partitions the screen and
returns every panel of the frame in draw order. Draw is the only side effect: it
issues one draw command per panel against a ports.Surface. Keeping the phases apart
lets the whole layout be checked without a terminal.
*/
package render
