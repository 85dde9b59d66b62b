// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint describes the colors a drawing call fills or strokes with.

A Color is one of Named, RGBA or Gradient. Backends turn a Color into
a native paint object for the duration of a single call: solid colors
through Vec4 or Solid, gradients through Gradient.Resolve.

Channel values are not range checked. They are handed to the native
API as they are, and it is up to the native API to clamp them.
*/
package paint
