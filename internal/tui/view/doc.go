// Package view renders the pieces of the irframe TUI as strings.
//
// Each component is a plain value describing what to draw; none of them
// hold Bubble Tea state. The model in package tui composes them:
//
//   - [RenderHeader]: framework title bar
//   - [Picker]: one button per phase; [Picker.HitTest] maps mouse columns
//     back to phases
//   - [Detail]: title, description, "Required Actions" checklist and the
//     optional "Resources & Tools" blocks; the model scrolls it in a
//     viewport framed by [RenderPanel]
//   - [RenderHelp]: compact or full key help plus transient notices
//
// Styles come from package styles and follow the active theme. Glyphs come
// from an [IconSet] so terminals without good Unicode coverage can use
// ASCII.
package view
