// Package ui renders one navigation menu as a Bubble Tea program and
// reports the label the user picked.
//
// Prompter implements driver.Prompter: each call builds a Model for the
// request, runs it on the alternate screen, and returns when the user
// chooses an entry, cancels, or the listed directory changes underneath
// the menu. The driver owns navigation; this package never sees Selections.
//
// Message flow:
//   - Model.Update routes each tea.Msg through a typed handler registry
//     (keys, mouse, resize, watch events).
//   - Filter editing lives in input.go, cursor movement and choices in
//     navigation.go, and layout in view.go.
//   - Entries whose text spans several lines, such as Zarr hierarchy
//     descriptions, show their first line in the list and the rest in a
//     preview panel (side by side on wide terminals, inline otherwise).
//
// Menu state (items, filter, cursor, viewport) lives in internal/ui/state.
package ui
