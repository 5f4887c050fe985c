// Package components provides the theme-aware terminal primitives that tablekit
// uses as cell content.
//
// # Overview
//
// Components render to strings through lipgloss. They implement ui.Renderable so
// the table core can carry them around without knowing how they paint.
//
// # Architecture
//
// The package has three layers:
//
//  1. Theme Layer - the immutable application theme (palette, borders, typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Text, Spacer, Divider, Checkbox, indicators and Inline
//
// # Theme System
//
// The application theme is passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := text.ViewWithContext(ctx)
//
// View() falls back to the default theme.
//
// The table package never reads the application theme while laying out a grid.
// table.DefaultTheme derives a table theme from it once, up front.
//
// # Layout Values
//
// Spacing, Alignment and Constraints are plain values shared with the table
// core for per-cell padding, alignment and size constraints:
//
//	pad := components.HorizontalSpacing(1)
//	align := components.AlignEnd
//	limit := components.WithMaxWidth(20)
//
// # Table Glyphs
//
//   - Checkbox: "[ ]", "[x]" and "[-]" for the tri-state header
//   - SortIndicator: ascending/descending arrows next to a header label
//   - ExpandIcon: collapsed/expanded toggle
//   - Inline: horizontal composition of several renderables
package components
