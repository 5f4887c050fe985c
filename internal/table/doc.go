// Package table turns column definitions, row data and interaction settings
// into a grid of cells.
//
// The package does not paint anything and never scrolls. Build produces a View
// whose Grid holds one GridRow per physical row (header, data, group header,
// expansion, divider, footer). Every GridRow carries exactly one Cell per slot
// of the grid's WidthPlan; a cell spanning several slots is followed by
// Covered cells so the shape stays rectangular. Renderers (see
// internal/render and internal/export) resolve the plan into real widths.
//
// # State
//
// A Table keeps selection, expansion and hover state between builds. External
// SelectedRows/ExpandedRows slices seed that state and re-seed it whenever
// their value changes; a nil slice leaves the table uncontrolled. Gestures are
// delivered by invoking the OnTap/OnHover closures attached to grid rows and
// cells.
//
// # Sorting
//
// The table owns no sort state. It draws an indicator on the column named by
// Config.Sort and calls Config.OnSort with a column index when a sortable
// header is tapped. Choosing the next direction and re-supplying sorted rows is
// up to the caller.
package table
