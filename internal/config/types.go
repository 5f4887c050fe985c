package config

// Document is a table document as read from YAML.
type Document struct {
	Version     string `yaml:"version" validate:"required,semver"`
	Name        string `yaml:"name" validate:"required,min=1,max=100"`
	Description string `yaml:"description,omitempty"`

	Settings Settings `yaml:"settings,omitempty"`

	Columns []ColumnSpec `yaml:"columns" validate:"required,min=1,dive"`
	Rows    []RowSpec    `yaml:"rows,omitempty" validate:"omitempty,dive"`
	Groups  []GroupSpec  `yaml:"groups,omitempty" validate:"omitempty,dive"`
	Footer  []RowSpec    `yaml:"footer,omitempty" validate:"omitempty,dive"`
}

// Settings controls presentation and interaction for the whole table.
type Settings struct {
	Theme      string    `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Border     string    `yaml:"border,omitempty" validate:"omitempty,border_name"`
	Checkboxes bool      `yaml:"checkboxes,omitempty"`
	Divider    string    `yaml:"divider,omitempty" validate:"omitempty,oneof=none solid dashed dotted"`
	Hover      *bool     `yaml:"hover,omitempty"`
	Sort       *SortSpec `yaml:"sort,omitempty"`
	Loading    bool      `yaml:"loading,omitempty"`
	Empty      string    `yaml:"empty,omitempty" validate:"max=200"`
}

// SortSpec names the initially sorted column by key.
type SortSpec struct {
	Column    string `yaml:"column" validate:"required,column_key"`
	Ascending *bool  `yaml:"ascending,omitempty"`
}

// IsAscending defaults to true when the direction is omitted.
func (s SortSpec) IsAscending() bool {
	return s.Ascending == nil || *s.Ascending
}

// ColumnSpec declares one column.
type ColumnSpec struct {
	Key      string  `yaml:"key" validate:"required,column_key"`
	Title    string  `yaml:"title,omitempty"`
	Width    string  `yaml:"width,omitempty" validate:"omitempty,width_spec"`
	MinWidth float64 `yaml:"min_width,omitempty" validate:"gte=0"`
	MaxWidth float64 `yaml:"max_width,omitempty" validate:"gte=0"`
	Sortable bool    `yaml:"sortable,omitempty"`
	Numeric  bool    `yaml:"numeric,omitempty"`
	Align    string  `yaml:"align,omitempty" validate:"omitempty,alignment"`
	Padding  string  `yaml:"padding,omitempty" validate:"omitempty,padding_spec"`
}

// Label returns the header text, falling back to the key.
func (c ColumnSpec) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Key
}

// RowSpec declares a data or footer row.
type RowSpec struct {
	Key      string   `yaml:"key,omitempty"`
	Cells    []string `yaml:"cells"`
	Details  string   `yaml:"details,omitempty"`
	Selected bool     `yaml:"selected,omitempty"`
	Expanded bool     `yaml:"expanded,omitempty"`
	Align    string   `yaml:"align,omitempty" validate:"omitempty,alignment"`
	Padding  string   `yaml:"padding,omitempty" validate:"omitempty,padding_spec"`
	Style    string   `yaml:"style,omitempty" validate:"omitempty,oneof=bold muted danger success warning"`
}

// GroupSpec declares an inclusive row range rendered under a header.
type GroupSpec struct {
	Title string `yaml:"title" validate:"required"`
	Start int    `yaml:"start" validate:"gte=0"`
	End   int    `yaml:"end" validate:"gtefield=Start"`
}
