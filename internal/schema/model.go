package schema

type Table struct {
	Name        string
	Columns     []*Column
	ForeignKeys []*ForeignKey
}

type Column struct {
	Position int
	Name     string
	DataType string // 선언된 타입 그대로 (예: "NVARCHAR(120)")
	NotNull  bool
	Default  string
	IsPK     bool
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// PrimaryKeys returns the names of the primary key columns in declaration order.
func (t *Table) PrimaryKeys() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.IsPK {
			keys = append(keys, c.Name)
		}
	}
	return keys
}
