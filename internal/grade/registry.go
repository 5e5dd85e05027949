package grade

// Registry holds one Table per scale.
type Registry struct {
	tables map[Scale]*Table
}

// NewRegistry builds the tables of all supported scales.
func NewRegistry() *Registry {
	return &Registry{
		tables: map[Scale]*Table{
			French:       newTable(French, "", frenchEntries),
			UIAA:         newTable(UIAA, "", uiaaEntries),
			YDS:          newTable(YDS, "", ydsEntries),
			Elbsandstein: newTable(Elbsandstein, "", elbsandsteinEntries),
			Vermin:       newTable(Vermin, verminUnrated, verminEntries()),
			Font:         newTable(Font, "", fontEntries),
		},
	}
}

// Table returns the table of scale s.
func (r *Registry) Table(s Scale) (*Table, bool) {
	t, ok := r.tables[s]
	return t, ok
}
