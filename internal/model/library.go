package model

// Library holds the shop's reference data: the chemical catalog and the
// surface coverage table. It is loaded once at startup and then only read.
type Library struct {
	Chemicals []Chemical    `json:"chemicals"`
	Surfaces  []SurfaceType `json:"surfaces"`
}

// DefaultLibrary returns the built-in catalog and coverage table.
func DefaultLibrary() Library {
	return Library{
		Chemicals: DefaultCatalog().Chemicals,
		Surfaces:  DefaultCoverageTable().Surfaces,
	}
}

// Catalog returns the chemical list as a Catalog.
func (l Library) Catalog() Catalog {
	return Catalog{Chemicals: l.Chemicals}
}

// CoverageTable returns the surfaces as a CoverageTable.
func (l Library) CoverageTable() CoverageTable {
	return CoverageTable{Surfaces: l.Surfaces}
}

// FindChemicalByID returns a pointer to the chemical with the given ID, or nil.
func (l *Library) FindChemicalByID(id string) *Chemical {
	for i := range l.Chemicals {
		if l.Chemicals[i].ID == id {
			return &l.Chemicals[i]
		}
	}
	return nil
}

// FindSurfaceByID returns a pointer to the surface with the given ID, or nil.
func (l *Library) FindSurfaceByID(id string) *SurfaceType {
	for i := range l.Surfaces {
		if l.Surfaces[i].ID == id {
			return &l.Surfaces[i]
		}
	}
	return nil
}

// SurfaceNames returns surface display names for pickers.
func (l *Library) SurfaceNames() []string {
	names := make([]string, len(l.Surfaces))
	for i, s := range l.Surfaces {
		names[i] = s.Name
	}
	return names
}
