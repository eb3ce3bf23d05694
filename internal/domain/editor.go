package domain

// Editor works on the issues of the newspapers it is linked to.
type Editor struct {
	ID      ID
	Name    string
	Address string

	NewspaperIDs []ID
}

type EditorPatch struct {
	Name    *string
	Address *string
}

func (e Editor) Clone() Editor {
	out := e
	out.NewspaperIDs = CloneIDs(e.NewspaperIDs)
	return out
}

func (p EditorPatch) Apply(e Editor) Editor {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	return e
}
