package scene

// Settings are per-scene preferences persisted with the document.
type Settings struct {
	// ShowCoords toggles the coordinate readout in the sidebar panel.
	ShowCoords bool `yaml:"show_coords"`
}

// Scene is the object graph plus its persisted settings.
type Scene struct {
	Name     string    `yaml:"name"`
	Objects  []*Object `yaml:"objects"`
	Settings Settings  `yaml:"settings"`

	byName map[string]*Object
}

// New returns an empty scene.
func New(name string) *Scene {
	return &Scene{
		Name:   name,
		byName: make(map[string]*Object),
	}
}

// Add appends an object and indexes it by name. A later object with a
// duplicate name shadows the earlier one in lookups.
func (s *Scene) Add(o *Object) *Object {
	if s.byName == nil {
		s.byName = make(map[string]*Object)
	}
	s.Objects = append(s.Objects, o)
	s.byName[o.Name] = o
	return o
}

// Lookup returns the object with the given name, or nil.
func (s *Scene) Lookup(name string) *Object {
	if s == nil {
		return nil
	}
	return s.byName[name]
}

// Remove deletes the named object. It reports whether anything was removed.
func (s *Scene) Remove(name string) bool {
	o := s.byName[name]
	if o == nil {
		return false
	}
	delete(s.byName, name)
	for i, obj := range s.Objects {
		if obj == o {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			break
		}
	}
	return true
}

// Lights returns the light objects in scene order.
func (s *Scene) Lights() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.IsLight() {
			out = append(out, o)
		}
	}
	return out
}

// reindex rebuilds the name index after unmarshaling.
func (s *Scene) reindex() {
	s.byName = make(map[string]*Object, len(s.Objects))
	for _, o := range s.Objects {
		s.byName[o.Name] = o
	}
}
