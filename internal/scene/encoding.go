package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (k LightKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *LightKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, ok := lightKindFromName[s]
	if !ok {
		return fmt.Errorf("unknown light kind %q", s)
	}
	*k = v
	return nil
}

func (k ObjectKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *ObjectKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, ok := objectKindFromName[s]
	if !ok {
		return fmt.Errorf("unknown object kind %q", s)
	}
	*k = v
	return nil
}

func (m RotationMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *RotationMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, ok := rotationModeFromName[s]
	if !ok {
		return fmt.Errorf("unknown rotation mode %q", s)
	}
	*m = v
	return nil
}

func (s AreaShape) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *AreaShape) UnmarshalYAML(node *yaml.Node) error {
	var n string
	if err := node.Decode(&n); err != nil {
		return err
	}
	v, ok := areaShapeFromName[n]
	if !ok {
		return fmt.Errorf("unknown area shape %q", n)
	}
	*s = v
	return nil
}
