package qml

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed builtins.toml
var builtinsTOML []byte

type enumDef struct {
	Keys []string `toml:"keys"`
}

type typeDef struct {
	Inherits   string             `toml:"inherits"`
	Attached   bool               `toml:"attached"`
	Properties map[string]string  `toml:"properties"`
	Enums      map[string]enumDef `toml:"enums"`
}

type builtinsFile struct {
	Types map[string]typeDef `toml:"types"`
}

// TypeEnv is the immutable type/interpreter model: builtin type objects
// by name plus the bag of attached types addressed through capitalised
// qualifiers (Keys.enabled and the like).
type TypeEnv struct {
	types    map[string]*ObjectValue
	attached *ObjectValue
}

// LoadTypeEnv parses a TOML type description into a TypeEnv.
func LoadTypeEnv(data []byte) (*TypeEnv, error) {
	var file builtinsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("type model: failed to parse TOML: %w", err)
	}

	env := &TypeEnv{
		types:    make(map[string]*ObjectValue, len(file.Types)),
		attached: NewObjectValue("global"),
	}

	// First pass creates every object so property and prototype
	// references can point at types declared later in the file.
	for name := range file.Types {
		env.types[name] = NewObjectValue(name)
	}

	for name, def := range file.Types {
		obj := env.types[name]
		if def.Inherits != "" {
			proto, ok := env.types[def.Inherits]
			if !ok {
				return nil, fmt.Errorf("type model: %s inherits unknown type %s", name, def.Inherits)
			}
			obj.SetPrototype(proto)
		}
		for propName, propType := range def.Properties {
			value, err := env.valueForTypeName(propType)
			if err != nil {
				return nil, fmt.Errorf("type model: %s.%s: %w", name, propName, err)
			}
			obj.SetMember(propName, value)
		}
		for propName, enum := range def.Enums {
			keys := append([]string(nil), enum.Keys...)
			sort.Strings(keys)
			obj.SetMember(propName, &EnumValue{Name: propName, Keys: keys})
		}
		if def.Attached {
			env.attached.SetMember(name, obj)
		}
	}
	return env, nil
}

func (e *TypeEnv) valueForTypeName(name string) (Value, error) {
	switch name {
	case "int", "real", "double":
		return Number, nil
	case "bool":
		return Boolean, nil
	case "string":
		return String, nil
	case "url":
		return URL, nil
	case "color":
		return Color, nil
	case "anchorline":
		return AnchorLine, nil
	case "var", "variant", "script":
		return Undefined, nil
	}
	if obj, ok := e.types[name]; ok {
		return obj, nil
	}
	return nil, fmt.Errorf("unknown property type %q", name)
}

// LookupType returns the builtin type object for a name, or nil.
func (e *TypeEnv) LookupType(name string) *ObjectValue {
	if e == nil {
		return nil
	}
	return e.types[name]
}

// AttachedTypes returns the bag of attached types.
func (e *TypeEnv) AttachedTypes() *ObjectValue {
	if e == nil {
		return nil
	}
	return e.attached
}

var defaultEnv = sync.OnceValues(func() (*TypeEnv, error) {
	return LoadTypeEnv(builtinsTOML)
})

// DefaultTypeEnv returns the environment built from the embedded
// builtins description.
func DefaultTypeEnv() (*TypeEnv, error) {
	return defaultEnv()
}
