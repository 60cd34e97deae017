package fieldmesh

import "strings"

// Canonical component paths are "<record>/<axis>" where the record is a
// field family ("magneticField", "electricField") and the axis is one of
// the geometry's coordinate labels.
var canonicalComponents = map[string]struct{}{
	"magneticField/x":     {},
	"magneticField/y":     {},
	"magneticField/z":     {},
	"magneticField/r":     {},
	"magneticField/theta": {},
	"electricField/x":     {},
	"electricField/y":     {},
	"electricField/z":     {},
	"electricField/r":     {},
	"electricField/theta": {},
}

// componentFromAlias is the static registry mapping conventional short
// names onto canonical component paths. It is consulted by explicit
// accessors only; aliases are never injected as dynamic attributes.
var componentFromAlias = map[string]string{
	"Bx":     "magneticField/x",
	"By":     "magneticField/y",
	"Bz":     "magneticField/z",
	"Br":     "magneticField/r",
	"Btheta": "magneticField/theta",
	"Ex":     "electricField/x",
	"Ey":     "electricField/y",
	"Ez":     "electricField/z",
	"Er":     "electricField/r",
	"Etheta": "electricField/theta",
}

// aliasFromComponent is the inverse of componentFromAlias.
var aliasFromComponent = func() map[string]string {
	m := make(map[string]string, len(componentFromAlias))
	for alias, comp := range componentFromAlias {
		m[comp] = alias
	}
	return m
}()

// CanonicalComponent resolves a canonical path or registered alias to
// the canonical component path. The bool is false for unknown keys.
func CanonicalComponent(key string) (string, bool) {
	if _, ok := canonicalComponents[key]; ok {
		return key, true
	}
	if comp, ok := componentFromAlias[key]; ok {
		return comp, true
	}
	return "", false
}

// ComponentAlias returns the registered short name for a canonical
// component path ("magneticField/x" -> "Bx").
func ComponentAlias(component string) (string, bool) {
	alias, ok := aliasFromComponent[component]
	return alias, ok
}

// RecordOf returns the field record family of a canonical component
// path ("magneticField/x" -> "magneticField").
func RecordOf(component string) string {
	if i := strings.IndexByte(component, '/'); i >= 0 {
		return component[:i]
	}
	return component
}
