// Package common keeps enums shared between configuration and commands.
package common

//go:generate go tool go-enum --marshal --names

// Specification of requested output type for rendered selectors.
// ENUM(text, json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
