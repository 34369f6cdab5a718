package component

import "github.com/mitchellh/mapstructure"

// mapstructureDecode decodes a generic map into a typed struct, the same
// way every components/transform/*_node.go Init in the teacher decodes a
// node's Configuration with maps.Map2Struct.
func mapstructureDecode(m map[string]any, out any) error {
	return mapstructure.Decode(m, out)
}
