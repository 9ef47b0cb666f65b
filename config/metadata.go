package config

import (
	"io"
	"strings"

	"github.com/cellgraph/tracklink/track"
)

// reservedMetadataKeys names the metadata keys with dedicated
// track.Metadata fields; every other key in a parsed file becomes a
// UserDict entry.
var reservedMetadataKeys = map[string]bool{
	"filename":        true,
	"description":     true,
	"pixel_size":      true,
	"pixel_units":     true,
	"image_height":    true,
	"image_width":     true,
	"timestamps":      true,
	"timestamp_units": true,
}

// LoadMetadata parses r the same way LoadLinkerOptions does and fills a
// track.Metadata: recognized keys (filename, description, pixel_size,
// pixel_units, image_height, image_width, timestamps, timestamp_units)
// populate their dedicated fields; every other key becomes a UserDict
// entry keyed by its lower-cased name, per spec.md §4.6's case-insensitive
// user dictionary.
func LoadMetadata(r io.Reader) (track.Metadata, error) {
	raw, err := parse(r)
	if err != nil {
		return track.Metadata{}, err
	}

	var meta track.Metadata
	meta.UserDict = make(map[string]string)

	for key, v := range raw {
		lower := strings.ToLower(key)
		if !reservedMetadataKeys[lower] {
			meta.UserDict[lower] = valueText(v)

			continue
		}

		switch lower {
		case "filename":
			if s, err := v.asString(); err == nil {
				meta.Filename = s
			}
		case "description":
			if s, err := v.asString(); err == nil {
				meta.Description = s
			}
		case "pixel_size":
			if f, err := v.asFloat(); err == nil {
				meta.PixelSize = f
			}
		case "pixel_units":
			if s, err := v.asString(); err == nil {
				meta.PixelUnits = s
			}
		case "image_height":
			if n, err := v.asInt(); err == nil {
				meta.ImageHeight = n
			}
		case "image_width":
			if n, err := v.asInt(); err == nil {
				meta.ImageWidth = n
			}
		case "timestamps":
			if v.kind == vVector {
				meta.Timestamps = v.vector
			}
		case "timestamp_units":
			if s, err := v.asString(); err == nil {
				meta.TimestampUnits = s
			}
		}
	}

	return meta, nil
}

// valueText renders a Value back to its source-level text, for UserDict
// entries (which are always stored as plain strings regardless of the
// literal's original shape).
func valueText(v Value) string {
	switch v.kind {
	case vString:
		return v.str
	case vBool:
		if v.boolean {
			return "true"
		}

		return "false"
	case vVector:
		return vectorText(v.vector)
	default:
		return floatText(v.number)
	}
}
