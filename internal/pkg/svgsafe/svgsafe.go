package svgsafe

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Admin-supplied icon markup is stored verbatim and later injected into
// pages, so everything outside a small allowlist is rejected up front.

var allowedTags = map[string]bool{
	"svg": true, "g": true, "path": true, "circle": true, "ellipse": true,
	"rect": true, "line": true, "polyline": true, "polygon": true,
	"defs": true, "lineargradient": true, "radialgradient": true,
	"stop": true, "title": true, "desc": true,
}

var allowedAttrs = map[string]bool{
	"xmlns": true, "viewbox": true, "width": true, "height": true,
	"d": true, "fill": true, "stroke": true, "stroke-width": true,
	"stroke-linecap": true, "stroke-linejoin": true, "stroke-miterlimit": true,
	"fill-rule": true, "clip-rule": true, "opacity": true, "fill-opacity": true,
	"stroke-opacity": true, "transform": true, "cx": true, "cy": true,
	"r": true, "rx": true, "ry": true, "x": true, "y": true,
	"x1": true, "y1": true, "x2": true, "y2": true, "points": true,
	"offset": true, "stop-color": true, "stop-opacity": true, "id": true,
	"class": true, "gradientunits": true, "gradienttransform": true,
}

// Check validates admin-supplied SVG markup against the tag/attribute
// allowlist. Empty input is fine; anything else must be well-formed XML
// consisting only of allowlisted elements.
func Check(markup string) error {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	dec := xml.NewDecoder(strings.NewReader(markup))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("malformed svg: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		name := strings.ToLower(start.Name.Local)
		if !allowedTags[name] {
			return fmt.Errorf("svg element not allowed: %s", name)
		}

		for _, attr := range start.Attr {
			attrName := strings.ToLower(attr.Name.Local)
			if strings.HasPrefix(attrName, "on") {
				return fmt.Errorf("svg event handler not allowed: %s", attrName)
			}
			if !allowedAttrs[attrName] {
				return fmt.Errorf("svg attribute not allowed: %s", attrName)
			}
			if strings.Contains(strings.ToLower(attr.Value), "javascript:") {
				return fmt.Errorf("svg attribute value not allowed: %s", attrName)
			}
		}
	}
}
