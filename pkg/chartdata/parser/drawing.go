// Package parser reads chart series from xlsx workbooks and writes them back.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// emuPerPixel is the number of EMUs per pixel at 96 DPI (914400 EMU per inch).
const emuPerPixel = 9525

// opcPackage reads parts and their relationships out of an xlsx package.
type opcPackage struct {
	files map[string]*zip.File
}

func newOPCPackage(r *zip.Reader) *opcPackage {
	p := &opcPackage{files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		p.files[f.Name] = f
	}
	return p
}

// part returns the content of a part, or nil when the package lacks it.
func (p *opcPackage) part(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decode unmarshals a part into v and reports whether the part exists.
func (p *opcPackage) decode(name string, v any) (bool, error) {
	data, err := p.part(name)
	if err != nil || data == nil {
		return false, err
	}
	return true, xml.Unmarshal(data, v)
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// rels returns the relationship targets of a part whose type ends in kind,
// keyed by id and resolved to package paths.
func (p *opcPackage) rels(part, kind string) (map[string]string, error) {
	var doc struct {
		Relationships []relationship `xml:"Relationship"`
	}
	if ok, err := p.decode(relsPathFor(part), &doc); !ok || err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, r := range doc.Relationships {
		if strings.HasSuffix(strings.ToLower(r.Type), "/"+kind) {
			result[r.ID] = resolveTarget(part, r.Target)
		}
	}
	return result, nil
}

// sheetParts maps sheet names to their worksheet part paths.
func (p *opcPackage) sheetParts() (map[string]string, error) {
	var wb struct {
		Sheets []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"id,attr"`
		} `xml:"sheets>sheet"`
	}
	ok, err := p.decode("xl/workbook.xml", &wb)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("xl/workbook.xml missing")
	}

	targets, err := p.rels("xl/workbook.xml", "worksheet")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, s := range wb.Sheets {
		if target, ok := targets[s.RID]; ok {
			result[s.Name] = target
		}
	}
	return result, nil
}

// chartFrame is a graphic frame of a drawing part that holds a chart.
type chartFrame struct {
	Props struct {
		Name string `xml:"name,attr"`
	} `xml:"nvGraphicFramePr>cNvPr"`
	Ext struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"xfrm>ext"`
	Chart struct {
		RID string `xml:"id,attr"`
	} `xml:"graphic>graphicData>chart"`
}

// chartFrames returns the chart frames of a drawing part in anchor order,
// including frames nested in group shapes.
func (p *opcPackage) chartFrames(drawing string) ([]chartFrame, error) {
	data, err := p.part(drawing)
	if err != nil || data == nil {
		return nil, err
	}

	var frames []chartFrame
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "graphicFrame" {
			continue
		}
		var fr chartFrame
		if err := decoder.DecodeElement(&fr, &se); err != nil {
			return frames, err
		}
		if fr.Chart.RID != "" {
			frames = append(frames, fr)
		}
	}
}

// relsPathFor returns the relationships part of a package part,
// e.g. xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPathFor(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// resolveTarget resolves a relationship target against the directory of the
// part that declares it.
func resolveTarget(part, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(part), target)
}

// readElementText collects the character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	for depth := 1; depth > 0; {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
