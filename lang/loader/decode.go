package loader

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/ipp22/ippvm/internal/ippvm"
)

// rawInstruction and rawArg are the loader's untyped view of one <instruction>
// and one <argN> element, before opcode/argument-kind validation.
type rawInstruction struct {
	order  string
	opcode string
	args   []rawArg
}

type rawArg struct {
	tag     string
	typ     string
	content string
}

type rawDoc struct {
	instructions []rawInstruction
}

// decode walks the XML token stream by hand, rather than declaratively via
// xml.Unmarshal, so that stray or misnamed elements are reported as
// structural errors instead of being silently ignored (encoding/xml ignores
// any child that no struct field claims).
func decode(r io.Reader) (*rawDoc, error) {
	dec := xml.NewDecoder(r)

	root, err := nextStart(dec)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "program" {
		return nil, ippvm.XMLStructuref("root element must be <program>, found <%s>", root.Name.Local)
	}
	if lang := attr(root, "language"); lang != "IPPcode22" {
		return nil, ippvm.XMLStructuref("unsupported program language: %q", lang)
	}

	doc := &rawDoc{}
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, ippvm.Wrap(ippvm.XMLFormatErr, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			instr, err := decodeInstruction(dec, t)
			if err != nil {
				return nil, err
			}
			doc.instructions = append(doc.instructions, instr)
		case xml.EndElement:
			if t.Name.Local == "program" {
				return doc, nil
			}
		}
	}
	return doc, nil
}

func decodeInstruction(dec *xml.Decoder, start xml.StartElement) (rawInstruction, error) {
	if start.Name.Local != "instruction" {
		return rawInstruction{}, ippvm.XMLStructuref("expected <instruction>, found <%s>", start.Name.Local)
	}
	instr := rawInstruction{
		order:  attr(start, "order"),
		opcode: attr(start, "opcode"),
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return rawInstruction{}, ippvm.Wrap(ippvm.XMLFormatErr, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			arg, err := decodeArg(dec, t)
			if err != nil {
				return rawInstruction{}, err
			}
			instr.args = append(instr.args, arg)
		case xml.EndElement:
			if t.Name.Local == "instruction" {
				return instr, nil
			}
		}
	}
}

func decodeArg(dec *xml.Decoder, start xml.StartElement) (rawArg, error) {
	arg := rawArg{
		tag: start.Name.Local,
		typ: attr(start, "type"),
	}
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return rawArg{}, ippvm.Wrap(ippvm.XMLFormatErr, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				arg.content = strings.TrimSpace(sb.String())
				return arg, nil
			}
			depth--
		}
	}
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, ippvm.XMLFormatf("empty document")
			}
			return xml.StartElement{}, ippvm.Wrap(ippvm.XMLFormatErr, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
