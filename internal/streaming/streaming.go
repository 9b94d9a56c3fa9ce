// Package streaming iterates over the repeating transaction and entry
// blocks of large ISO 20022 batch files without materializing the whole
// document tree.
package streaming

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/beevik/etree"

	"github.com/openpurse/go-openpurse/internal/models"
	"github.com/openpurse/go-openpurse/internal/parser"
)

// interestingTags are the elements that represent one transaction or entry
// in the common batch schemas.
var interestingTags = map[string]struct{}{
	"CdtTrfTxInf": {}, // pacs.008, pacs.009, pain.001
	"Ntry":        {}, // camt.052, camt.053, camt.054
	"TxInf":       {}, // pacs.004
}

// StreamingParser reads one XML source and emits one record per repeating
// block. The token scan keeps only the current block in memory.
type StreamingParser struct {
	r io.Reader
}

func New(r io.Reader) *StreamingParser {
	return &StreamingParser{r: r}
}

// Messages emits one base record per transaction or entry block, closing
// the channel at end of input or on malformed XML. Cancelling the context
// stops the scan.
func (s *StreamingParser) Messages(ctx context.Context) <-chan models.Message {
	out := make(chan models.Message)
	go func() {
		defer close(out)

		dec := xml.NewDecoder(s.r)
		for {
			tok, err := dec.Token()
			if err != nil {
				return
			}
			start, ok := tok.(xml.StartElement)
			if !ok {
				continue
			}
			if _, ok := interestingTags[start.Name.Local]; !ok {
				continue
			}

			var node fragment
			if err := dec.DecodeElement(&node, &start); err != nil {
				return
			}

			msg := parser.FromElement(node.element()).Parse()
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains the stream into a slice.
func (s *StreamingParser) Collect(ctx context.Context) []models.Message {
	var msgs []models.Message
	for msg := range s.Messages(ctx) {
		msgs = append(msgs, msg)
	}

	return msgs
}

// fragment is a generic XML subtree captured by the token decoder.
type fragment struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []fragment `xml:",any"`
}

// element converts the captured subtree into the DOM shape the extraction
// paths operate on.
func (f fragment) element() *etree.Element {
	el := etree.NewElement(f.XMLName.Local)
	for _, attr := range f.Attrs {
		if attr.Name.Local == "xmlns" && attr.Name.Space == "" {
			continue
		}
		el.CreateAttr(attr.Name.Local, attr.Value)
	}
	if len(f.Nodes) == 0 {
		el.SetText(f.Content)
	}
	for _, child := range f.Nodes {
		el.AddChild(child.element())
	}

	return el
}
