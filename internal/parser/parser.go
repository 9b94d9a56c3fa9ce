// Package parser flattens ISO 20022 XML and legacy SWIFT MT messages into
// the unified record model. Parsing never fails: unreadable input yields an
// empty record and absent elements yield nil fields.
package parser

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/openpurse/go-openpurse/internal/models"
)

var familyRe = regexp.MustCompile(`(pacs|camt|pain|acmt|setr|fxtr|sese)\.(\d{3})`)

// rootFamilies maps well-known message root elements to their family for
// documents served without a namespace.
var rootFamilies = map[string]string{
	"FIToFICstmrCdtTrf":      "pacs.008",
	"FICdtTrf":               "pacs.009",
	"PmtRtr":                 "pacs.004",
	"FIToFIPmtStsRpt":        "pacs.002",
	"BkToCstmrAcctRpt":       "camt.052",
	"BkToCstmrStmt":          "camt.053",
	"BkToCstmrDbtCdtNtfctn":  "camt.054",
	"RtrAcct":                "camt.004",
	"FIToFICstmrCdtTrfRcl":   "camt.056",
	"RsltnOfInvstgtn":        "camt.029",
	"BkSrvcsBllgStmt":        "camt.086",
	"CstmrCdtTrfInitn":       "pain.001",
	"CstmrPmtStsRpt":         "pain.002",
	"CstmrDrctDbtInitn":      "pain.008",
	"AcctOpngReq":            "acmt.007",
	"AcctExcldMndtMntncReq":  "acmt.015",
	"RedOrdr":                "setr.004",
	"SbcptOrdr":              "setr.010",
	"FXTradInstr":            "fxtr.014",
	"SctiesSttlmTxInstr":     "sese.023",
}

// Parser reads one wire message, sniffing the format from the payload.
// Construct with New, then call Parse, ParseDetailed or Flatten.
type Parser struct {
	raw []byte

	mt  bool
	doc *etree.Element // message Document (nil when XML failed to load)

	// routing merged from a Business Application Header, when present
	hdrSender   *string
	hdrReceiver *string
	hdrMsgID    *string
}

// New wraps raw message bytes. Malformed input is accepted; parsing will
// simply produce an empty record.
func New(data []byte) *Parser {
	p := &Parser{raw: data}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{1:")) || bytes.HasPrefix(trimmed, []byte("{4:")) {
		p.mt = true
		return p
	}

	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charsetReader
	if err := tree.ReadFromBytes(data); err != nil || tree.Root() == nil {
		return p
	}
	p.unwrap(tree.Root())

	return p
}

// FromElement wraps an already-materialized XML element, letting streaming
// callers reuse the extraction paths on document fragments.
func FromElement(el *etree.Element) *Parser {
	return &Parser{doc: el}
}

// unwrap resolves the message Document, peeling off a BusMsg/AppHdr
// envelope and keeping its routing fields for merging.
func (p *Parser) unwrap(root *etree.Element) {
	switch root.Tag {
	case "BusMsg":
		if hdr := childFirst(root, "AppHdr"); hdr != nil {
			p.readHeader(hdr)
		}
		p.doc = childFirst(root, "Document")
	case "AppHdr":
		p.readHeader(root)
	default:
		p.doc = root
	}
}

func (p *Parser) readHeader(hdr *etree.Element) {
	p.hdrSender = childText(hdr, "Fr/FIId/FinInstnId/BICFI|Fr/OrgId/AnyBIC")
	p.hdrReceiver = childText(hdr, "To/FIId/FinInstnId/BICFI|To/OrgId/AnyBIC")
	p.hdrMsgID = childText(hdr, "BizMsgIdr")
}

// Parse extracts the unified base record. MT messages come back as the
// typed record for their message type; XML messages come back as the plain
// record (use ParseDetailed for the typed variants).
func (p *Parser) Parse() models.Message {
	if p.mt {
		return parseMT(string(p.raw))
	}

	base := p.baseRecord()
	return &base
}

// ParseDetailed extracts the typed record for the detected message family,
// falling back to the base record for unknown families.
func (p *Parser) ParseDetailed() models.Message {
	if p.mt {
		return parseMT(string(p.raw))
	}

	base := p.baseRecord()
	msg := p.detailed(base)
	if msg == nil {
		return &base
	}

	return msg
}

// Flatten returns the base record as a flat snake_case map. Every standard
// key is present; a nil value means the field was absent from the source.
func (p *Parser) Flatten() map[string]*string {
	base := p.Parse().Base()

	return map[string]*string{
		"message_id":       base.MessageID,
		"end_to_end_id":    base.EndToEndID,
		"amount":           base.Amount,
		"currency":         base.Currency,
		"sender_bic":       base.SenderBIC,
		"receiver_bic":     base.ReceiverBIC,
		"debtor_name":      base.DebtorName,
		"creditor_name":    base.CreditorName,
		"debtor_account":   base.DebtorAccount,
		"creditor_account": base.CreditorAccount,
		"uetr":             base.UETR,
	}
}

// Family reports the detected ISO 20022 family key ("pacs.008", ...), or ""
// for MT input and unrecognized documents.
func (p *Parser) Family() string {
	if p.mt || p.doc == nil {
		return ""
	}

	ns := p.doc.SelectAttrValue("xmlns", "")
	if m := familyRe.FindStringSubmatch(ns); m != nil {
		return m[1] + "." + m[2]
	}
	// prefixed declarations (xmlns:doc="...") carry the family too
	for _, attr := range p.doc.Attr {
		if attr.Space != "xmlns" {
			continue
		}
		if m := familyRe.FindStringSubmatch(attr.Value); m != nil {
			return m[1] + "." + m[2]
		}
	}
	for _, child := range p.doc.ChildElements() {
		if fam, ok := rootFamilies[child.Tag]; ok {
			return fam
		}
	}

	return ""
}

// baseRecord runs the generic extraction paths shared by every XML family.
func (p *Parser) baseRecord() models.PaymentMessage {
	base := models.PaymentMessage{
		SenderBIC:   p.hdrSender,
		ReceiverBIC: p.hdrReceiver,
		MessageID:   p.hdrMsgID,
	}
	if p.doc == nil {
		return base
	}

	if id := findText(p.doc, "GrpHdr/MsgId|MsgId/Id|MsgId"); id != nil {
		base.MessageID = id
	}
	base.EndToEndID = findText(p.doc, "EndToEndId|OrgnlEndToEndId")
	if v := findText(p.doc, "UETR|OrgnlUETR"); v != nil {
		base.UETR = v
	}

	amount, currency := firstMonetary(p.doc)
	base.Amount = amount
	base.Currency = currency

	if v := findText(p.doc, "InstgAgt/FinInstnId/BICFI|InstgAgt/FinInstnId/BIC|DbtrAgt/FinInstnId/BICFI|DbtrAgt/FinInstnId/BIC"); v != nil {
		base.SenderBIC = v
	}
	if v := findText(p.doc, "InstdAgt/FinInstnId/BICFI|InstdAgt/FinInstnId/BIC|CdtrAgt/FinInstnId/BICFI|CdtrAgt/FinInstnId/BIC"); v != nil {
		base.ReceiverBIC = v
	}

	base.DebtorName = findText(p.doc, "Dbtr/Nm")
	base.CreditorName = findText(p.doc, "Cdtr/Nm")
	base.DebtorAccount = findText(p.doc, "DbtrAcct/Id/IBAN|DbtrAcct/Id/Othr/Id")
	base.CreditorAccount = findText(p.doc, "CdtrAcct/Id/IBAN|CdtrAcct/Id/Othr/Id")
	base.DebtorAddress = postalAddress(findFirst(p.doc, "Dbtr/PstlAdr"))
	base.CreditorAddress = postalAddress(findFirst(p.doc, "Cdtr/PstlAdr"))

	return base
}

// postalAddress maps a PstlAdr element to the standardized address, or nil
// when every sub-field is blank.
func postalAddress(el *etree.Element) *models.PostalAddress {
	if el == nil {
		return nil
	}

	addr := &models.PostalAddress{
		Country:        childText(el, "Ctry"),
		TownName:       childText(el, "TwnNm"),
		PostCode:       childText(el, "PstCd"),
		StreetName:     childText(el, "StrtNm"),
		BuildingNumber: childText(el, "BldgNb"),
	}
	for _, line := range walkChildren(el, []string{"AdrLine"}) {
		if v := strings.TrimSpace(line.Text()); v != "" {
			addr.AddressLines = append(addr.AddressLines, v)
		}
	}
	if addr.Empty() {
		return nil
	}

	return addr
}

// charsetReader accepts the ISO-8859-1 declarations still common in legacy
// gateways. Anything else is assumed UTF-8 compatible.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "latin1", "windows-1252":
		return latin1Reader{r: input}, nil
	}

	return input, nil
}

// latin1Reader transcodes ISO-8859-1 bytes to UTF-8. Each input byte maps
// to the code point of the same value, so no table is needed.
type latin1Reader struct {
	r io.Reader
}

func (l latin1Reader) Read(p []byte) (int, error) {
	buf := make([]byte, len(p)/2)
	n, err := l.r.Read(buf)
	written := 0
	for _, b := range buf[:n] {
		written += utf8.EncodeRune(p[written:], rune(b))
	}

	return written, err
}
