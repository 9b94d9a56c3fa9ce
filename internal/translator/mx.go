package translator

import (
	"github.com/beevik/etree"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

const isoNamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// mxRenderer carries the shared document scaffolding for XML targets.
type mxRenderer struct {
	t *Translator
}

// newDocument opens a namespaced ISO 20022 Document envelope.
func (r mxRenderer) newDocument(key string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Document")
	root.CreateAttr("xmlns", isoNamespacePrefix+key+".001.08")

	return doc, root
}

func (r mxRenderer) serialize(doc *etree.Document) ([]byte, error) {
	doc.Indent(4)

	return doc.WriteToBytes()
}

func setText(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)

	return el
}

func setOptional(parent *etree.Element, tag string, v *string) {
	if v != nil && *v != "" {
		setText(parent, tag, *v)
	}
}

// agent renders an InstgAgt/InstdAgt financial institution block.
func agent(parent *etree.Element, tag, bic string) {
	setText(parent.CreateElement(tag).CreateElement("FinInstnId"), "BICFI", bic)
}

func mxValue(v *string, def string) string {
	if s := common.Value(v); s != "" {
		return s
	}

	return def
}

// pacs008Renderer renders an FI-to-FI customer credit transfer.
type pacs008Renderer struct {
	mxRenderer
}

func (r pacs008Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	doc, root := r.newDocument("pacs.008")
	body := root.CreateElement("FIToFICstmrCdtTrf")

	msgID := mxValue(base.MessageID, "NONREF")
	grpHdr := body.CreateElement("GrpHdr")
	setText(grpHdr, "MsgId", msgID)
	agent(grpHdr, "InstgAgt", mxValue(base.SenderBIC, "UNKNOWN"))
	agent(grpHdr, "InstdAgt", mxValue(base.ReceiverBIC, "UNKNOWN"))

	tx := body.CreateElement("CdtTrfTxInf")
	pmtID := tx.CreateElement("PmtId")
	setText(pmtID, "EndToEndId", mxValue(base.EndToEndID, msgID))
	setText(pmtID, "UETR", r.t.ensureUETR(base))

	amt := setText(tx, "IntrBkSttlmAmt", mxValue(base.Amount, "0.00"))
	amt.CreateAttr("Ccy", mxValue(base.Currency, "USD"))

	party(tx, "Dbtr", mxValue(base.DebtorName, "UNKNOWN"), base.DebtorAddress)
	if base.DebtorAccount != nil && *base.DebtorAccount != "" {
		setText(tx.CreateElement("DbtrAcct").CreateElement("Id"), "IBAN", *base.DebtorAccount)
	}
	party(tx, "Cdtr", mxValue(base.CreditorName, "UNKNOWN"), base.CreditorAddress)
	if base.CreditorAccount != nil && *base.CreditorAccount != "" {
		setText(tx.CreateElement("CdtrAcct").CreateElement("Id"), "IBAN", *base.CreditorAccount)
	}

	return r.serialize(doc)
}

// party renders a Dbtr/Cdtr block with its optional postal address.
func party(parent *etree.Element, tag, name string, addr *models.PostalAddress) {
	el := parent.CreateElement(tag)
	setText(el, "Nm", name)
	if addr.Empty() {
		return
	}

	pstl := el.CreateElement("PstlAdr")
	setOptional(pstl, "StrtNm", addr.StreetName)
	setOptional(pstl, "BldgNb", addr.BuildingNumber)
	setOptional(pstl, "PstCd", addr.PostCode)
	setOptional(pstl, "TwnNm", addr.TownName)
	setOptional(pstl, "Ctry", addr.Country)
	for _, line := range addr.AddressLines {
		setText(pstl, "AdrLine", line)
	}
}

// pacs009Renderer renders a financial institution credit transfer; parties
// are institutions, so names become BICs.
type pacs009Renderer struct {
	mxRenderer
}

func (r pacs009Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	doc, root := r.newDocument("pacs.009")
	body := root.CreateElement("FICdtTrf")

	msgID := mxValue(base.MessageID, "NONREF")
	grpHdr := body.CreateElement("GrpHdr")
	setText(grpHdr, "MsgId", msgID)
	if v, ok := msg.(*models.Pacs009Message); ok && v.SettlementMethod != nil {
		setText(grpHdr.CreateElement("SttlmInf"), "SttlmMtd", *v.SettlementMethod)
	}
	agent(grpHdr, "InstgAgt", mxValue(base.SenderBIC, "UNKNOWN"))
	agent(grpHdr, "InstdAgt", mxValue(base.ReceiverBIC, "UNKNOWN"))

	tx := body.CreateElement("CdtTrfTxInf")
	pmtID := tx.CreateElement("PmtId")
	setText(pmtID, "EndToEndId", mxValue(base.EndToEndID, msgID))
	setText(pmtID, "UETR", r.t.ensureUETR(base))

	amt := setText(tx, "IntrBkSttlmAmt", mxValue(base.Amount, "0.00"))
	amt.CreateAttr("Ccy", mxValue(base.Currency, "USD"))

	setText(tx.CreateElement("Dbtr"), "BICFI", mxValue(base.SenderBIC, "UNKNOWN"))
	setText(tx.CreateElement("Cdtr"), "BICFI", mxValue(base.ReceiverBIC, "UNKNOWN"))

	return r.serialize(doc)
}

// camtReportRenderer renders the bank-to-customer report, statement and
// notification families, which share one envelope shape apart from the
// container element.
type camtReportRenderer struct {
	mxRenderer
	key string
}

func (r camtReportRenderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	doc, root := r.newDocument(r.key)

	var bodyTag, containerTag string
	switch r.key {
	case "camt.052":
		bodyTag, containerTag = "BkToCstmrAcctRpt", "Rpt"
	case "camt.054":
		bodyTag, containerTag = "BkToCstmrDbtCdtNtfctn", "Ntfctn"
	default:
		bodyTag, containerTag = "BkToCstmrStmt", "Stmt"
	}
	body := root.CreateElement(bodyTag)

	msgID := mxValue(base.MessageID, "NONREF")
	setText(body.CreateElement("GrpHdr"), "MsgId", msgID)

	container := body.CreateElement(containerTag)
	setText(container, "Id", msgID)

	acct := container.CreateElement("Acct")
	setText(acct.CreateElement("Id").CreateElement("Othr"), "Id", accountID(msg))
	setOptional(acct, "Ccy", base.Currency)

	if carrier, ok := msg.(models.BalanceCarrier); ok {
		for _, bal := range carrier.BalanceList() {
			el := container.CreateElement("Bal")
			if v := bal.Get("type"); v != nil {
				setText(el.CreateElement("Tp").CreateElement("CdOrPrtry"), "Cd", *v)
			}
			amt := setText(el, "Amt", orDefault(bal.Get("amount"), "0.00"))
			amt.CreateAttr("Ccy", orDefault(bal.Get("currency"), mxValue(base.Currency, "USD")))
			setText(el, "CdtDbtInd", orDefault(bal.Get("credit_debit_indicator"), "CRDT"))
			if v := bal.Get("date"); v != nil {
				setText(el.CreateElement("Dt"), "Dt", *v)
			}
		}
	}

	if carrier, ok := msg.(models.EntryCarrier); ok {
		for _, entry := range carrier.EntryList() {
			el := container.CreateElement("Ntry")
			amt := setText(el, "Amt", orDefault(entry.Get("amount"), "0.00"))
			amt.CreateAttr("Ccy", orDefault(entry.Get("currency"), mxValue(base.Currency, "USD")))
			setText(el, "CdtDbtInd", orDefault(entry.Get("credit_debit_indicator"), "CRDT"))
			if v := entry.Get("reference"); v != nil {
				setText(el, "NtryRef", *v)
			}
			if v := entry.Get("remittance"); v != nil {
				setText(el.CreateElement("NtryDtls").CreateElement("TxDtls").CreateElement("RmtInf"), "Ustrd", *v)
			}
		}
	}

	return r.serialize(doc)
}

// camt004Renderer renders a return-account response envelope.
type camt004Renderer struct {
	mxRenderer
}

func (r camt004Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	doc, root := r.newDocument("camt.004")
	body := root.CreateElement("RtrAcct")

	setText(body.CreateElement("MsgHdr"), "MsgId", mxValue(base.MessageID, "NONREF"))

	rpt := body.CreateElement("RptOrErr").CreateElement("AcctRpt")
	setText(rpt.CreateElement("AcctId").CreateElement("Othr"), "Id", accountID(msg))

	if v, ok := msg.(*models.Camt004Message); ok {
		acct := rpt.CreateElement("AcctOrErr").CreateElement("Acct")
		setOptional(acct, "Ccy", v.AccountCurrency)
		setOptional(acct, "Sts", v.AccountStatus)
		for _, bal := range v.Balances {
			el := acct.CreateElement("MulBal")
			setOptional(el, "Amt", bal.Get("amount"))
			setOptional(el, "Tp", bal.Get("type"))
			setOptional(el, "CdtDbtInd", bal.Get("credit_debit_indicator"))
		}
	}

	return r.serialize(doc)
}
