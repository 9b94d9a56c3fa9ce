package parser

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

// detailed dispatches on the detected family and runs its deep extraction.
// A nil return tells the caller to fall back to the base record.
func (p *Parser) detailed(base models.PaymentMessage) models.Message {
	if p.doc == nil {
		return nil
	}

	switch p.Family() {
	case "pacs.008":
		return p.detailPacs008(base)
	case "pacs.009":
		return p.detailPacs009(base)
	case "pacs.004":
		return p.detailPacs004(base)
	case "pacs.002":
		return p.detailPacs002(base)
	case "camt.052":
		return p.detailCamt052(base)
	case "camt.053":
		return p.detailCamt053(base)
	case "camt.054":
		return p.detailCamt054(base)
	case "camt.004":
		return p.detailCamt004(base)
	case "camt.056":
		return p.detailCamt056(base)
	case "camt.029":
		return p.detailCamt029(base)
	case "camt.086":
		return p.detailCamt086(base)
	case "pain.001":
		return p.detailPain001(base)
	case "pain.002":
		return p.detailPain002(base)
	case "pain.008":
		return p.detailPain008(base)
	case "acmt.007":
		return p.detailAcmt(base, "acmt.007")
	case "acmt.015":
		return p.detailAcmt(base, "acmt.015")
	case "setr.004":
		return p.detailSetr(base, "setr.004")
	case "setr.010":
		return p.detailSetr(base, "setr.010")
	case "fxtr.014":
		return p.detailFxtr014(base)
	case "sese.023":
		return p.detailSese023(base)
	}

	return nil
}

func (p *Parser) detailPacs008(base models.PaymentMessage) models.Message {
	msg := &models.Pacs008Message{PaymentMessage: base}
	msg.SettlementMethod = findText(p.doc, "SttlmInf/SttlmMtd")
	msg.ClearingSystem = findText(p.doc, "SttlmInf/ClrSys/Cd|SttlmInf/ClrSys/Prtry")
	msg.NumberOfTransactions = findInt(p.doc, "GrpHdr/NbOfTxs")
	if el := findFirst(p.doc, "TtlIntrBkSttlmAmt"); el != nil {
		msg.SettlementAmount, msg.SettlementCurrency = monetary(el)
	}
	for _, tx := range findAll(p.doc, "CdtTrfTxInf") {
		d := models.Detail{}
		putDetail(d, "instruction_id", childText(tx, "PmtId/InstrId"))
		putDetail(d, "end_to_end_id", childText(tx, "PmtId/EndToEndId"))
		putDetail(d, "uetr", childText(tx, "PmtId/UETR"))
		if el := childFirst(tx, "IntrBkSttlmAmt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "amount", a)
			putDetail(d, "currency", c)
		}
		putDetail(d, "debtor_name", childText(tx, "Dbtr/Nm"))
		putDetail(d, "creditor_name", childText(tx, "Cdtr/Nm"))
		putDetail(d, "debtor_account", childText(tx, "DbtrAcct/Id/IBAN|DbtrAcct/Id/Othr/Id"))
		putDetail(d, "creditor_account", childText(tx, "CdtrAcct/Id/IBAN|CdtrAcct/Id/Othr/Id"))
		msg.Transactions = append(msg.Transactions, d)
	}

	return msg
}

func (p *Parser) detailPacs009(base models.PaymentMessage) models.Message {
	msg := &models.Pacs009Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.SettlementMethod = findText(p.doc, "SttlmInf/SttlmMtd")
	for _, tx := range findAll(p.doc, "CdtTrfTxInf") {
		d := models.Detail{}
		putDetail(d, "instruction_id", childText(tx, "PmtId/InstrId"))
		putDetail(d, "end_to_end_id", childText(tx, "PmtId/EndToEndId"))
		putDetail(d, "transaction_id", childText(tx, "PmtId/TxId"))
		if el := childFirst(tx, "IntrBkSttlmAmt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "amount", a)
			putDetail(d, "currency", c)
		}
		putDetail(d, "debtor", childText(tx, "Dbtr/BICFI|Dbtr/FinInstnId/BICFI|Dbtr/Nm"))
		putDetail(d, "creditor", childText(tx, "Cdtr/BICFI|Cdtr/FinInstnId/BICFI|Cdtr/Nm"))
		msg.Transactions = append(msg.Transactions, d)
	}

	return msg
}

func (p *Parser) detailPacs004(base models.PaymentMessage) models.Message {
	msg := &models.Pacs004Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.OriginalMessageID = findText(p.doc, "OrgnlGrpInf/OrgnlMsgId")
	msg.OriginalMessageNameID = findText(p.doc, "OrgnlGrpInf/OrgnlMsgNmId")
	for _, tx := range findAll(p.doc, "TxInf") {
		d := models.Detail{}
		putDetail(d, "return_id", childText(tx, "RtrId"))
		putDetail(d, "original_end_to_end_id", childText(tx, "OrgnlEndToEndId"))
		putDetail(d, "original_transaction_id", childText(tx, "OrgnlTxId"))
		putDetail(d, "original_uetr", childText(tx, "OrgnlUETR"))
		if el := childFirst(tx, "RtrdIntrBkSttlmAmt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "returned_amount", a)
			putDetail(d, "returned_currency", c)
		}
		putDetail(d, "return_reason", childText(tx, "RtrRsnInf/Rsn/Cd|RtrRsnInf/Rsn/Prtry"))
		msg.Transactions = append(msg.Transactions, d)
	}

	return msg
}

func (p *Parser) detailPacs002(base models.PaymentMessage) models.Message {
	msg := &models.Pacs002Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.OriginalMessageID = findText(p.doc, "OrgnlGrpInfAndSts/OrgnlMsgId|OrgnlGrpInf/OrgnlMsgId")
	msg.OriginalMessageNameID = findText(p.doc, "OrgnlGrpInfAndSts/OrgnlMsgNmId|OrgnlGrpInf/OrgnlMsgNmId")
	msg.GroupStatus = findText(p.doc, "OrgnlGrpInfAndSts/GrpSts")
	for _, tx := range findAll(p.doc, "TxInfAndSts") {
		d := models.Detail{}
		putDetail(d, "status_id", childText(tx, "StsId"))
		putDetail(d, "original_end_to_end_id", childText(tx, "OrgnlEndToEndId"))
		putDetail(d, "original_transaction_id", childText(tx, "OrgnlTxId"))
		putDetail(d, "transaction_status", childText(tx, "TxSts"))
		putDetail(d, "status_reason", childText(tx, "StsRsnInf/Rsn/Cd|StsRsnInf/Rsn/Prtry"))
		msg.TransactionsStatus = append(msg.TransactionsStatus, d)
	}

	return msg
}

func (p *Parser) detailCamt052(base models.PaymentMessage) models.Message {
	msg := &models.Camt052Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.ReportID = findText(p.doc, "Rpt/Id")
	p.fillAccountReport(&msg.AccountID, &msg.AccountCurrency, &msg.AccountOwner, &msg.AccountServicer)
	p.fillSummary(&msg.TotalCreditEntries, &msg.TotalCreditAmount, &msg.TotalDebitEntries, &msg.TotalDebitAmount)
	msg.Entries = p.statementEntriesXML()

	return msg
}

func (p *Parser) detailCamt053(base models.PaymentMessage) models.Message {
	msg := &models.Camt053Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.StatementID = findText(p.doc, "Stmt/Id")
	p.fillAccountReport(&msg.AccountID, &msg.AccountCurrency, &msg.AccountOwner, &msg.AccountServicer)
	p.fillSummary(&msg.TotalCreditEntries, &msg.TotalCreditAmount, &msg.TotalDebitEntries, &msg.TotalDebitAmount)
	for _, bal := range findAll(p.doc, "Bal") {
		d := models.Detail{}
		putDetail(d, "type", childText(bal, "Tp/CdOrPrtry/Cd"))
		if el := childFirst(bal, "Amt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "amount", a)
			putDetail(d, "currency", c)
		}
		putDetail(d, "credit_debit_indicator", childText(bal, "CdtDbtInd"))
		putDetail(d, "date", childText(bal, "Dt/Dt|Dt/DtTm"))
		msg.Balances = append(msg.Balances, d)
	}
	msg.Entries = p.statementEntriesXML()

	return msg
}

func (p *Parser) detailCamt054(base models.PaymentMessage) models.Message {
	msg := &models.Camt054Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.NotificationID = findText(p.doc, "Ntfctn/Id")
	p.fillAccountReport(&msg.AccountID, &msg.AccountCurrency, &msg.AccountOwner, &msg.AccountServicer)
	p.fillSummary(&msg.TotalCreditEntries, &msg.TotalCreditAmount, &msg.TotalDebitEntries, &msg.TotalDebitAmount)
	msg.Entries = p.statementEntriesXML()

	return msg
}

func (p *Parser) detailCamt004(base models.PaymentMessage) models.Message {
	msg := &models.Camt004Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "MsgHdr/CreDtTm|GrpHdr/CreDtTm")
	msg.OriginalBusinessQuery = findText(p.doc, "OrgnlBizQry/MsgId")
	msg.AccountID = findText(p.doc, "AcctId/Othr/Id|AcctId/IBAN|Acct/Id/Othr/Id|Acct/Id/IBAN")
	msg.AccountOwner = findText(p.doc, "Ownr/Id/OrgId/AnyBIC|Ownr/Nm")
	msg.AccountServicer = findText(p.doc, "Svcr/FinInstnId/BICFI")
	msg.AccountStatus = findText(p.doc, "Sts")
	msg.AccountCurrency = findText(p.doc, "Acct/Ccy")
	for _, bal := range findAll(p.doc, "MulBal") {
		d := models.Detail{}
		putDetail(d, "type", childText(bal, "Tp"))
		putDetail(d, "amount", childText(bal, "Amt"))
		putDetail(d, "credit_debit_indicator", childText(bal, "CdtDbtInd"))
		putDetail(d, "status", childText(bal, "Sts"))
		msg.Balances = append(msg.Balances, d)
	}
	for _, lmt := range findAll(p.doc, "CurBilLmt|Lmt") {
		d := models.Detail{}
		putDetail(d, "type", childText(lmt, "Tp/Cd|Tp"))
		putDetail(d, "amount", childText(lmt, "Amt"))
		putDetail(d, "credit_debit_indicator", childText(lmt, "CdtDbtInd"))
		msg.Limits = append(msg.Limits, d)
	}
	msg.NumberOfPayments = findText(p.doc, "NbOfPmts")
	for _, be := range findAll(p.doc, "BizErr|OprlErr") {
		d := models.Detail{}
		putDetail(d, "code", childText(be, "Err/Cd|Err/Prtry"))
		putDetail(d, "description", childText(be, "Desc"))
		msg.BusinessErrors = append(msg.BusinessErrors, d)
	}

	return msg
}

func (p *Parser) detailCamt056(base models.PaymentMessage) models.Message {
	msg := &models.Camt056Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "Assgnmt/CreDtTm|GrpHdr/CreDtTm")
	msg.AssignmentID = findText(p.doc, "Assgnmt/Id")
	msg.CaseID = findText(p.doc, "Case/Id")
	msg.OriginalMessageID = findText(p.doc, "OrgnlGrpInf/OrgnlMsgId")
	msg.OriginalMessageNameID = findText(p.doc, "OrgnlGrpInf/OrgnlMsgNmId")
	msg.RecallReason = findText(p.doc, "CxlRsnInf/Rsn/Cd|CxlRsnInf/Rsn/Prtry")
	for _, u := range findAll(p.doc, "Undrlyg") {
		d := models.Detail{}
		putDetail(d, "original_end_to_end_id", childText(u, "OrgnlEndToEndId"))
		putDetail(d, "original_transaction_id", childText(u, "OrgnlTxId"))
		putDetail(d, "original_uetr", childText(u, "OrgnlUETR"))
		if el := childFirst(u, "OrgnlIntrBkSttlmAmt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "original_amount", a)
			putDetail(d, "original_currency", c)
		}
		msg.UnderlyingTransactions = append(msg.UnderlyingTransactions, d)
	}

	return msg
}

func (p *Parser) detailCamt029(base models.PaymentMessage) models.Message {
	msg := &models.Camt029Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "Assgnmt/CreDtTm|GrpHdr/CreDtTm")
	msg.AssignmentID = findText(p.doc, "Assgnmt/Id")
	msg.CaseID = findText(p.doc, "Case/Id")
	msg.InvestigationStatus = findText(p.doc, "Sts/Conf")
	for _, cd := range findAll(p.doc, "CxlDtls") {
		d := models.Detail{}
		putDetail(d, "original_end_to_end_id", childText(cd, "OrgnlEndToEndId"))
		putDetail(d, "original_uetr", childText(cd, "OrgnlUETR"))
		putDetail(d, "cancellation_status", childText(cd, "TxCxlSts"))
		msg.CancellationDetails = append(msg.CancellationDetails, d)
	}

	return msg
}

func (p *Parser) detailCamt086(base models.PaymentMessage) models.Message {
	msg := &models.Camt086Message{PaymentMessage: base}
	msg.ReportID = findText(p.doc, "RptHdr/RptId")
	msg.GroupID = findText(p.doc, "GrpId")
	msg.StatementID = findText(p.doc, "StmtId")
	msg.CreationDateTime = findText(p.doc, "BllgStmt/CreDtTm")
	msg.StatementStatus = findText(p.doc, "BllgStmt/Sts")
	if msg.MessageID == nil {
		msg.MessageID = msg.ReportID
	}

	return msg
}

func (p *Parser) detailPain001(base models.PaymentMessage) models.Message {
	msg := &models.Pain001Message{PaymentMessage: base}
	p.fillInitiation(&msg.CreationDateTime, &msg.NumberOfTransactions, &msg.ControlSum, &msg.InitiatingParty)
	msg.PaymentInformation = p.paymentInformation()

	return msg
}

func (p *Parser) detailPain008(base models.PaymentMessage) models.Message {
	msg := &models.Pain008Message{PaymentMessage: base}
	p.fillInitiation(&msg.CreationDateTime, &msg.NumberOfTransactions, &msg.ControlSum, &msg.InitiatingParty)
	msg.PaymentInformation = p.paymentInformation()

	return msg
}

func (p *Parser) detailPain002(base models.PaymentMessage) models.Message {
	msg := &models.Pain002Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "GrpHdr/CreDtTm")
	msg.InitiatingParty = findText(p.doc, "InitgPty/Nm")
	msg.OriginalMessageID = findText(p.doc, "OrgnlGrpInfAndSts/OrgnlMsgId")
	msg.OriginalMessageNameID = findText(p.doc, "OrgnlGrpInfAndSts/OrgnlMsgNmId")
	msg.GroupStatus = findText(p.doc, "OrgnlGrpInfAndSts/GrpSts")
	for _, tx := range findAll(p.doc, "TxInfAndSts") {
		d := models.Detail{}
		putDetail(d, "status_id", childText(tx, "StsId"))
		putDetail(d, "original_end_to_end_id", childText(tx, "OrgnlEndToEndId"))
		putDetail(d, "transaction_status", childText(tx, "TxSts"))
		putDetail(d, "status_reason", childText(tx, "StsRsnInf/Rsn/Cd|StsRsnInf/Rsn/Prtry"))
		msg.TransactionsStatus = append(msg.TransactionsStatus, d)
	}

	return msg
}

func (p *Parser) detailAcmt(base models.PaymentMessage, family string) models.Message {
	processID := findText(p.doc, "Refs/PrcId/Id")
	accountID := findText(p.doc, "Acct/Id/Othr/Id|Acct/Id/IBAN")
	accountCcy := findText(p.doc, "Acct/Ccy")
	orgName := findText(p.doc, "Org/FullLglNm/FullLglNm|Org/FullLglNm")
	country := findText(p.doc, "Org/CtryOfOpr")
	servicer := findText(p.doc, "AcctSvcrId/FinInstnId/BICFI")
	branch := findText(p.doc, "AcctSvcrId/BrnchId/Nm")
	if base.MessageID == nil {
		base.MessageID = findText(p.doc, "Refs/MsgId/Id")
	}

	if family == "acmt.015" {
		return &models.Acmt015Message{
			PaymentMessage:   base,
			CreationDateTime: findText(p.doc, "Refs/MsgId/CreDtTm"),
			ProcessID:        processID,
			AccountID:        accountID,
			AccountCurrency:  accountCcy,
			OrganizationName: orgName,
			CountryOfOp:      country,
			ServicerBIC:      servicer,
			BranchName:       branch,
		}
	}

	return &models.Acmt007Message{
		PaymentMessage:   base,
		CreationDateTime: findText(p.doc, "Refs/MsgId/CreDtTm"),
		ProcessID:        processID,
		AccountID:        accountID,
		AccountCurrency:  accountCcy,
		OrganizationName: orgName,
		CountryOfOp:      country,
		ServicerBIC:      servicer,
		BranchName:       branch,
	}
}

func (p *Parser) detailSetr(base models.PaymentMessage, family string) models.Message {
	creation := findText(p.doc, "MsgId/CreDtTm")
	master := findText(p.doc, "MltplOrdrDtls/MstrRef|MstrRef")
	pool := findText(p.doc, "PoolRef/Ref")
	var orders []models.Detail
	for _, o := range findAll(p.doc, "IndvOrdrDtls") {
		d := models.Detail{}
		putDetail(d, "order_reference", childText(o, "OrdrRef"))
		putDetail(d, "investment_account_id", childText(o, "InvstmtAcctDtls/AcctId"))
		putDetail(d, "financial_instrument_id", childText(o, "FinInstrmDtls/Id/ISIN"))
		putDetail(d, "units", childText(o, "OrdrQty/UnitQty"))
		if el := childFirst(o, "OrdrQty/AmtdQty"); el != nil {
			a, c := monetary(el)
			putDetail(d, "amount", a)
			putDetail(d, "currency", c)
		}
		orders = append(orders, d)
	}

	if family == "setr.010" {
		return &models.Setr010Message{
			PaymentMessage:   base,
			CreationDateTime: creation,
			MasterReference:  master,
			PoolReference:    pool,
			Orders:           orders,
		}
	}

	return &models.Setr004Message{
		PaymentMessage:   base,
		CreationDateTime: creation,
		MasterReference:  master,
		PoolReference:    pool,
		Orders:           orders,
	}
}

func (p *Parser) detailFxtr014(base models.PaymentMessage) models.Message {
	msg := &models.Fxtr014Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "CreDtTm")
	msg.TradeDate = findText(p.doc, "TradInf/TradDt|TradDt")
	msg.SettlementDate = findText(p.doc, "TradAmts/SttlmDt|SttlmDt")
	msg.ExchangeRate = findText(p.doc, "AgrdRate/XchgRate|XchgRate")
	msg.TradingParty = findText(p.doc, "TradgSdId/SubmitgPty/AnyBIC/AnyBIC|TradgSdId/SubmitgPty/NmAndAdr/Nm")
	msg.Counterparty = findText(p.doc, "CtrPtySdId/SubmitgPty/AnyBIC/AnyBIC|CtrPtySdId/SubmitgPty/NmAndAdr/Nm")
	if el := findFirst(p.doc, "TradgSdBuyAmt/Amt"); el != nil {
		msg.TradedAmount, msg.TradedCurrency = monetary(el)
	}

	return msg
}

func (p *Parser) detailSese023(base models.PaymentMessage) models.Message {
	msg := &models.Sese023Message{PaymentMessage: base}
	msg.CreationDateTime = findText(p.doc, "CreDtTm")
	msg.TradeDate = findText(p.doc, "TradDt/Dt/Dt|TradDt/Dt/DtTm")
	msg.SettlementDate = findText(p.doc, "SttlmDt/Dt/Dt|SttlmDt/Dt/DtTm")
	msg.SecurityID = findText(p.doc, "FinInstrmId/ISIN")
	if msg.SecurityID != nil {
		msg.SecurityIDType = common.Ptr("ISIN")
	}
	if el := findFirst(p.doc, "SttlmQty/Qty"); el != nil {
		for _, q := range el.ChildElements() {
			if v := common.PtrNonEmpty(strings.TrimSpace(q.Text())); v != nil {
				msg.SecurityQuantity = v
				msg.SecurityQuantityType = common.Ptr(q.Tag)
				break
			}
		}
	}
	if el := findFirst(p.doc, "SttlmAmt/Amt/Amt|SttlmAmt/Amt"); el != nil {
		msg.SettlementAmount, msg.SettlementCurrency = monetary(el)
	}
	msg.DeliveringAgent = findText(p.doc, "DlvrgSttlmPties/Pty1/Id/AnyBIC|DlvrgSttlmPties/Pty1/Id/NmAndAdr/Nm")
	msg.ReceivingAgent = findText(p.doc, "RcvgSttlmPties/Pty1/Id/AnyBIC|RcvgSttlmPties/Pty1/Id/NmAndAdr/Nm")

	return msg
}

// fillAccountReport extracts the account block shared by the camt report
// and statement families.
func (p *Parser) fillAccountReport(id, ccy, owner, svcr **string) {
	*id = findText(p.doc, "Acct/Id/IBAN|Acct/Id/Othr/Id")
	*ccy = findText(p.doc, "Acct/Ccy")
	*owner = findText(p.doc, "Acct/Ownr/Nm|Acct/Ownr/Id/OrgId/AnyBIC")
	*svcr = findText(p.doc, "Acct/Svcr/FinInstnId/BICFI")
}

// fillSummary extracts the TxsSummry credit/debit totals.
func (p *Parser) fillSummary(cdtN **int, cdtSum **string, dbtN **int, dbtSum **string) {
	*cdtN = findInt(p.doc, "TtlCdtNtries/NbOfNtries")
	*cdtSum = findText(p.doc, "TtlCdtNtries/Sum")
	*dbtN = findInt(p.doc, "TtlDbtNtries/NbOfNtries")
	*dbtSum = findText(p.doc, "TtlDbtNtries/Sum")
}

// statementEntriesXML maps Ntry blocks to entry details for the camt
// report, statement and notification families.
func (p *Parser) statementEntriesXML() []models.Detail {
	var entries []models.Detail
	for _, ntry := range findAll(p.doc, "Ntry") {
		d := models.Detail{}
		if el := childFirst(ntry, "Amt"); el != nil {
			a, c := monetary(el)
			putDetail(d, "amount", a)
			putDetail(d, "currency", c)
		}
		putDetail(d, "credit_debit_indicator", childText(ntry, "CdtDbtInd"))
		putDetail(d, "status", childText(ntry, "Sts/Cd|Sts"))
		putDetail(d, "booking_date", childText(ntry, "BookgDt/Dt|BookgDt/DtTm"))
		putDetail(d, "value_date", childText(ntry, "ValDt/Dt|ValDt/DtTm"))
		putDetail(d, "reference", childText(ntry, "NtryRef|AcctSvcrRef"))
		if v := childText(ntry, "NtryDtls/TxDtls/RmtInf/Ustrd"); v != nil {
			putDetail(d, "remittance", v)
		}
		putDetail(d, "end_to_end_id", childText(ntry, "NtryDtls/TxDtls/Refs/EndToEndId"))
		entries = append(entries, d)
	}

	return entries
}

// fillInitiation extracts the pain.001/pain.008 group header.
func (p *Parser) fillInitiation(creation **string, count **int, sum, initiating **string) {
	*creation = findText(p.doc, "GrpHdr/CreDtTm")
	*count = findInt(p.doc, "GrpHdr/NbOfTxs")
	*sum = findText(p.doc, "GrpHdr/CtrlSum")
	*initiating = findText(p.doc, "GrpHdr/InitgPty/Nm|InitgPty/Nm")
}

// paymentInformation maps PmtInf blocks to details, one per individual
// transaction, for the initiation families.
func (p *Parser) paymentInformation() []models.Detail {
	var out []models.Detail
	for _, inf := range findAll(p.doc, "PmtInf") {
		for _, tx := range walkChildren(inf, []string{"CdtTrfTxInf"}) {
			out = append(out, initiationTx(inf, tx))
		}
		for _, tx := range walkChildren(inf, []string{"DrctDbtTxInf"}) {
			out = append(out, initiationTx(inf, tx))
		}
	}

	return out
}

func initiationTx(inf, tx *etree.Element) models.Detail {
	d := models.Detail{}
	putDetail(d, "payment_information_id", childText(inf, "PmtInfId"))
	putDetail(d, "end_to_end_id", childText(tx, "PmtId/EndToEndId"))
	putDetail(d, "debtor_name", childText(inf, "Dbtr/Nm"))
	if el := childFirst(tx, "Amt/InstdAmt|InstdAmt|InstdAmt/Amt"); el != nil {
		a, c := monetary(el)
		putDetail(d, "amount", a)
		putDetail(d, "currency", c)
	}
	putDetail(d, "creditor_name", childText(tx, "Cdtr/Nm"))
	putDetail(d, "creditor_account", childText(tx, "CdtrAcct/Id/IBAN|CdtrAcct/Id/Othr/Id"))

	return d
}

// monetary reads an amount element text plus its Ccy attribute. The
// currency pointer is non-nil whenever the attribute exists, even blank, so
// validation can tell "missing" from "empty".
func monetary(el *etree.Element) (amount, currency *string) {
	amount = common.PtrNonEmpty(strings.TrimSpace(el.Text()))
	if attr := el.SelectAttr("Ccy"); attr != nil {
		v := strings.TrimSpace(attr.Value)
		currency = &v
	}

	return amount, currency
}

func putDetail(d models.Detail, key string, v *string) {
	if v != nil {
		d[key] = *v
	}
}

func findInt(scope *etree.Element, expr string) *int {
	v := findText(scope, expr)
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil {
		return nil
	}

	return &n
}
