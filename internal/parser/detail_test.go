package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpurse/go-openpurse/internal/models"
)

func TestParseDetailedPacs008(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
  <FIToFICstmrCdtTrf>
    <GrpHdr>
      <MsgId>BATCH-1</MsgId>
      <NbOfTxs>2</NbOfTxs>
      <TtlIntrBkSttlmAmt Ccy="EUR">300.00</TtlIntrBkSttlmAmt>
      <SttlmInf>
        <SttlmMtd>CLRG</SttlmMtd>
        <ClrSys><Cd>TGT</Cd></ClrSys>
      </SttlmInf>
    </GrpHdr>
    <CdtTrfTxInf>
      <PmtId><InstrId>I-1</InstrId><EndToEndId>TX-1</EndToEndId></PmtId>
      <IntrBkSttlmAmt Ccy="EUR">100.00</IntrBkSttlmAmt>
      <Dbtr><Nm>Alice</Nm></Dbtr>
      <Cdtr><Nm>Bob</Nm></Cdtr>
      <CdtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></CdtrAcct>
    </CdtTrfTxInf>
    <CdtTrfTxInf>
      <PmtId><EndToEndId>TX-2</EndToEndId></PmtId>
      <IntrBkSttlmAmt Ccy="EUR">200.00</IntrBkSttlmAmt>
      <DbtrAcct><Id><Othr><Id>555001</Id></Othr></Id></DbtrAcct>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	typed, ok := msg.(*models.Pacs008Message)
	require.True(t, ok)

	require.NotNil(t, typed.SettlementMethod)
	assert.Equal(t, "CLRG", *typed.SettlementMethod)
	require.NotNil(t, typed.ClearingSystem)
	assert.Equal(t, "TGT", *typed.ClearingSystem)
	require.NotNil(t, typed.NumberOfTransactions)
	assert.Equal(t, 2, *typed.NumberOfTransactions)
	require.NotNil(t, typed.SettlementAmount)
	assert.Equal(t, "300.00", *typed.SettlementAmount)
	require.NotNil(t, typed.SettlementCurrency)
	assert.Equal(t, "EUR", *typed.SettlementCurrency)

	require.Len(t, typed.Transactions, 2)
	first := typed.Transactions[0]
	assert.Equal(t, "I-1", first["instruction_id"])
	assert.Equal(t, "TX-1", first["end_to_end_id"])
	assert.Equal(t, "100.00", first["amount"])
	assert.Equal(t, "EUR", first["currency"])
	assert.Equal(t, "Alice", first["debtor_name"])
	assert.Equal(t, "Bob", first["creditor_name"])
	assert.Equal(t, "DE89370400440532013000", first["creditor_account"])

	second := typed.Transactions[1]
	assert.Equal(t, "TX-2", second["end_to_end_id"])
	assert.Equal(t, "555001", second["debtor_account"])
	_, hasInstr := second["instruction_id"]
	assert.False(t, hasInstr)
}

func TestParseDetailedCamt053(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08">
  <BkToCstmrStmt>
    <GrpHdr><MsgId>STMT-XML-1</MsgId><CreDtTm>2025-02-01T00:00:00</CreDtTm></GrpHdr>
    <Stmt>
      <Id>STMT-PAGE-1</Id>
      <Acct>
        <Id><IBAN>GB82WEST12345698765432</IBAN></Id>
        <Ccy>GBP</Ccy>
        <Ownr><Nm>ACME LTD</Nm></Ownr>
        <Svcr><FinInstnId><BICFI>BANKGB2L</BICFI></FinInstnId></Svcr>
      </Acct>
      <TxsSummry>
        <TtlCdtNtries><NbOfNtries>1</NbOfNtries><Sum>500.00</Sum></TtlCdtNtries>
        <TtlDbtNtries><NbOfNtries>1</NbOfNtries><Sum>200.00</Sum></TtlDbtNtries>
      </TxsSummry>
      <Bal>
        <Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="GBP">1000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt><Dt>2025-02-01</Dt></Dt>
      </Bal>
      <Ntry>
        <NtryRef>ENTRY-1</NtryRef>
        <Amt Ccy="GBP">500.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Sts><Cd>BOOK</Cd></Sts>
        <BookgDt><Dt>2025-02-01</Dt></BookgDt>
        <ValDt><Dt>2025-02-02</Dt></ValDt>
        <NtryDtls><TxDtls>
          <Refs><EndToEndId>E2E-IN</EndToEndId></Refs>
          <RmtInf><Ustrd>SALARY</Ustrd></RmtInf>
        </TxDtls></NtryDtls>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	stmt, ok := msg.(*models.Camt053Message)
	require.True(t, ok)

	require.NotNil(t, stmt.StatementID)
	assert.Equal(t, "STMT-PAGE-1", *stmt.StatementID)
	require.NotNil(t, stmt.AccountID)
	assert.Equal(t, "GB82WEST12345698765432", *stmt.AccountID)
	require.NotNil(t, stmt.AccountCurrency)
	assert.Equal(t, "GBP", *stmt.AccountCurrency)
	require.NotNil(t, stmt.AccountOwner)
	assert.Equal(t, "ACME LTD", *stmt.AccountOwner)
	require.NotNil(t, stmt.AccountServicer)
	assert.Equal(t, "BANKGB2L", *stmt.AccountServicer)

	require.NotNil(t, stmt.TotalCreditEntries)
	assert.Equal(t, 1, *stmt.TotalCreditEntries)
	require.NotNil(t, stmt.TotalCreditAmount)
	assert.Equal(t, "500.00", *stmt.TotalCreditAmount)
	require.NotNil(t, stmt.TotalDebitAmount)
	assert.Equal(t, "200.00", *stmt.TotalDebitAmount)

	require.Len(t, stmt.Balances, 1)
	assert.Equal(t, "OPBD", stmt.Balances[0]["type"])
	assert.Equal(t, "1000.00", stmt.Balances[0]["amount"])
	assert.Equal(t, "2025-02-01", stmt.Balances[0]["date"])

	require.Len(t, stmt.Entries, 1)
	entry := stmt.Entries[0]
	assert.Equal(t, "500.00", entry["amount"])
	assert.Equal(t, "CRDT", entry["credit_debit_indicator"])
	assert.Equal(t, "BOOK", entry["status"])
	assert.Equal(t, "2025-02-01", entry["booking_date"])
	assert.Equal(t, "2025-02-02", entry["value_date"])
	assert.Equal(t, "ENTRY-1", entry["reference"])
	assert.Equal(t, "SALARY", entry["remittance"])
	assert.Equal(t, "E2E-IN", entry["end_to_end_id"])
}

func TestParseDetailedPacs004(t *testing.T) {
	raw := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.004.001.09">
  <PmtRtr>
    <GrpHdr><MsgId>RTR-1</MsgId><CreDtTm>2025-03-01T12:00:00</CreDtTm></GrpHdr>
    <OrgnlGrpInf>
      <OrgnlMsgId>MSGID-001</OrgnlMsgId>
      <OrgnlMsgNmId>pacs.008.001.08</OrgnlMsgNmId>
    </OrgnlGrpInf>
    <TxInf>
      <RtrId>R-1</RtrId>
      <OrgnlEndToEndId>E2E-001</OrgnlEndToEndId>
      <OrgnlUETR>eb6305c9-1f7f-49de-aed0-16487c27b42d</OrgnlUETR>
      <RtrdIntrBkSttlmAmt Ccy="EUR">1500.00</RtrdIntrBkSttlmAmt>
      <RtrRsnInf><Rsn><Cd>AC04</Cd></Rsn></RtrRsnInf>
    </TxInf>
  </PmtRtr>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	rtr, ok := msg.(*models.Pacs004Message)
	require.True(t, ok)

	require.NotNil(t, rtr.OriginalMessageID)
	assert.Equal(t, "MSGID-001", *rtr.OriginalMessageID)
	require.NotNil(t, rtr.OriginalMessageNameID)
	assert.Equal(t, "pacs.008.001.08", *rtr.OriginalMessageNameID)

	require.Len(t, rtr.Transactions, 1)
	tx := rtr.Transactions[0]
	assert.Equal(t, "R-1", tx["return_id"])
	assert.Equal(t, "E2E-001", tx["original_end_to_end_id"])
	assert.Equal(t, "eb6305c9-1f7f-49de-aed0-16487c27b42d", tx["original_uetr"])
	assert.Equal(t, "1500.00", tx["returned_amount"])
	assert.Equal(t, "EUR", tx["returned_currency"])
	assert.Equal(t, "AC04", tx["return_reason"])

	// the return references its original through the carrier interface
	carrier, ok := msg.(models.OriginalMessageCarrier)
	require.True(t, ok)
	require.NotNil(t, carrier.OriginalMessageRef())
	assert.Equal(t, "MSGID-001", *carrier.OriginalMessageRef())
}

func TestParseDetailedPain001(t *testing.T) {
	raw := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.09">
  <CstmrCdtTrfInitn>
    <GrpHdr>
      <MsgId>INIT-1</MsgId>
      <CreDtTm>2025-04-01T08:00:00</CreDtTm>
      <NbOfTxs>2</NbOfTxs>
      <CtrlSum>150.50</CtrlSum>
      <InitgPty><Nm>ACME CORP</Nm></InitgPty>
    </GrpHdr>
    <PmtInf>
      <PmtInfId>PMT-1</PmtInfId>
      <Dbtr><Nm>ACME CORP</Nm></Dbtr>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>SAL-1</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="USD">100.00</InstdAmt></Amt>
        <Cdtr><Nm>Alice</Nm></Cdtr>
        <CdtrAcct><Id><IBAN>GB82WEST12345698765432</IBAN></Id></CdtrAcct>
      </CdtTrfTxInf>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>SAL-2</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="USD">50.50</InstdAmt></Amt>
        <Cdtr><Nm>Bob</Nm></Cdtr>
      </CdtTrfTxInf>
    </PmtInf>
  </CstmrCdtTrfInitn>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	init, ok := msg.(*models.Pain001Message)
	require.True(t, ok)

	require.NotNil(t, init.CreationDateTime)
	assert.Equal(t, "2025-04-01T08:00:00", *init.CreationDateTime)
	require.NotNil(t, init.NumberOfTransactions)
	assert.Equal(t, 2, *init.NumberOfTransactions)
	require.NotNil(t, init.ControlSum)
	assert.Equal(t, "150.50", *init.ControlSum)
	require.NotNil(t, init.InitiatingParty)
	assert.Equal(t, "ACME CORP", *init.InitiatingParty)

	require.Len(t, init.PaymentInformation, 2)
	assert.Equal(t, "PMT-1", init.PaymentInformation[0]["payment_information_id"])
	assert.Equal(t, "SAL-1", init.PaymentInformation[0]["end_to_end_id"])
	assert.Equal(t, "ACME CORP", init.PaymentInformation[0]["debtor_name"])
	assert.Equal(t, "100.00", init.PaymentInformation[0]["amount"])
	assert.Equal(t, "USD", init.PaymentInformation[0]["currency"])
	assert.Equal(t, "Alice", init.PaymentInformation[0]["creditor_name"])
	assert.Equal(t, "GB82WEST12345698765432", init.PaymentInformation[0]["creditor_account"])
	assert.Equal(t, "SAL-2", init.PaymentInformation[1]["end_to_end_id"])
}

func TestParseDetailedInvestigationPair(t *testing.T) {
	recall := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.056.001.08">
  <FIToFICstmrCdtTrfRcl>
    <Assgnmt><Id>ASSGN-1</Id><CreDtTm>2025-05-01T09:00:00</CreDtTm></Assgnmt>
    <Case><Id>CASE-42</Id></Case>
    <Undrlyg>
      <OrgnlGrpInf><OrgnlMsgId>MSGID-001</OrgnlMsgId></OrgnlGrpInf>
      <OrgnlEndToEndId>E2E-001</OrgnlEndToEndId>
      <OrgnlUETR>eb6305c9-1f7f-49de-aed0-16487c27b42d</OrgnlUETR>
      <OrgnlIntrBkSttlmAmt Ccy="EUR">1500.00</OrgnlIntrBkSttlmAmt>
      <CxlRsnInf><Rsn><Cd>DUPL</Cd></Rsn></CxlRsnInf>
    </Undrlyg>
  </FIToFICstmrCdtTrfRcl>
</Document>`

	msg := New([]byte(recall)).ParseDetailed()
	rcl, ok := msg.(*models.Camt056Message)
	require.True(t, ok)

	require.NotNil(t, rcl.AssignmentID)
	assert.Equal(t, "ASSGN-1", *rcl.AssignmentID)
	require.NotNil(t, rcl.CaseID)
	assert.Equal(t, "CASE-42", *rcl.CaseID)
	require.NotNil(t, rcl.OriginalMessageID)
	assert.Equal(t, "MSGID-001", *rcl.OriginalMessageID)
	require.NotNil(t, rcl.RecallReason)
	assert.Equal(t, "DUPL", *rcl.RecallReason)

	require.Len(t, rcl.UnderlyingTransactions, 1)
	assert.Equal(t, "E2E-001", rcl.UnderlyingTransactions[0]["original_end_to_end_id"])
	assert.Equal(t, "1500.00", rcl.UnderlyingTransactions[0]["original_amount"])

	resolution := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.029.001.09">
  <RsltnOfInvstgtn>
    <Assgnmt><Id>ASSGN-2</Id></Assgnmt>
    <RslvdCase><Id>CASE-42</Id></RslvdCase>
    <Sts><Conf>CNCL</Conf></Sts>
    <CxlDtls>
      <OrgnlEndToEndId>E2E-001</OrgnlEndToEndId>
      <TxCxlSts>ACCR</TxCxlSts>
    </CxlDtls>
  </RsltnOfInvstgtn>
</Document>`

	msg = New([]byte(resolution)).ParseDetailed()
	res, ok := msg.(*models.Camt029Message)
	require.True(t, ok)
	require.NotNil(t, res.InvestigationStatus)
	assert.Equal(t, "CNCL", *res.InvestigationStatus)
	require.Len(t, res.CancellationDetails, 1)
	assert.Equal(t, "ACCR", res.CancellationDetails[0]["cancellation_status"])
}

func TestParseDetailedFxtr014(t *testing.T) {
	raw := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:fxtr.014.001.04">
  <FXTradInstr>
    <TradInf><TradDt>2025-06-01</TradDt></TradInf>
    <TradgSdId><SubmitgPty><AnyBIC><AnyBIC>BANKUS33</AnyBIC></AnyBIC></SubmitgPty></TradgSdId>
    <CtrPtySdId><SubmitgPty><AnyBIC><AnyBIC>BANKGB2L</AnyBIC></AnyBIC></SubmitgPty></CtrPtySdId>
    <TradAmts>
      <TradgSdBuyAmt><Amt Ccy="USD">1000000.00</Amt></TradgSdBuyAmt>
      <SttlmDt>2025-06-03</SttlmDt>
    </TradAmts>
    <AgrdRate><XchgRate>1.0845</XchgRate></AgrdRate>
  </FXTradInstr>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	fx, ok := msg.(*models.Fxtr014Message)
	require.True(t, ok)

	require.NotNil(t, fx.TradeDate)
	assert.Equal(t, "2025-06-01", *fx.TradeDate)
	require.NotNil(t, fx.SettlementDate)
	assert.Equal(t, "2025-06-03", *fx.SettlementDate)
	require.NotNil(t, fx.ExchangeRate)
	assert.Equal(t, "1.0845", *fx.ExchangeRate)
	require.NotNil(t, fx.TradingParty)
	assert.Equal(t, "BANKUS33", *fx.TradingParty)
	require.NotNil(t, fx.Counterparty)
	assert.Equal(t, "BANKGB2L", *fx.Counterparty)
	require.NotNil(t, fx.TradedAmount)
	assert.Equal(t, "1000000.00", *fx.TradedAmount)
	require.NotNil(t, fx.TradedCurrency)
	assert.Equal(t, "USD", *fx.TradedCurrency)
}

func TestParseDetailedSese023(t *testing.T) {
	raw := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:sese.023.001.09">
  <SctiesSttlmTxInstr>
    <TradDtls>
      <TradDt><Dt><Dt>2025-07-01</Dt></Dt></TradDt>
      <SttlmDt><Dt><Dt>2025-07-03</Dt></Dt></SttlmDt>
    </TradDtls>
    <FinInstrmId><ISIN>US0378331005</ISIN></FinInstrmId>
    <QtyAndAcctDtls>
      <SttlmQty><Qty><Unit>100</Unit></Qty></SttlmQty>
    </QtyAndAcctDtls>
    <SttlmAmt><Amt Ccy="USD">17500.00</Amt></SttlmAmt>
    <DlvrgSttlmPties><Pty1><Id><AnyBIC>CUSTUS33</AnyBIC></Id></Pty1></DlvrgSttlmPties>
    <RcvgSttlmPties><Pty1><Id><AnyBIC>CUSTGB2L</AnyBIC></Id></Pty1></RcvgSttlmPties>
  </SctiesSttlmTxInstr>
</Document>`

	msg := New([]byte(raw)).ParseDetailed()
	stl, ok := msg.(*models.Sese023Message)
	require.True(t, ok)

	require.NotNil(t, stl.TradeDate)
	assert.Equal(t, "2025-07-01", *stl.TradeDate)
	require.NotNil(t, stl.SecurityID)
	assert.Equal(t, "US0378331005", *stl.SecurityID)
	require.NotNil(t, stl.SecurityIDType)
	assert.Equal(t, "ISIN", *stl.SecurityIDType)
	require.NotNil(t, stl.SecurityQuantity)
	assert.Equal(t, "100", *stl.SecurityQuantity)
	require.NotNil(t, stl.SecurityQuantityType)
	assert.Equal(t, "Unit", *stl.SecurityQuantityType)
	require.NotNil(t, stl.SettlementAmount)
	assert.Equal(t, "17500.00", *stl.SettlementAmount)
	require.NotNil(t, stl.DeliveringAgent)
	assert.Equal(t, "CUSTUS33", *stl.DeliveringAgent)
	require.NotNil(t, stl.ReceivingAgent)
	assert.Equal(t, "CUSTGB2L", *stl.ReceivingAgent)
}
