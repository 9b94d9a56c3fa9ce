package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

var (
	mtBlock1Re = regexp.MustCompile(`\{1:[A-Z]\d{2}([A-Z0-9]{8,14})\d{10}\}`)
	mtBlock2Re = regexp.MustCompile(`\{2:[IO](\d{3})([A-Z0-9]{11,12})`)
	mtBlock3Re = regexp.MustCompile(`\{121:([0-9a-fA-F-]{36})\}`)
	mtTagRe    = regexp.MustCompile(`(?m)^:(\d{2}[A-Z]?):`)

	mt32ARe = regexp.MustCompile(`^(\d{6})([A-Z]{3})([0-9,.]+)`)
	mt32BRe = regexp.MustCompile(`^([A-Z]{3})([0-9,.]+)`)
	mt61Re  = regexp.MustCompile(`^(\d{6})(\d{4})?([A-Z]{1,2})([0-9,]+)[A-Z]([A-Z]{3})(.*)`)
	mtBalRe = regexp.MustCompile(`^([CD])(\d{6})([A-Z]{3})([0-9,]+)`)
)

// mtField is one Block 4 tag with its raw (possibly multi-line) value.
// Order matters: repeating sequences in MT101 and statement entries in
// MT94x/MT950 are reconstructed from adjacency.
type mtField struct {
	tag   string
	value string
}

// parseMT turns a raw SWIFT FIN message into the typed record matching its
// message type. Statements (940/942/950) map to camt reports, MT101 to a
// pain.001 initiation, everything else to the credit-transfer record.
func parseMT(raw string) models.Message {
	base := models.PaymentMessage{}
	msgType := ""

	if m := mtBlock1Re.FindStringSubmatch(raw); m != nil {
		base.SenderBIC = common.Ptr(m[1])
	}
	if m := mtBlock2Re.FindStringSubmatch(raw); m != nil {
		msgType = m[1]
		base.ReceiverBIC = common.Ptr(m[2])
	}
	if m := mtBlock3Re.FindStringSubmatch(raw); m != nil {
		base.UETR = common.Ptr(strings.ToLower(m[1]))
	}

	fields := scanBlock4(raw)
	for _, f := range fields {
		switch f.tag {
		case "20":
			if base.MessageID == nil {
				base.MessageID = common.PtrNonEmpty(firstLine(f.value))
			}
		case "32A":
			if m := mt32ARe.FindStringSubmatch(firstLine(f.value)); m != nil && validMTDate(m[1]) {
				base.Currency = common.Ptr(m[2])
				base.Amount = common.Ptr(mtAmount(m[3]))
			}
		case "32B":
			if base.Amount == nil {
				if m := mt32BRe.FindStringSubmatch(firstLine(f.value)); m != nil {
					base.Currency = common.Ptr(m[1])
					base.Amount = common.Ptr(mtAmount(m[2]))
				}
			}
		case "50K", "50H", "50F", "50A":
			acct, name := splitPartyBlock(f.value)
			base.DebtorAccount = acct
			base.DebtorName = name
		case "59", "58A", "59A":
			acct, name := splitPartyBlock(f.value)
			base.CreditorAccount = acct
			base.CreditorName = name
		}
	}

	switch msgType {
	case "942":
		msg := &models.Camt052Message{PaymentMessage: base}
		msg.AccountID = tagValue(fields, "25")
		msg.ReportID = base.MessageID
		msg.Entries = statementEntries(fields)
		return msg
	case "940", "950":
		msg := &models.Camt053Message{PaymentMessage: base}
		msg.AccountID = tagValue(fields, "25")
		msg.StatementID = base.MessageID
		msg.Entries = statementEntries(fields)
		msg.Balances = statementBalances(fields)
		return msg
	case "101":
		msg := &models.Pain001Message{PaymentMessage: base}
		if v := tagValue(fields, "50H"); v != nil {
			_, name := splitPartyBlock(*v)
			msg.InitiatingParty = name
		}
		msg.PaymentInformation = mt101Transactions(fields)
		if n := len(msg.PaymentInformation); n > 0 {
			msg.NumberOfTransactions = common.Ptr(n)
		}
		return msg
	default:
		return &models.Pacs008Message{PaymentMessage: base}
	}
}

// scanBlock4 slices the text block into ordered tag/value pairs. A missing
// closing "-}" truncates the block at end of input instead of failing.
func scanBlock4(raw string) []mtField {
	start := strings.Index(raw, "{4:")
	if start < 0 {
		return nil
	}
	body := raw[start+len("{4:"):]
	if end := strings.LastIndex(body, "-}"); end >= 0 {
		body = body[:end]
	}

	locs := mtTagRe.FindAllStringSubmatchIndex(body, -1)
	fields := make([]mtField, 0, len(locs))
	for i, loc := range locs {
		valEnd := len(body)
		if i+1 < len(locs) {
			valEnd = locs[i+1][0]
		}
		fields = append(fields, mtField{
			tag:   body[loc[2]:loc[3]],
			value: strings.Trim(body[loc[1]:valEnd], "\r\n"),
		})
	}

	return fields
}

func tagValue(fields []mtField, tag string) *string {
	for _, f := range fields {
		if f.tag == tag {
			return common.PtrNonEmpty(strings.TrimSpace(f.value))
		}
	}

	return nil
}

// splitPartyBlock separates an account line ("/12345678") from the name and
// address lines that follow it in fields 50x/58x/59x.
func splitPartyBlock(value string) (account, name *string) {
	var nameLines []string
	for i, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 && strings.HasPrefix(line, "/") {
			account = common.PtrNonEmpty(strings.TrimPrefix(line, "/"))
			continue
		}
		nameLines = append(nameLines, line)
	}
	if len(nameLines) > 0 {
		name = common.Ptr(strings.Join(nameLines, " "))
	}

	return account, name
}

// statementEntries builds camt-style entry details from :61: lines, folding
// a following :86: into the entry's remittance.
func statementEntries(fields []mtField) []models.Detail {
	var entries []models.Detail
	for _, f := range fields {
		switch f.tag {
		case "61":
			m := mt61Re.FindStringSubmatch(firstLine(f.value))
			if m == nil {
				continue
			}
			entry := models.Detail{
				"value_date":             m[1],
				"credit_debit_indicator": creditDebit(m[3]),
				"amount":                 mtAmount(m[4]),
			}
			if ref := strings.TrimSpace(m[6]); ref != "" {
				entry["reference"] = ref
			}
			entries = append(entries, entry)
		case "86":
			if len(entries) > 0 {
				entries[len(entries)-1]["remittance"] = strings.TrimSpace(f.value)
			}
		}
	}

	return entries
}

// statementBalances maps :60F:/:62F:/:64: opening, closing and available
// balance lines to camt balance details.
func statementBalances(fields []mtField) []models.Detail {
	types := map[string]string{"60F": "OPBD", "62F": "CLBD", "64": "CLAV"}
	var balances []models.Detail
	for _, f := range fields {
		code, ok := types[f.tag]
		if !ok {
			continue
		}
		m := mtBalRe.FindStringSubmatch(firstLine(f.value))
		if m == nil {
			continue
		}
		balances = append(balances, models.Detail{
			"type":                   code,
			"credit_debit_indicator": creditDebit(m[1]),
			"date":                   m[2],
			"currency":               m[3],
			"amount":                 mtAmount(m[4]),
		})
	}

	return balances
}

// mt101Transactions reconstructs the repeating :21:/:32B:/:59: sequence of
// an MT101 into pain.001 payment information details.
func mt101Transactions(fields []mtField) []models.Detail {
	var txs []models.Detail
	var current models.Detail
	for _, f := range fields {
		switch f.tag {
		case "21":
			current = models.Detail{"end_to_end_id": strings.TrimSpace(firstLine(f.value))}
			txs = append(txs, current)
		case "32B":
			if current == nil {
				continue
			}
			if m := mt32BRe.FindStringSubmatch(firstLine(f.value)); m != nil {
				current["currency"] = m[1]
				current["amount"] = mtAmount(m[2])
			}
		case "59", "59A":
			if current == nil {
				continue
			}
			acct, name := splitPartyBlock(f.value)
			if acct != nil {
				current["creditor_account"] = *acct
			}
			if name != nil {
				current["creditor_name"] = *name
			}
		}
	}

	return txs
}

// creditDebit maps a :61: debit/credit mark to the ISO indicator. Reversal
// marks follow the sign of what they reverse back to.
func creditDebit(mark string) string {
	if mark == "RC" || strings.HasPrefix(mark, "C") {
		return "CRDT"
	}

	return "DBIT"
}

// mtAmount converts the SWIFT decimal comma to a period.
func mtAmount(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

func validMTDate(yymmdd string) bool {
	_, err := time.Parse("060102", yymmdd)
	return err == nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}
