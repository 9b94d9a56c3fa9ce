package translator

import (
	"fmt"
	"strings"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

const placeholderBIC = "XXXXXXXXXXXX"

// mtRenderer carries the shared block builders for every MT target.
type mtRenderer struct {
	t *Translator
}

// padBIC widens a BIC to the 12-character logical terminal address used in
// MT headers.
func padBIC(bic *string) string {
	v := common.Value(bic)
	if v == "" {
		v = placeholderBIC
	}
	if len(v) < 12 {
		v += strings.Repeat("X", 12-len(v))
	}

	return v[:12]
}

// header renders Blocks 1-3. Block 3 always carries a UETR so generated
// messages are trackable end to end.
func (r mtRenderer) header(base *models.PaymentMessage, mtType string) string {
	sender := padBIC(base.SenderBIC)
	receiver := padBIC(base.ReceiverBIC)
	uetr := r.t.ensureUETR(base)

	return fmt.Sprintf("{1:F01%s0000000000}{2:I%s%sN}{3:{121:%s}}", sender, mtType, receiver, uetr)
}

// field32A renders the value date, currency and comma-decimal amount.
func (r mtRenderer) field32A(base *models.PaymentMessage) string {
	date := r.t.now().Format("060102")
	curr := common.Value(base.Currency)
	if curr == "" {
		curr = "USD"
	}
	amt := common.Value(base.Amount)
	if amt == "" {
		amt = "0.00"
	}

	return date + curr + strings.ReplaceAll(amt, ".", ",")
}

func mtAccountLine(account *string, fallback string) string {
	if v := common.Value(account); v != "" {
		return "/" + v
	}

	return "/" + fallback
}

func mtName(name *string) string {
	if v := common.Value(name); v != "" {
		return v
	}

	return "N/A"
}

func mtRef(ref *string) string {
	if v := common.Value(ref); v != "" {
		return v
	}

	return "NONREF"
}

// mt103Renderer renders a single customer credit transfer.
type mt103Renderer struct {
	mtRenderer
}

func (r mt103Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	var b strings.Builder
	b.WriteString(r.header(base, "103"))
	b.WriteString("{4:\n")
	fmt.Fprintf(&b, ":20:%s\n", mtRef(base.MessageID))
	b.WriteString(":23B:CRED\n")
	fmt.Fprintf(&b, ":32A:%s\n", r.field32A(base))
	fmt.Fprintf(&b, ":50K:%s\n%s\n", mtAccountLine(base.DebtorAccount, padBIC(base.SenderBIC)), mtName(base.DebtorName))
	fmt.Fprintf(&b, ":59:%s\n%s\n", mtAccountLine(base.CreditorAccount, padBIC(base.ReceiverBIC)), mtName(base.CreditorName))
	b.WriteString("-}")

	return []byte(b.String()), nil
}

// mt202Renderer renders a bank-to-bank transfer; no customer-level fields.
type mt202Renderer struct {
	mtRenderer
}

func (r mt202Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	var b strings.Builder
	b.WriteString(r.header(base, "202"))
	b.WriteString("{4:\n")
	fmt.Fprintf(&b, ":20:%s\n", mtRef(base.MessageID))
	fmt.Fprintf(&b, ":21:%s\n", mtRef(base.EndToEndID))
	fmt.Fprintf(&b, ":32A:%s\n", r.field32A(base))
	fmt.Fprintf(&b, ":52A:%s\n", padBIC(base.SenderBIC))
	fmt.Fprintf(&b, ":58A:%s\n%s\n", mtAccountLine(base.CreditorAccount, padBIC(base.ReceiverBIC)), mtName(base.CreditorName))
	b.WriteString("-}")

	return []byte(b.String()), nil
}

// mt101Renderer renders a request for transfer with one :21:/:32B:/:59:
// sequence per payment-information entry.
type mt101Renderer struct {
	mtRenderer
}

func (r mt101Renderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	var b strings.Builder
	b.WriteString(r.header(base, "101"))
	b.WriteString("{4:\n")
	fmt.Fprintf(&b, ":20:%s\n", mtRef(base.MessageID))
	fmt.Fprintf(&b, ":21R:%s\n", mtRef(base.EndToEndID))
	b.WriteString(":28D:1/1\n")
	fmt.Fprintf(&b, ":50H:%s\n%s\n", mtAccountLine(base.DebtorAccount, padBIC(base.SenderBIC)), r.orderingParty(msg))
	fmt.Fprintf(&b, ":30:%s\n", r.t.now().Format("060102"))

	txs := r.transactions(msg)
	for _, tx := range txs {
		fmt.Fprintf(&b, ":21:%s\n", orDefault(tx.Get("end_to_end_id"), "NONREF"))
		curr := orDefault(tx.Get("currency"), orDefault(base.Currency, "USD"))
		amt := orDefault(tx.Get("amount"), orDefault(base.Amount, "0.00"))
		fmt.Fprintf(&b, ":32B:%s%s\n", curr, strings.ReplaceAll(amt, ".", ","))
		fmt.Fprintf(&b, ":59:%s\n%s\n",
			mtAccountLine(tx.Get("creditor_account"), padBIC(base.ReceiverBIC)),
			orDefault(tx.Get("creditor_name"), mtName(base.CreditorName)))
	}
	b.WriteString("-}")

	return []byte(b.String()), nil
}

func (r mt101Renderer) orderingParty(msg models.Message) string {
	if init, ok := msg.(*models.Pain001Message); ok && init.InitiatingParty != nil {
		return *init.InitiatingParty
	}

	return mtName(msg.Base().DebtorName)
}

// transactions prefers the record's payment-information list and falls back
// to a single synthetic entry built from base fields.
func (r mt101Renderer) transactions(msg models.Message) []models.Detail {
	if carrier, ok := msg.(models.TransactionCarrier); ok {
		if txs := carrier.TransactionList(); len(txs) > 0 {
			return txs
		}
	}
	base := msg.Base()
	tx := models.Detail{}
	if base.EndToEndID != nil {
		tx["end_to_end_id"] = *base.EndToEndID
	}

	return []models.Detail{tx}
}

// mtConfirmationRenderer renders MT900 debit and MT910 credit confirmations.
type mtConfirmationRenderer struct {
	mtRenderer
	mtType string
}

func (r mtConfirmationRenderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	var b strings.Builder
	b.WriteString(r.header(base, r.mtType))
	b.WriteString("{4:\n")
	fmt.Fprintf(&b, ":20:%s\n", mtRef(base.MessageID))
	fmt.Fprintf(&b, ":21:%s\n", mtRef(base.EndToEndID))
	fmt.Fprintf(&b, ":25:%s\n", accountID(msg))
	fmt.Fprintf(&b, ":32A:%s\n", r.field32A(base))
	b.WriteString("-}")

	return []byte(b.String()), nil
}

// mtStatementRenderer renders MT940/942/950, iterating statement entries
// into :61: lines. MT950 omits the :86: remittance line.
type mtStatementRenderer struct {
	mtRenderer
	mtType     string
	remittance bool
}

func (r mtStatementRenderer) Render(msg models.Message) ([]byte, error) {
	base := msg.Base()
	date := r.t.now().Format("060102")
	curr := common.Value(base.Currency)
	if curr == "" {
		curr = "USD"
	}

	var b strings.Builder
	b.WriteString(r.header(base, r.mtType))
	b.WriteString("{4:\n")
	fmt.Fprintf(&b, ":20:%s\n", mtRef(base.MessageID))
	fmt.Fprintf(&b, ":25:%s\n", accountID(msg))
	b.WriteString(":28C:1/1\n")
	fmt.Fprintf(&b, ":60F:%s\n", r.balanceLine(msg, "OPBD", date, curr))

	if carrier, ok := msg.(models.EntryCarrier); ok {
		for _, entry := range carrier.EntryList() {
			mark := "D"
			if entry["credit_debit_indicator"] == "CRDT" {
				mark = "C"
			}
			amt := strings.ReplaceAll(orDefault(entry.Get("amount"), "0.00"), ".", ",")
			valDate := orDefault(entry.Get("value_date"), date)
			ref := orDefault(entry.Get("reference"), "NONREF")
			fmt.Fprintf(&b, ":61:%s%s%sNTRF%s\n", valDate, mark, amt, ref)
			if r.remittance {
				if rem := entry.Get("remittance"); rem != nil {
					fmt.Fprintf(&b, ":86:%s\n", *rem)
				}
			}
		}
	}

	fmt.Fprintf(&b, ":62F:%s\n", r.balanceLine(msg, "CLBD", date, curr))
	b.WriteString("-}")

	return []byte(b.String()), nil
}

// balanceLine reuses the record's balance list when it carries one of the
// requested type, defaulting to a zero balance.
func (r mtStatementRenderer) balanceLine(msg models.Message, balType, date, curr string) string {
	if carrier, ok := msg.(models.BalanceCarrier); ok {
		for _, bal := range carrier.BalanceList() {
			if bal["type"] != balType {
				continue
			}
			mark := "C"
			if bal["credit_debit_indicator"] == "DBIT" {
				mark = "D"
			}
			return mark + orDefault(bal.Get("date"), date) +
				orDefault(bal.Get("currency"), curr) +
				strings.ReplaceAll(orDefault(bal.Get("amount"), "0.00"), ".", ",")
		}
	}

	return "C" + date + curr + "0,00"
}

// accountID pulls the statement account from the camt variants that carry
// one, falling back to the debtor account.
func accountID(msg models.Message) string {
	var id *string
	switch m := msg.(type) {
	case *models.Camt052Message:
		id = m.AccountID
	case *models.Camt053Message:
		id = m.AccountID
	case *models.Camt054Message:
		id = m.AccountID
	case *models.Camt004Message:
		id = m.AccountID
	default:
		id = msg.Base().DebtorAccount
	}

	return orDefault(id, "NOTPROVIDED")
}

func orDefault(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}

	return def
}
