// Package validator runs structural and business-rule checks over wire
// messages and typed records. Validation is a pure function producing a
// ValidationReport; data-quality problems never raise.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/openpurse/go-openpurse/internal/models"
)

var (
	// bank code, country, location, optional branch (ISO 9362)
	bicRe = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

	ibanShapeRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
	currencyRe  = regexp.MustCompile(`^[A-Z]{3}$`)

	ibanCleaner = strings.NewReplacer(" ", "", "-", "", ".", "")
)

// Validate runs business-rule checks over a typed record: BIC format on
// sender and receiver, UETR syntax, currency shape and IBAN checksums,
// recursing into nested transaction lists. Absent fields are never errors.
func Validate(msg models.Message) models.ValidationReport {
	base := msg.Base()
	var errs []string

	if e := checkBIC(base.SenderBIC); e != "" {
		errs = append(errs, "[Sender] "+e)
	}
	if e := checkBIC(base.ReceiverBIC); e != "" {
		errs = append(errs, "[Receiver] "+e)
	}
	if e := checkUETR(base.UETR); e != "" {
		errs = append(errs, e)
	}
	if e := checkCurrency(base.Currency); e != "" {
		errs = append(errs, e)
	}
	if e := checkIBAN(base.DebtorAccount); e != "" {
		errs = append(errs, "[Debtor Account] "+e)
	}
	if e := checkIBAN(base.CreditorAccount); e != "" {
		errs = append(errs, "[Creditor Account] "+e)
	}

	if carrier, ok := msg.(models.TransactionCarrier); ok {
		for i, tx := range carrier.TransactionList() {
			if e := checkIBAN(tx.Get("debtor_account")); e != "" {
				errs = append(errs, fmt.Sprintf("[Transaction %d Debtor Account] %s", i, e))
			}
			if e := checkIBAN(tx.Get("creditor_account")); e != "" {
				errs = append(errs, fmt.Sprintf("[Transaction %d Creditor Account] %s", i, e))
			}
		}
	}

	return models.ValidationReport{Valid: len(errs) == 0, Errors: errs}
}

// checkBIC validates ISO 9362 formatting, 8 or 11 characters.
func checkBIC(bic *string) string {
	if bic == nil {
		return ""
	}
	clean := strings.TrimSpace(*bic)
	if clean == "" {
		return ""
	}
	if !bicRe.MatchString(clean) {
		return fmt.Sprintf("Invalid BIC format: '%s'. Must securely match ISO 9362 standard 8 or 11 characters.", clean)
	}

	return ""
}

// checkUETR requires a syntactically valid version-4 RFC 4122 UUID.
func checkUETR(uetr *string) string {
	if uetr == nil || *uetr == "" {
		return ""
	}
	v := strings.TrimSpace(*uetr)
	id, err := uuid.Parse(v)
	if err != nil || len(v) != 36 || id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return fmt.Sprintf("Invalid UETR format: '%s'. Must be a valid version-4 UUID.", v)
	}

	return ""
}

// checkCurrency enforces the 3-letter ISO 4217 shape. A present-but-blank
// currency is an error; an absent one is not.
func checkCurrency(ccy *string) string {
	if ccy == nil {
		return ""
	}
	if !currencyRe.MatchString(strings.TrimSpace(*ccy)) {
		return fmt.Sprintf("Invalid currency code: '%s'. Must be exactly 3 alphabetic characters.", *ccy)
	}

	return ""
}

// checkIBAN verifies the Modulo-97 checksum. Values not shaped like an IBAN
// after cleaning (domestic BBANs, internal account ids) are skipped, not
// flagged.
func checkIBAN(iban *string) string {
	if iban == nil {
		return ""
	}
	clean := strings.ToUpper(ibanCleaner.Replace(strings.TrimSpace(*iban)))
	if clean == "" || !ibanShapeRe.MatchString(clean) {
		return ""
	}

	// move the first four characters to the end, then A=10 ... Z=35
	rearranged := clean[4:] + clean[:4]
	mod := 0
	for _, ch := range rearranged {
		switch {
		case ch >= '0' && ch <= '9':
			mod = (mod*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			n := int(ch-'A') + 10
			mod = (mod*100 + n) % 97
		default:
			return fmt.Sprintf("Invalid IBAN structure: '%s'. Could not evaluate checksum.", clean)
		}
	}
	if mod != 1 {
		return fmt.Sprintf("Invalid IBAN checksum: '%s'. Failed international Modulo-97 algorithm.", clean)
	}

	return ""
}
