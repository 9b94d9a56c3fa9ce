package anonymizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pacs008Snippet = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
  <FIToFICstmrCdtTrf>
    <CdtTrfTxInf>
      <Dbtr>
        <Nm>John Doe</Nm>
        <PstlAdr>
          <StrtNm>Avenue Louise</StrtNm>
          <BldgNb>1</BldgNb>
          <PstCd>1000</PstCd>
          <TwnNm>Brussels</TwnNm>
          <Ctry>BE</Ctry>
        </PstlAdr>
      </Dbtr>
      <DbtrAcct><Id><IBAN>BE71096123456769</IBAN></Id></DbtrAcct>
      <Cdtr><Nm>Jane Smith</Nm></Cdtr>
      <CdtrAcct><Id><Othr><Id>555001234</Id></Othr></Id></CdtrAcct>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`

const mt103Snippet = "{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXX0000000000N}{4:\n" +
	":20:REF12345\n" +
	":32A:250101EUR1234,56\n" +
	":50K:/BE71096123456769\nJOHN DOE\nAVENUE LOUISE 1\n" +
	":59:/DE89370400440532013000\nJANE SMITH\n" +
	"-}"

// ibanValid runs the standard rearranged Modulo-97 test.
func ibanValid(iban string) bool {
	if len(iban) < 5 {
		return false
	}

	return mod97(iban[4:]+iban[:4]) == 1
}

func TestMaskIBANKeepsShapeAndChecksum(t *testing.T) {
	a := New()
	masked := a.maskIBAN("BE71096123456769")

	assert.NotEqual(t, "BE71096123456769", masked)
	assert.Len(t, masked, len("BE71096123456769"))
	assert.Equal(t, "BE", masked[:2])
	assert.True(t, ibanValid(masked))
}

func TestMaskIBANIsDeterministic(t *testing.T) {
	a := New()
	assert.Equal(t, a.maskIBAN("DE89370400440532013000"), a.maskIBAN("DE89370400440532013000"))
	assert.NotEqual(t, a.maskIBAN("DE89370400440532013000"), a.maskIBAN("BE71096123456769"))
}

func TestMaskIBANShortValueBecomesAccountAlias(t *testing.T) {
	a := New()
	masked := a.maskIBAN("12345678")
	assert.Contains(t, masked, "ACCT_")
}

func TestAnonymizeXML(t *testing.T) {
	a := New()
	out := string(a.AnonymizeXML([]byte(pacs008Snippet)))

	assert.NotContains(t, out, "John Doe")
	assert.NotContains(t, out, "Jane Smith")
	assert.NotContains(t, out, "Avenue Louise")
	assert.NotContains(t, out, "BE71096123456769")
	assert.NotContains(t, out, "555001234")
	assert.Contains(t, out, "CUST_")
	assert.Contains(t, out, "ID_")
	assert.Contains(t, out, "<StrtNm>MASKED</StrtNm>")
	assert.Contains(t, out, "<TwnNm>MASKED</TwnNm>")
	// the country survives, masking keeps the document routable
	assert.Contains(t, out, "<Ctry>BE</Ctry>")
}

func TestAnonymizeXMLIsDeterministic(t *testing.T) {
	a := New()
	first := a.AnonymizeXML([]byte(pacs008Snippet))
	second := a.AnonymizeXML([]byte(pacs008Snippet))
	assert.Equal(t, first, second)
}

func TestAnonymizeXMLPassesThroughGarbage(t *testing.T) {
	a := New()
	raw := []byte("definitely not xml")
	assert.Equal(t, raw, a.AnonymizeXML(raw))
}

func TestAnonymizeMT(t *testing.T) {
	a := New()
	out := string(a.AnonymizeMT([]byte(mt103Snippet)))

	assert.NotContains(t, out, "JOHN DOE")
	assert.NotContains(t, out, "JANE SMITH")
	assert.NotContains(t, out, "BE71096123456769")
	assert.Contains(t, out, "PARTY_")
	assert.Contains(t, out, ":50K:/BE")
	assert.Contains(t, out, ":59:/DE")

	// non-party fields survive untouched
	assert.Contains(t, out, ":20:REF12345\n")
	assert.Contains(t, out, ":32A:250101EUR1234,56\n")
	assert.Contains(t, out, "{1:F01BANKBEBBAXXX0000000000}")
	assert.Contains(t, out, "\n-}")
}

func TestAnonymizeMTMaskedAccountStaysValid(t *testing.T) {
	a := New()
	out := string(a.AnonymizeMT([]byte(mt103Snippet)))

	idx := strings.Index(out, ":50K:/")
	require.GreaterOrEqual(t, idx, 0)
	idx += len(":50K:/")
	masked := out[idx : idx+len("BE71096123456769")]
	assert.True(t, ibanValid(masked), "masked account %q", masked)
}

func TestAnonymizeMTWithoutPartyFields(t *testing.T) {
	a := New()
	raw := []byte("{1:F01BANKBEBBAXXX0000000000}{4:\n:20:REF\n-}")
	assert.Equal(t, raw, a.AnonymizeMT(raw))
}

func TestSaltsProduceUnlinkableAliases(t *testing.T) {
	left := New(WithSalt("salt-one"))
	right := New(WithSalt("salt-two"))

	assert.NotEqual(t, left.alias("John Doe", "CUST"), right.alias("John Doe", "CUST"))
	assert.NotEqual(t, left.maskIBAN("BE71096123456769"), right.maskIBAN("BE71096123456769"))
}
