package validator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openpurse/go-openpurse/internal/models"
)

var (
	// header BICs are logical terminal addresses, BIC8 plus up to four
	// terminal/branch characters
	mtHeaderBICRe = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}[A-Z0-9]{0,4}$`)

	mtBlock1ShapeRe = regexp.MustCompile(`\{1:[A-Z]\d{2}(.{12})\d{10}\}`)
	mtBlock2ShapeRe = regexp.MustCompile(`\{2:[IO]\d{3}(.{12})`)
	mtTag20Re       = regexp.MustCompile(`(?m)^:20:(.+)$`)
	mtTag32ARe      = regexp.MustCompile(`(?m)^:32A:(.+)$`)

	targetNamespaceRe = regexp.MustCompile(`targetNamespace="([^"]+)"`)
)

// SchemaValidator performs structural validation of raw wire messages:
// MT block grammar for FIN input, namespace-registry conformance for XML.
// The registry is built lazily on first use and is immutable afterwards.
type SchemaValidator struct {
	schemaDir string
	log       *zap.Logger

	once       sync.Once
	namespaces map[string]string // targetNamespace -> schema file path
}

// Option configures a SchemaValidator.
type Option func(*SchemaValidator)

// WithSchemaDir points the registry at a directory tree of XSD files.
func WithSchemaDir(dir string) Option {
	return func(v *SchemaValidator) { v.schemaDir = dir }
}

// WithLogger replaces the default no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(v *SchemaValidator) { v.log = log }
}

// NewSchemaValidator builds a validator. Without WithSchemaDir, the
// OPENPURSE_SCHEMA_DIR environment variable is consulted, then "./schemas".
func NewSchemaValidator(opts ...Option) *SchemaValidator {
	v := &SchemaValidator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	if v.schemaDir == "" {
		v.schemaDir = os.Getenv("OPENPURSE_SCHEMA_DIR")
	}
	if v.schemaDir == "" {
		v.schemaDir = "schemas"
	}

	return v
}

// ValidateSchema routes on the same prefix sniff as the parser and returns
// a structural report. Input matching neither shape fails immediately.
func (v *SchemaValidator) ValidateSchema(raw []byte) models.ValidationReport {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{1:")) || bytes.HasPrefix(trimmed, []byte("{4:")):
		return validateMT(string(trimmed))
	case bytes.HasPrefix(trimmed, []byte("<")):
		return v.validateXML(trimmed)
	}

	return report("Unrecognized message format: input is neither SWIFT MT nor XML.")
}

// validateMT asserts the closed set of MT structural rules: block shapes,
// header BICs, the mandatory :20: reference and the :32A: sub-grammar.
func validateMT(raw string) models.ValidationReport {
	var errs []string

	if m := mtBlock1ShapeRe.FindStringSubmatch(raw); m == nil {
		errs = append(errs, "Invalid Block 1 structure. Expected {1:<app-id><BIC12><session+sequence>}.")
	} else if !mtHeaderBICRe.MatchString(m[1]) {
		errs = append(errs, fmt.Sprintf("Invalid BIC format in Block 1: '%s'.", m[1]))
	}

	if strings.Contains(raw, "{2:") {
		if m := mtBlock2ShapeRe.FindStringSubmatch(raw); m == nil {
			errs = append(errs, "Invalid Block 2 structure. Expected {2:<I|O><type><BIC12>...}.")
		} else if !mtHeaderBICRe.MatchString(m[1]) {
			errs = append(errs, fmt.Sprintf("Invalid BIC format in Block 2: '%s'.", m[1]))
		}
	}

	start := strings.Index(raw, "{4:")
	if start < 0 || !strings.Contains(raw[start:], "-}") {
		errs = append(errs, "Invalid Block 4 structure: missing or unterminated text block.")
		return models.ValidationReport{Valid: len(errs) == 0, Errors: errs}
	}
	body := raw[start+len("{4:"):]
	body = body[:strings.LastIndex(body, "-}")]

	if mtTag20Re.FindStringSubmatch(body) == nil {
		errs = append(errs, "Mandatory Field :20: (Sender's Reference) missing.")
	}
	if m := mtTag32ARe.FindStringSubmatch(body); m != nil {
		errs = append(errs, validate32A(strings.TrimSpace(m[1]))...)
	}

	return models.ValidationReport{Valid: len(errs) == 0, Errors: errs}
}

// validate32A checks the YYMMDD date, currency and amount sub-components
// of Field 32A independently.
func validate32A(value string) []string {
	var errs []string
	if len(value) < 10 {
		return []string{fmt.Sprintf("Invalid Field 32A structure: '%s'. Expected YYMMDDCCCAMOUNT.", value)}
	}

	date, ccy, amt := value[:6], value[6:9], value[9:]
	if !validYYMMDD(date) {
		errs = append(errs, fmt.Sprintf("Invalid date in Field 32A: '%s'.", date))
	}
	if !currencyRe.MatchString(ccy) {
		errs = append(errs, fmt.Sprintf("Invalid currency in Field 32A: '%s'.", ccy))
	}
	if _, err := decimal.NewFromString(strings.ReplaceAll(amt, ",", ".")); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid amount format in Field 32A: '%s'.", amt))
	}

	return errs
}

func validYYMMDD(s string) bool {
	if len(s) != 6 {
		return false
	}
	month, err := strconv.Atoi(s[2:4])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(s[4:6])
	if err != nil || day < 1 || day > 31 {
		return false
	}

	return true
}

// validateXML requires the document's declared namespace to be present in
// the schema registry, then checks that the message root element matches
// the family the schema describes.
func (v *SchemaValidator) validateXML(raw []byte) models.ValidationReport {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil || doc.Root() == nil {
		return report("Malformed XML: " + readError(err))
	}

	ns := doc.Root().SelectAttrValue("xmlns", "")
	if ns == "" {
		return report("Missing namespace declaration on document root.")
	}

	registry := v.registry()
	if _, ok := registry[ns]; !ok {
		return report(fmt.Sprintf("Unsupported namespace: '%s'. No matching schema definition found.", ns))
	}

	var errs []string
	if doc.Root().Tag != "Document" && doc.Root().Tag != "BusMsg" && doc.Root().Tag != "AppHdr" {
		errs = append(errs, fmt.Sprintf("Unexpected root element '%s' for namespace '%s'.", doc.Root().Tag, ns))
	}

	return models.ValidationReport{Valid: len(errs) == 0, Errors: errs}
}

// registry scans the schema directory once per process, reading only the
// head of each file for its targetNamespace declaration.
func (v *SchemaValidator) registry() map[string]string {
	v.once.Do(func() {
		v.namespaces = map[string]string{}
		err := filepath.WalkDir(v.schemaDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".xsd") {
				return nil
			}
			if ns := sniffTargetNamespace(path); ns != "" {
				v.namespaces[ns] = path
			}
			return nil
		})
		if err != nil {
			v.log.Warn("schema directory scan failed", zap.String("dir", v.schemaDir), zap.Error(err))
		}
		v.log.Info("schema registry built",
			zap.String("dir", v.schemaDir),
			zap.Int("namespaces", len(v.namespaces)))
	})

	return v.namespaces
}

// sniffTargetNamespace reads the head of an XSD file looking for its
// targetNamespace attribute. A cheap partial read, not a parse.
func sniffTargetNamespace(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	head := make([]byte, 1024)
	n, _ := f.Read(head)
	if m := targetNamespaceRe.FindSubmatch(head[:n]); m != nil {
		return string(m[1])
	}

	return ""
}

func report(err string) models.ValidationReport {
	return models.ValidationReport{Valid: false, Errors: []string{err}}
}

func readError(err error) string {
	if err == nil {
		return "empty document"
	}

	return err.Error()
}
