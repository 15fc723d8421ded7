package model

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/dd-checklist/internal/i18n"
)

// ErrInvalidContext indicates a DealContext field is outside its enumerated
// set. Detected before resolution runs; never retried.
var ErrInvalidContext = eris.New("invalid deal context")

// DealType is the legal structure of the transaction.
type DealType string

const (
	DealTypeShareDeal DealType = "Share Deal"
	DealTypeAssetDeal DealType = "Asset Deal"
	DealTypeMerger    DealType = "Merger"
)

// DealTypes returns all supported deal types.
func DealTypes() []DealType {
	return []DealType{DealTypeShareDeal, DealTypeAssetDeal, DealTypeMerger}
}

// Valid reports whether the deal type is one of the supported values.
func (d DealType) Valid() bool {
	return d == DealTypeShareDeal || d == DealTypeAssetDeal || d == DealTypeMerger
}

// TranslationKey returns the i18n key for the deal type label.
func (d DealType) TranslationKey() string {
	switch d {
	case DealTypeShareDeal:
		return "deal_type.share_deal"
	case DealTypeAssetDeal:
		return "deal_type.asset_deal"
	case DealTypeMerger:
		return "deal_type.merger"
	}
	return ""
}

// Sector is the target company's industry sector.
type Sector string

const (
	SectorHealthcare        Sector = "Healthcare"
	SectorTechnology        Sector = "Technology"
	SectorIndustrial        Sector = "Industrial"
	SectorRealEstate        Sector = "Real Estate"
	SectorFinancialServices Sector = "Financial Services"
	SectorRetail            Sector = "Retail"
)

// Sectors returns all supported sectors.
func Sectors() []Sector {
	return []Sector{
		SectorHealthcare,
		SectorTechnology,
		SectorIndustrial,
		SectorRealEstate,
		SectorFinancialServices,
		SectorRetail,
	}
}

// Valid reports whether the sector is one of the supported values.
func (s Sector) Valid() bool {
	for _, known := range Sectors() {
		if s == known {
			return true
		}
	}
	return false
}

// TranslationKey returns the i18n key for the sector label.
func (s Sector) TranslationKey() string {
	switch s {
	case SectorHealthcare:
		return "sector.healthcare"
	case SectorTechnology:
		return "sector.technology"
	case SectorIndustrial:
		return "sector.industrial"
	case SectorRealEstate:
		return "sector.real_estate"
	case SectorFinancialServices:
		return "sector.financial_services"
	case SectorRetail:
		return "sector.retail"
	}
	return ""
}

// Jurisdiction is where the target company operates for regulatory purposes.
type Jurisdiction string

const (
	JurisdictionPortugal      Jurisdiction = "Portugal"
	JurisdictionSpain         Jurisdiction = "Spain"
	JurisdictionInternational Jurisdiction = "International"
)

// Jurisdictions returns all supported jurisdictions.
func Jurisdictions() []Jurisdiction {
	return []Jurisdiction{JurisdictionPortugal, JurisdictionSpain, JurisdictionInternational}
}

// Valid reports whether the jurisdiction is one of the supported values.
func (j Jurisdiction) Valid() bool {
	return j == JurisdictionPortugal || j == JurisdictionSpain || j == JurisdictionInternational
}

// TranslationKey returns the i18n key for the jurisdiction label.
func (j Jurisdiction) TranslationKey() string {
	switch j {
	case JurisdictionPortugal:
		return "jurisdiction.portugal"
	case JurisdictionSpain:
		return "jurisdiction.spain"
	case JurisdictionInternational:
		return "jurisdiction.international"
	}
	return ""
}

// DealContext describes one checklist generation request. It is constructed
// once per request and never mutated.
type DealContext struct {
	Target       string
	DealType     DealType
	Sector       Sector
	Jurisdiction Jurisdiction
	Language     i18n.Language
	Custom       []CustomDocument
}

// Validate checks every field against its enumerated set, including any
// custom documents, before resolution runs.
func (dc DealContext) Validate() error {
	if strings.TrimSpace(dc.Target) == "" {
		return eris.Wrap(ErrInvalidContext, "model: target company name is empty")
	}
	if !dc.DealType.Valid() {
		return eris.Wrapf(ErrInvalidContext, "model: unknown deal type %q", dc.DealType)
	}
	if !dc.Sector.Valid() {
		return eris.Wrapf(ErrInvalidContext, "model: unknown sector %q", dc.Sector)
	}
	if !dc.Jurisdiction.Valid() {
		return eris.Wrapf(ErrInvalidContext, "model: unknown jurisdiction %q", dc.Jurisdiction)
	}
	if !dc.Language.Valid() {
		return eris.Wrapf(ErrInvalidContext, "model: unknown language %q", dc.Language)
	}
	for i, c := range dc.Custom {
		if _, err := c.Entry(); err != nil {
			return eris.Wrapf(err, "model: custom document %d", i+1)
		}
	}
	return nil
}
