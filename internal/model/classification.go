package model

import (
	"errors"
	"fmt"
)

// ErrInvalidClassification is returned for unknown fields or out-of-range values.
var ErrInvalidClassification = errors.New("invalid classification")

// Classification field names as sent by clients.
const (
	FieldParticipatedInProjects   = "participatedInProjects"
	FieldIsPharmaceuticalIndustry = "isPharmaceuticalIndustry"
	FieldProductType              = "productType"
	FieldCompanySize              = "companySize"
	FieldEstado                   = "estado"
)

// YesNo is a classification answer. The empty value is "unspecified".
type YesNo string

const (
	YesNoUnspecified YesNo = ""
	YesNoSim         YesNo = "sim"
	YesNoNao         YesNo = "nao"
)

// ProductType is the pharmaceutical product line of the respondent's company.
type ProductType string

const (
	ProductUnspecified  ProductType = ""
	ProductBiologico    ProductType = "biologico"
	ProductEspecifico   ProductType = "especifico"
	ProductGenerico     ProductType = "generico"
	ProductMIP          ProductType = "mip"
	ProductFitoterapico ProductType = "fitoterapico"
	ProductNovo         ProductType = "novo"
	ProductSimilar      ProductType = "similar"
	ProductTerapia      ProductType = "terapia"
	ProductRadiofarmaco ProductType = "radiofarmacos"
	ProductOutros       ProductType = "outros"
)

// CompanySize is the size band of the respondent's company.
type CompanySize string

const (
	CompanySizeUnspecified CompanySize = ""
	CompanySizePequena     CompanySize = "pequena"
	CompanySizeMedia       CompanySize = "media"
	CompanySizeGrande      CompanySize = "grande"
)

// Estado is a Brazilian federative unit code.
type Estado string

// EstadoUnspecified is the empty state code.
const EstadoUnspecified Estado = ""

// Estados lists the accepted state codes.
var Estados = []Estado{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// ProductTypes lists the accepted product types with their display labels, in display order.
var ProductTypes = []Option{
	{Value: string(ProductBiologico), Label: "Medicamento Biológico Não Novo"},
	{Value: string(ProductEspecifico), Label: "Medicamento Específico"},
	{Value: string(ProductGenerico), Label: "Medicamento Genérico"},
	{Value: string(ProductMIP), Label: "Medicamentos Liberados ou Isentos de Prescrição Médica (MIP)"},
	{Value: string(ProductFitoterapico), Label: "Medicamento Fitoterápico"},
	{Value: string(ProductNovo), Label: "Medicamento Novo"},
	{Value: string(ProductSimilar), Label: "Medicamento Similar"},
	{Value: string(ProductTerapia), Label: "Produtos de Terapia Avançada"},
	{Value: string(ProductRadiofarmaco), Label: "Radiofármacos"},
	{Value: string(ProductOutros), Label: "Outros Medicamentos"},
}

// CompanySizes lists the accepted company sizes with display labels.
var CompanySizes = []Option{
	{Value: string(CompanySizePequena), Label: "Pequena"},
	{Value: string(CompanySizeMedia), Label: "Média"},
	{Value: string(CompanySizeGrande), Label: "Grande"},
}

// Option is a selectable value and its label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Classification is the validated respondent profile stored with each record.
type Classification struct {
	ParticipatedInProjects   YesNo       `json:"participatedInProjects,omitempty" bson:"participatedInProjects,omitempty"`
	IsPharmaceuticalIndustry YesNo       `json:"isPharmaceuticalIndustry,omitempty" bson:"isPharmaceuticalIndustry,omitempty"`
	ProductType              ProductType `json:"productType,omitempty" bson:"productType,omitempty"`
	CompanySize              CompanySize `json:"companySize,omitempty" bson:"companySize,omitempty"`
	Estado                   Estado      `json:"estado,omitempty" bson:"estado,omitempty"`
}

// ValidateClassificationField checks a single field/value pair.
func ValidateClassificationField(field, value string) error {
	var ok bool
	switch field {
	case FieldParticipatedInProjects, FieldIsPharmaceuticalIndustry:
		ok = validYesNo(YesNo(value))
	case FieldProductType:
		ok = value == "" || hasOption(ProductTypes, value)
	case FieldCompanySize:
		ok = value == "" || hasOption(CompanySizes, value)
	case FieldEstado:
		ok = validEstado(Estado(value))
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidClassification, field)
	}
	if !ok {
		return fmt.Errorf("%w: %s=%q", ErrInvalidClassification, field, value)
	}
	return nil
}

// ParseClassification validates the free-form wizard map into a Classification.
// productType is only kept when isPharmaceuticalIndustry is "sim".
func ParseClassification(raw map[string]string) (Classification, error) {
	for field, value := range raw {
		if err := ValidateClassificationField(field, value); err != nil {
			return Classification{}, err
		}
	}
	c := Classification{
		ParticipatedInProjects:   YesNo(raw[FieldParticipatedInProjects]),
		IsPharmaceuticalIndustry: YesNo(raw[FieldIsPharmaceuticalIndustry]),
		CompanySize:              CompanySize(raw[FieldCompanySize]),
		Estado:                   Estado(raw[FieldEstado]),
	}
	if c.IsPharmaceuticalIndustry == YesNoSim {
		c.ProductType = ProductType(raw[FieldProductType])
	}
	return c, nil
}

func validYesNo(v YesNo) bool {
	return v == YesNoUnspecified || v == YesNoSim || v == YesNoNao
}

func validEstado(v Estado) bool {
	if v == EstadoUnspecified {
		return true
	}
	for _, e := range Estados {
		if e == v {
			return true
		}
	}
	return false
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
