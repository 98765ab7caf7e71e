package catalog

import (
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
)

// StaticCarrier is the carrier the built-in table belongs to.
const StaticCarrier = "usps"

var staticUSPS = []packaging.FlatRateTemplateParams{
	usps("USPS_FlatRateEnvelope", "Priority Mail Flat Rate® Envelope - EP14F", 12.5, 9.5, 0.75, 70),
	usps("USPS_FlatRateWindowEnvelope", "Priority Mail Flat Rate® Window Envelope - EP14H", 15, 9.5, 0.75, 70),
	usps("USPS_FlatRatePaddedEnvelope", "Priority Mail Flat Rate® Padded Envelope", 12.5, 9.5, 1, 70),
	usps("USPS_LargeFlatRateBox", "Priority Mail Flat Rate® Large Box - LARGEFRB", 8.625, 5.375, 1.625, 70),
	usps("USPS_SmallFlatRateEnvelope", "Priority Mail Flat Rate® Small Envelope - EP14B", 11, 8.5, 5.5, 70),
	usps("USPS_MediumFlatRateBox1", "Priority Mail Flat Rate® Medium Box - 1", 12, 12, 5.5, 70),
	usps("USPS_MediumFlatRateBox2", "Priority Mail Flat Rate® Medium Box - 2", 10.125, 7.125, 5, 15),
	usps("USPS_LargeFlatRateBoardGameBox", "Priority Mail Board Game Large Flat Rate Box", 12.25, 10.5, 5.5, 20),
	usps("USPS_APOFlatRateBox", "Priority Mail Flat Rate® APO/FPO Box - MILIFRB", 12.25, 10.5, 5.5, 20),
	usps("USPS_FlatRateCardboardEnvelope", "Priority Mail Flat Rate® Envelope - EP14F", 12.25, 10.5, 5.5, 20),
	usps("USPS_FlatRateGiftCardEnvelope", "Priority Mail Gift Card Flat Rate Envelope - EP14GT", 12.25, 10.5, 5.5, 20),
	usps("USPS_FlatRateLegalEnvelope", "Priority Mail Flat Rate® Legal Envelope - EP14L", 12.25, 10.5, 5.5, 20),
	usps("USPS_RegionalRateBoxA1", "Priority Mail Regional Rate Box® - A1", 12.25, 10.5, 5.5, 20),
	usps("USPS_RegionalRateBoxA2", "Priority Mail Regional Rate Box® - A2", 12.25, 10.5, 5.5, 20),
	usps("USPS_RegionalRateBoxB1", "Priority Mail Regional Rate Box® - B1", 12.25, 10.5, 5.5, 20),
	usps("USPS_RegionalRateBoxB2", "Priority Mail Regional Rate Box® - B2", 12.25, 10.5, 5.5, 20),
	usps("USPS_SoftPack", "Self Packaging - Packaging not provided by USPS", 12.25, 10.5, 5.5, 20),
}

func usps(id, name string, length, width, height, maxWeight float64) packaging.FlatRateTemplateParams {
	return packaging.FlatRateTemplateParams{
		ID:           id,
		DisplayName:  name,
		Carrier:      StaticCarrier,
		Length:       length,
		Width:        width,
		Height:       height,
		MaxWeight:    maxWeight,
		MassUnit:     kernel.MassUnitPound,
		DistanceUnit: kernel.DistanceUnitInch,
	}
}

// StaticUSPS returns the built-in USPS flat-rate table.
func StaticUSPS() packaging.Catalog {
	templates := make([]packaging.FlatRateTemplate, 0, len(staticUSPS))
	for _, p := range staticUSPS {
		t, err := packaging.NewFlatRateTemplate(p)
		if err != nil {
			panic(err)
		}
		templates = append(templates, t)
	}
	return packaging.MustNewCatalog(templates...)
}
