package shippo

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

// templateDefaultWeight applies when the provider omits a template's max weight.
const templateDefaultWeight = 70

var _ ports.TemplateSource = &Client{}

// Fetch lists the carrier's parcel templates. Entries that cannot form a
// valid template are skipped.
func (c *Client) Fetch(ctx context.Context, carrier string) ([]packaging.FlatRateTemplate, error) {
	carrier = strings.ToLower(strings.TrimSpace(carrier))
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}

	var resp parcelTemplatesResponse
	query := url.Values{"carrier": []string{carrier}}
	if err := c.do(ctx, opTemplates, http.MethodGet, "/parcel-templates/", query, nil, &resp); err != nil {
		return nil, err
	}

	templates := make([]packaging.FlatRateTemplate, 0, len(resp.Results))
	for _, dto := range resp.Results {
		tpl, err := toTemplate(carrier, dto)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping parcel template", "template", dto.Template, "error", err)
			continue
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func toTemplate(carrier string, dto parcelTemplateDTO) (packaging.FlatRateTemplate, error) {
	id := dto.Template
	if id == "" {
		id = dto.Token
	}
	weight := float64(dto.Weight)
	if weight == 0 {
		weight = templateDefaultWeight
	}
	massUnit := dto.MassUnit
	if massUnit == "" {
		massUnit = kernel.MassUnitPound
	}
	distanceUnit := dto.DistanceUnit
	if distanceUnit == "" {
		distanceUnit = kernel.DistanceUnitInch
	}
	if dto.Carrier != "" {
		carrier = dto.Carrier
	}
	return packaging.NewFlatRateTemplate(packaging.FlatRateTemplateParams{
		ID:           id,
		DisplayName:  dto.Name,
		Carrier:      carrier,
		Length:       float64(dto.Length),
		Width:        float64(dto.Width),
		Height:       float64(dto.Height),
		MaxWeight:    weight,
		MassUnit:     massUnit,
		DistanceUnit: distanceUnit,
	})
}
