package shippo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type addressDTO struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// parcelDTO covers both parcel encodings: explicit dimensions, or a carrier
// template token with only a weight.
type parcelDTO struct {
	Template     string   `json:"template,omitempty"`
	Length       *float64 `json:"length,omitempty"`
	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	DistanceUnit string   `json:"distance_unit"`
	Weight       float64  `json:"weight"`
	MassUnit     string   `json:"mass_unit"`
}

type shipmentRequest struct {
	AddressFrom     addressDTO  `json:"address_from"`
	AddressTo       addressDTO  `json:"address_to"`
	Parcels         []parcelDTO `json:"parcels"`
	CarrierAccounts []string    `json:"carrier_accounts,omitempty"`
	Async           bool        `json:"async"`
}

type messageDTO struct {
	Source string `json:"source,omitempty"`
	Code   string `json:"code,omitempty"`
	Text   string `json:"text"`
}

type rateDTO struct {
	ObjectID     string `json:"object_id"`
	Provider     string `json:"provider"`
	ServiceLevel struct {
		Name  string `json:"name"`
		Token string `json:"token"`
	} `json:"servicelevel"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	EstimatedDays *int   `json:"estimated_days"`
}

type shipmentResponse struct {
	ObjectID string       `json:"object_id"`
	Status   string       `json:"status"`
	Rates    []rateDTO    `json:"rates"`
	Messages []messageDTO `json:"messages"`
}

type transactionRequest struct {
	Rate          string `json:"rate"`
	LabelFileType string `json:"label_file_type,omitempty"`
	Async         bool   `json:"async"`
}

type transactionResponse struct {
	ObjectID       string       `json:"object_id"`
	Status         string       `json:"status"`
	TrackingNumber string       `json:"tracking_number"`
	LabelURL       string       `json:"label_url"`
	Messages       []messageDTO `json:"messages"`
}

type parcelTemplateDTO struct {
	Template     string    `json:"template"`
	Token        string    `json:"token"`
	Name         string    `json:"name"`
	Carrier      string    `json:"carrier"`
	Length       flexFloat `json:"length"`
	Width        flexFloat `json:"width"`
	Height       flexFloat `json:"height"`
	Weight       flexFloat `json:"weight"`
	MassUnit     string    `json:"mass_unit"`
	DistanceUnit string    `json:"distance_unit"`
}

type parcelTemplatesResponse struct {
	Next    *string             `json:"next"`
	Results []parcelTemplateDTO `json:"results"`
}

// flexFloat accepts numbers sent either as JSON numbers or as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

func messageTexts(messages []messageDTO) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if text := strings.TrimSpace(m.Text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// parseErrorMessages pulls human readable text out of an error body. Shippo
// answers with {"detail": ...}, {"messages": [...]} or a field error map.
func parseErrorMessages(raw []byte) []string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return nil
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return []string{body}
	}

	if detail, ok := payload["detail"]; ok {
		var text string
		if json.Unmarshal(detail, &text) == nil && text != "" {
			return []string{text}
		}
	}
	if rawMessages, ok := payload["messages"]; ok {
		var messages []messageDTO
		if json.Unmarshal(rawMessages, &messages) == nil {
			if texts := messageTexts(messages); len(texts) > 0 {
				return texts
			}
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		out = append(out, fieldErrorTexts(k, payload[k])...)
	}
	if len(out) == 0 {
		return []string{body}
	}
	return out
}

func fieldErrorTexts(field string, raw json.RawMessage) []string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, field+": "+s)
		}
		return out
	}
	var text string
	if json.Unmarshal(raw, &text) == nil && text != "" {
		return []string{field + ": " + text}
	}
	return nil
}
