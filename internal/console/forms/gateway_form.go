package forms

import (
	"strconv"
	"strings"

	"orgconsole/internal/models"
)

// NormalizeEUI strips display colons and lowercases, producing the stored
// form of a gateway EUI.
func NormalizeEUI(eui string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(eui), ":", ""))
}

// FormatEUI renders a bare 16-hex EUI colon-delimited for display, e.g.
// "0000000000000001" → "00:00:00:00:00:00:00:01". Inputs of the wrong
// length are returned unchanged.
func FormatEUI(eui string) string {
	bare := NormalizeEUI(eui)
	if len(bare) != 16 {
		return eui
	}
	parts := make([]string, 0, 8)
	for i := 0; i < 16; i += 2 {
		parts = append(parts, bare[i:i+2])
	}
	return strings.Join(parts, ":")
}

// GatewayDraft is the gateway modal's working copy. The EUI is held in its
// display form; technical numbers stay raw strings until validation.
type GatewayDraft struct {
	OrganizationID int    `json:"organization_id" validate:"required"`
	SiteID         int    `json:"site_id"`
	GatewayEUI     string `json:"gateway_eui" validate:"required,eui16"`
	Name           string `json:"name" validate:"required,max=100"`
	Description    string `json:"description" validate:"max=500"`
	LocationID     int    `json:"location_id"`

	Latitude  string `json:"latitude" validate:"omitempty,latitude"`
	Longitude string `json:"longitude" validate:"omitempty,longitude"`
	Altitude  string `json:"altitude"`

	Model         string `json:"model" validate:"max=100"`
	Board         string `json:"board" validate:"max=100"`
	AntennaType   string `json:"antenna_type" validate:"max=100"`
	AntennaGain   string `json:"antenna_gain"`
	StatsInterval string `json:"stats_interval"`

	Tags     map[string]string      `json:"tags"`
	Metadata map[string]interface{} `json:"metadata"`

	IsActive bool `json:"is_active"`
}

type GatewayForm struct {
	Existing *models.Gateway
	Draft    GatewayDraft
	Errors   Errors
}

func NewGatewayForm(existing *models.Gateway) *GatewayForm {
	f := &GatewayForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = GatewayDraft{
			StatsInterval: "30",
			Tags:          map[string]string{},
			Metadata:      map[string]interface{}{},
			IsActive:      true,
		}
		return f
	}

	tags := existing.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	metadata := existing.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	f.Draft = GatewayDraft{
		OrganizationID: existing.OrganizationID,
		SiteID:         intDefault(existing.SiteID),
		GatewayEUI:     FormatEUI(existing.GatewayEUI),
		Name:           existing.Name,
		Description:    existing.Description,
		LocationID:     intDefault(existing.LocationID),
		Latitude:       floatField(existing.Latitude),
		Longitude:      floatField(existing.Longitude),
		Altitude:       floatField(existing.Altitude),
		Model:          existing.Model,
		Board:          existing.Board,
		AntennaType:    existing.AntennaType,
		AntennaGain:    floatField(existing.AntennaGain),
		StatsInterval:  intField(existing.StatsInterval),
		Tags:           tags,
		Metadata:       metadata,
		IsActive:       existing.IsActive,
	}
	return f
}

func floatField(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func intField(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func (f *GatewayForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	if _, ok := f.Errors["stats_interval"]; !ok && trimmed(f.Draft.StatsInterval) != "" {
		if n, err := strconv.Atoi(trimmed(f.Draft.StatsInterval)); err != nil || n <= 0 {
			f.Errors["stats_interval"] = "stats_interval must be a positive number of seconds"
		}
	}
	return f.Errors
}

func (f *GatewayForm) ClearError(field string) { delete(f.Errors, field) }

func (f *GatewayForm) IsEdit() bool { return f.Existing != nil }

// Payload shapes the draft: the EUI is stored bare, optional numbers become
// nil when blank, tags and metadata pass through as-is.
func (f *GatewayForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"organization_id": f.Draft.OrganizationID,
		"site_id":         intOrNil(f.Draft.SiteID),
		"gateway_eui":     NormalizeEUI(f.Draft.GatewayEUI),
		"name":            trimmed(f.Draft.Name),
		"description":     trimmed(f.Draft.Description),
		"location_id":     intOrNil(f.Draft.LocationID),
		"latitude":        floatOrNil(f.Draft.Latitude),
		"longitude":       floatOrNil(f.Draft.Longitude),
		"altitude":        floatOrNil(f.Draft.Altitude),
		"model":           trimmed(f.Draft.Model),
		"board":           trimmed(f.Draft.Board),
		"antenna_type":    trimmed(f.Draft.AntennaType),
		"antenna_gain":    floatOrNil(f.Draft.AntennaGain),
		"stats_interval":  intStrOrNil(f.Draft.StatsInterval),
		"tags":            f.Draft.Tags,
		"metadata":        f.Draft.Metadata,
		"is_active":       f.Draft.IsActive,
	}
}

func floatOrNil(s string) interface{} {
	s = trimmed(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return n
}

func intStrOrNil(s string) interface{} {
	s = trimmed(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return n
}
