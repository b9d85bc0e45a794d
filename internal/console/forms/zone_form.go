package forms

import (
	"strconv"

	"orgconsole/internal/models"
)

// ZoneDraft is the zone modal's working copy.
type ZoneDraft struct {
	OrganizationID int    `json:"organization_id" validate:"required"`
	SiteID         int    `json:"site_id" validate:"required"`
	ZoneName       string `json:"zone_name" validate:"required,max=100"`
	ZoneType       string `json:"zone_type" validate:"required,oneof=Single Multiple"`
	Description    string `json:"description" validate:"max=500"`
	IsActive       bool   `json:"is_active"`
}

type ZoneForm struct {
	Existing *models.Zone
	Draft    ZoneDraft
	Errors   Errors
}

func NewZoneForm(existing *models.Zone) *ZoneForm {
	f := &ZoneForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = ZoneDraft{ZoneType: models.ZoneTypeSingle, IsActive: true}
		return f
	}
	f.Draft = ZoneDraft{
		OrganizationID: existing.OrganizationID,
		SiteID:         existing.SiteID,
		ZoneName:       existing.ZoneName,
		ZoneType:       existing.ZoneType,
		Description:    existing.Description,
		IsActive:       existing.IsActive,
	}
	return f
}

func (f *ZoneForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	return f.Errors
}

func (f *ZoneForm) ClearError(field string) { delete(f.Errors, field) }

func (f *ZoneForm) IsEdit() bool { return f.Existing != nil }

func (f *ZoneForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"organization_id": f.Draft.OrganizationID,
		"site_id":         f.Draft.SiteID,
		"zone_name":       trimmed(f.Draft.ZoneName),
		"zone_type":       f.Draft.ZoneType,
		"description":     trimmed(f.Draft.Description),
		"is_active":       f.Draft.IsActive,
	}
}

// LocationDraft is the geofence location modal's working copy. Coordinates
// and radius stay raw strings until validation, like the number inputs that
// feed them.
type LocationDraft struct {
	ZoneID       int    `json:"zone_id" validate:"required"`
	LocationName string `json:"location_name" validate:"required,max=100"`
	Latitude     string `json:"latitude" validate:"required,latitude"`
	Longitude    string `json:"longitude" validate:"required,longitude"`
	RadiusMeters string `json:"radius_meters" validate:"required"`
	Address      string `json:"address" validate:"max=500"`
}

type LocationForm struct {
	Existing *models.Location
	Draft    LocationDraft
	Errors   Errors
}

func NewLocationForm(existing *models.Location) *LocationForm {
	f := &LocationForm{Existing: existing, Errors: Errors{}}
	if existing == nil {
		f.Draft = LocationDraft{RadiusMeters: "50"}
		return f
	}
	f.Draft = LocationDraft{
		ZoneID:       existing.ZoneID,
		LocationName: existing.LocationName,
		Latitude:     strconv.FormatFloat(existing.Latitude, 'f', -1, 64),
		Longitude:    strconv.FormatFloat(existing.Longitude, 'f', -1, 64),
		RadiusMeters: strconv.FormatFloat(existing.RadiusMeters, 'f', -1, 64),
		Address:      existing.Address,
	}
	return f
}

func (f *LocationForm) Validate() Errors {
	f.Errors = check(&f.Draft)
	if _, ok := f.Errors["radius_meters"]; !ok {
		if r, err := strconv.ParseFloat(trimmed(f.Draft.RadiusMeters), 64); err != nil || r <= 0 {
			f.Errors["radius_meters"] = "radius_meters must be greater than 0"
		}
	}
	return f.Errors
}

func (f *LocationForm) ClearError(field string) { delete(f.Errors, field) }

func (f *LocationForm) IsEdit() bool { return f.Existing != nil }

func (f *LocationForm) Payload() map[string]interface{} {
	lat, _ := strconv.ParseFloat(trimmed(f.Draft.Latitude), 64)
	lng, _ := strconv.ParseFloat(trimmed(f.Draft.Longitude), 64)
	radius, _ := strconv.ParseFloat(trimmed(f.Draft.RadiusMeters), 64)
	return map[string]interface{}{
		"zone_id":       f.Draft.ZoneID,
		"location_name": trimmed(f.Draft.LocationName),
		"latitude":      lat,
		"longitude":     lng,
		"radius_meters": radius,
		"address":       trimmed(f.Draft.Address),
	}
}
