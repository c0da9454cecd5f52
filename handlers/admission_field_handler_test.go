package handlers

import (
	"testing"
)

func TestValidateFieldRequiresKeyAndLabel(t *testing.T) {
	p := fieldPayload{FieldType: "text"}
	p.normalize()
	errs := validateField(&p)
	if errs == nil {
		t.Fatal("empty key/label accepted")
	}
	if _, ok := errs["key"]; !ok {
		t.Error("missing key not reported")
	}
	if _, ok := errs["label"]; !ok {
		t.Error("missing label not reported")
	}
}

func TestValidateFieldKeyFormat(t *testing.T) {
	p := fieldPayload{Key: "Bus Route!", Label: "Bus route", FieldType: "select"}
	p.normalize()
	if errs := validateField(&p); errs == nil || errs["key"] == "" {
		t.Fatal("malformed key accepted")
	}

	good := fieldPayload{Key: "bus_route", Label: "Bus route", FieldType: "select"}
	good.normalize()
	if errs := validateField(&good); errs != nil {
		t.Fatalf("valid payload rejected: %v", errs)
	}
}

func TestValidateFieldUnknownType(t *testing.T) {
	p := fieldPayload{Key: "x", Label: "X", FieldType: "hologram"}
	p.normalize()
	if errs := validateField(&p); errs == nil || errs["field_type"] == "" {
		t.Fatal("unknown field type accepted")
	}
}

func TestFieldPayloadNormalizeLowercasesKey(t *testing.T) {
	p := fieldPayload{Key: "  Bus_Route ", Label: " Bus route ", FieldType: " select "}
	p.normalize()
	if p.Key != "bus_route" {
		t.Fatalf("key = %q", p.Key)
	}
	if p.Label != "Bus route" {
		t.Fatalf("label = %q", p.Label)
	}
	if p.FieldType != "select" {
		t.Fatalf("field type = %q", p.FieldType)
	}
}
