package utm_test

import (
	"testing"

	"github.com/emplanner/planner-backend/internal/utm"
)

func TestDefaultParamsSlugifyCampaignName(t *testing.T) {
	params := utm.DefaultParams("  Summer Sale 2024 ")

	var campaign utm.Param
	for _, p := range params {
		if p.Key == "utm_campaign" {
			campaign = p
		}
	}
	if campaign.Value != "summer_sale_2024" {
		t.Errorf("expected slugified value, got %q", campaign.Value)
	}
	if campaign.Variable != utm.VarCampaignName {
		t.Errorf("campaign row must default to %s, got %s", utm.VarCampaignName, campaign.Variable)
	}
}

func TestParamMapSkipsDisabledRows(t *testing.T) {
	params := []utm.Param{
		{Key: "utm_source", Enabled: true, Mode: utm.ModeVariable, Variable: utm.VarProfile},
		{Key: "utm_medium", Enabled: true, Mode: utm.ModeCustom, Value: "newsletter"},
		{Key: "utm_content", Enabled: false, Mode: utm.ModeCustom, Value: "ignored"},
	}

	got := utm.ParamMap(params)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
	}
	if got["utm_source"] != utm.VarProfile {
		t.Errorf("variable rows keep their token, got %q", got["utm_source"])
	}
	if got["utm_medium"] != "newsletter" {
		t.Errorf("custom rows keep their value, got %q", got["utm_medium"])
	}
	if _, ok := got["utm_content"]; ok {
		t.Error("disabled rows must not appear in the map")
	}
}

func TestPreviewURLPreservesRowOrder(t *testing.T) {
	params := []utm.Param{
		{Key: "utm_medium", Enabled: true, Mode: utm.ModeCustom, Value: "social"},
		{Key: "utm_source", Enabled: true, Mode: utm.ModeVariable, Variable: utm.VarProfile},
	}

	got := utm.PreviewURL("https://example.com", params)
	want := "https://example.com?utm_medium=social&utm_source=%7BPROFILE%7D"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreviewURLWithNothingEnabled(t *testing.T) {
	params := []utm.Param{
		{Key: "utm_source", Enabled: false, Value: "x"},
	}
	if got := utm.PreviewURL("https://example.com", params); got != "https://example.com" {
		t.Errorf("expected bare base URL, got %q", got)
	}
}

func TestBuildLinkCanonicalOrderAndResolution(t *testing.T) {
	params := map[string]string{
		"utm_campaign": utm.VarCampaignName,
		"utm_source":   utm.VarProfile,
		"utm_medium":   "social",
	}
	vars := map[string]string{
		utm.VarProfile:      "Acme Facebook",
		utm.VarCampaignName: "spring_launch",
	}

	got := utm.BuildLink("https://example.com", params, vars)
	want := "https://example.com?utm_source=Acme+Facebook&utm_medium=social&utm_campaign=spring_launch"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if again := utm.BuildLink("https://example.com", params, vars); again != got {
		t.Error("repeated renders must match")
	}
}

func TestResolveLeavesUnknownTokens(t *testing.T) {
	vars := map[string]string{utm.VarProfile: "acme"}

	got := utm.Resolve("{PROFILE}-{MYSTERY}", vars)
	if got != "acme-{MYSTERY}" {
		t.Errorf("unknown tokens must stay visible, got %q", got)
	}
}
