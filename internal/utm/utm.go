// Package utm builds campaign tracking links. Parameter values are
// either literal text or placeholder variables such as {PROFILE} that
// get resolved when a post is published.
package utm

import (
	"net/url"
	"strings"
)

const (
	ModeVariable = "variable"
	ModeCustom   = "custom"
)

// Placeholder variables understood by Resolve.
const (
	VarProfile      = "{PROFILE}"
	VarPostType     = "{POST_TYPE}"
	VarCampaignName = "{CAMPAIGN_NAME}"
	VarPostID       = "{POST_ID}"
)

type Param struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Enabled  bool   `json:"enabled"`
	Mode     string `json:"mode"` // variable or custom
	Value    string `json:"value"`
	Variable string `json:"variable"`
}

// DefaultParams is the builder's starting row set for a campaign.
func DefaultParams(campaignName string) []Param {
	return []Param{
		{
			Key:      "utm_source",
			Label:    "Source",
			Enabled:  true,
			Mode:     ModeVariable,
			Value:    "facebook",
			Variable: VarProfile,
		},
		{
			Key:      "utm_medium",
			Label:    "Medium",
			Enabled:  true,
			Mode:     ModeVariable,
			Value:    "social",
			Variable: VarPostType,
		},
		{
			Key:      "utm_campaign",
			Label:    "Campaign",
			Enabled:  true,
			Mode:     ModeVariable,
			Value:    slug(campaignName),
			Variable: VarCampaignName,
		},
		{
			Key:      "utm_content",
			Label:    "Content",
			Enabled:  false,
			Mode:     ModeVariable,
			Value:    "",
			Variable: VarPostID,
		},
	}
}

// ParamMap flattens enabled rows into the key→value mapping stored on
// the campaign. Variable-mode rows keep their placeholder token.
func ParamMap(params []Param) map[string]string {
	out := map[string]string{}
	for _, p := range params {
		if !p.Enabled {
			continue
		}
		if p.Mode == ModeVariable {
			out[p.Key] = p.Variable
		} else {
			out[p.Key] = p.Value
		}
	}
	return out
}

// PreviewURL appends the enabled parameters to the base URL, preserving
// row order.
func PreviewURL(baseURL string, params []Param) string {
	parts := []string{}
	for _, p := range params {
		if !p.Enabled {
			continue
		}
		value := p.Value
		if p.Mode == ModeVariable {
			value = p.Variable
		}
		parts = append(parts, p.Key+"="+url.QueryEscape(value))
	}
	if len(parts) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(parts, "&")
}

// BuildLink renders a final tracking link from a stored param map,
// resolving placeholders against vars. Map iteration order is hidden by
// sorting at the caller; here keys are emitted in a fixed canonical
// order so repeated renders match.
func BuildLink(baseURL string, params map[string]string, vars map[string]string) string {
	keys := []string{"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term"}
	parts := []string{}
	for _, k := range keys {
		v, ok := params[k]
		if !ok {
			continue
		}
		parts = append(parts, k+"="+url.QueryEscape(Resolve(v, vars)))
	}
	if len(parts) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(parts, "&")
}

// Resolve substitutes {VAR} placeholders. Unknown tokens are left
// untouched so a misconfigured template stays visible downstream.
func Resolve(value string, vars map[string]string) string {
	result := value
	for k, v := range vars {
		result = strings.ReplaceAll(result, k, v)
	}
	return result
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
