// internal/model/profile.go
package model

// Known social platforms.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformTikTok    = "tiktok"
)

// Profile is static reference data owned elsewhere; posts carry
// denormalized copies rather than ids.
type Profile struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Username string `db:"username" json:"username"`
	Platform string `db:"platform" json:"platform"`
	Avatar   string `db:"avatar" json:"avatar,omitempty"`
}
