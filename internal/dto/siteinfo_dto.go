package dto

type SiteSettingsResponse struct {
	OrgName      string            `json:"org_name,omitempty"`
	Slogan       string            `json:"slogan,omitempty"`
	Logo         string            `json:"logo,omitempty"`
	LogoDark     string            `json:"logo_dark,omitempty"`
	Favicon      string            `json:"favicon,omitempty"`
	PrimaryPhone string            `json:"primary_phone,omitempty"`
	PrimaryEmail string            `json:"primary_email,omitempty"`
	MetaTitle    string            `json:"meta_title,omitempty"`
	MetaDesc     string            `json:"meta_description,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
}

type UpdateSiteSettingsRequest struct {
	OrgName      string            `json:"org_name" validate:"max=150"`
	Slogan       string            `json:"slogan" validate:"max=250"`
	Logo         string            `json:"logo" validate:"max=500"`
	LogoDark     string            `json:"logo_dark" validate:"max=500"`
	Favicon      string            `json:"favicon" validate:"max=500"`
	PrimaryPhone string            `json:"primary_phone" validate:"max=32"`
	PrimaryEmail string            `json:"primary_email" validate:"omitempty,email"`
	MetaTitle    string            `json:"meta_title" validate:"max=150"`
	MetaDesc     string            `json:"meta_description" validate:"max=300"`
	SocialLinks  map[string]string `json:"social_links"`
}

type PageResponse struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	MetaTitle string `json:"meta_title,omitempty"`
	MetaDesc  string `json:"meta_description,omitempty"`
}
