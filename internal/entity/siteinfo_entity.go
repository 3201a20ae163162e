package entity

import "github.com/google/uuid"

// SiteSettings is a singleton row keyed by SingletonKey ("default").
type SiteSettings struct {
	Id           uuid.UUID
	SingletonKey string
	OrgName      string
	Slogan       string
	Logo         string
	LogoDark     string
	Favicon      string
	PrimaryPhone string
	PrimaryEmail string
	MetaTitle    string
	MetaDesc     string
	SocialLinks  map[string]string
	Base
}

// Page is a CMS page addressed by slug.
type Page struct {
	Id       uuid.UUID
	Slug     string
	Title    string
	Body     string
	MetaTitle string
	MetaDesc  string
	Order    int
	Base
}
